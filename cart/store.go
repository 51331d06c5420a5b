package cart

import (
	"sync"

	"github.com/antarcticanco/storefront-app/catalog"
)

// Line adalah satu baris cart: kombinasi (item, signature) dengan quantity
// dan totalnya sendiri.
type Line struct {
	ItemID             string    `json:"item_id"`
	ItemName           string    `json:"item_name"`
	ImageURL           string    `json:"image_url"`
	Signature          string    `json:"signature"`
	Selection          Selection `json:"selection,omitempty"`
	Quantity           int       `json:"quantity"`
	EffectiveUnitPrice float64   `json:"effective_unit_price"`
	LineTotal          float64   `json:"line_total"`
}

// Store adalah cart satu sesi. Satu logical writer per sesi; mutex hanya
// melindungi dari handler HTTP yang kebetulan paralel di koneksi berbeda.
type Store struct {
	mu      sync.Mutex
	pricing PricingOptions
	lines   []Line
}

func NewStore(pricing PricingOptions) *Store {
	return &Store{pricing: pricing}
}

// Add menambahkan item ke cart. Kalau sudah ada line dengan
// (item id, signature) yang sama, quantity-nya diakumulasi; kalau belum,
// line baru ditambahkan di belakang. Harga satuan dihitung sekali dari
// selection line itu sendiri — edit harga katalog belakangan tidak mengubah
// line yang sudah ada.
func (s *Store) Add(item catalog.MenuItem, quantity int, sel Selection) Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	sig := Signature(sel)
	unit := EffectiveUnitPrice(item, sel, s.pricing)

	for i := range s.lines {
		if s.lines[i].ItemID == item.ID && s.lines[i].Signature == sig {
			s.lines[i].Quantity += quantity
			s.lines[i].LineTotal = float64(s.lines[i].Quantity) * s.lines[i].EffectiveUnitPrice
			return s.lines[i]
		}
	}

	line := Line{
		ItemID:             item.ID,
		ItemName:           item.Name,
		ImageURL:           item.ImageURL,
		Signature:          sig,
		Selection:          sel,
		Quantity:           quantity,
		EffectiveUnitPrice: unit,
		LineTotal:          float64(quantity) * unit,
	}
	s.lines = append(s.lines, line)
	return line
}

// UpdateQuantity mengganti quantity sebuah line; quantity <= 0 sama dengan
// remove. Harga satuan line tidak dihitung ulang.
func (s *Store) UpdateQuantity(itemID, signature string, quantity int) (Line, bool) {
	if quantity <= 0 {
		removed := s.Remove(itemID, signature)
		return Line{}, removed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ItemID == itemID && s.lines[i].Signature == signature {
			s.lines[i].Quantity = quantity
			s.lines[i].LineTotal = float64(quantity) * s.lines[i].EffectiveUnitPrice
			return s.lines[i], true
		}
	}
	return Line{}, false
}

// Remove menghapus line yang cocok; no-op kalau tidak ada.
func (s *Store) Remove(itemID, signature string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ItemID == itemID && s.lines[i].Signature == signature {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear mengosongkan cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines mengembalikan snapshot seluruh line.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// ItemCount = jumlah seluruh quantity.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Total = jumlah seluruh line total.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, line := range s.lines {
		total += line.LineTotal
	}
	return total
}
