package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrItemNotFound  = errors.New("menu item not found")
	ErrDuplicateItem = errors.New("menu item id already exists")
)

// Store menampung katalog menu in-memory. Data awal berasal dari seed;
// perubahan dari menu management hanya hidup selama proses (demo, tidak
// dipersist).
type Store struct {
	mu         sync.RWMutex
	categories []Category
}

func NewStore() *Store {
	s := &Store{}
	// Deep copy seed supaya edit tidak menyentuh data seed
	s.categories = make([]Category, len(seedCategories))
	for i, cat := range seedCategories {
		copied := cat
		copied.Items = make([]MenuItem, len(cat.Items))
		copy(copied.Items, cat.Items)
		s.categories[i] = copied
	}
	return s
}

// Categories mengembalikan snapshot seluruh katalog.
func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, len(s.categories))
	for i, cat := range s.categories {
		copied := cat
		copied.Items = make([]MenuItem, len(cat.Items))
		copy(copied.Items, cat.Items)
		out[i] = copied
	}
	return out
}

// Items mengembalikan semua item dari semua kategori (flat).
func (s *Store) Items() []MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []MenuItem
	for _, cat := range s.categories {
		out = append(out, cat.Items...)
	}
	return out
}

func (s *Store) FindItem(itemID string) (MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cat := range s.categories {
		for _, item := range cat.Items {
			if item.ID == itemID {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

// FindItemByName mencocokkan nama item case-insensitive (dipakai
// recommendation matching).
func (s *Store) FindItemByName(name string) (MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lowered := strings.ToLower(strings.TrimSpace(name))
	for _, cat := range s.categories {
		for _, item := range cat.Items {
			if strings.ToLower(item.Name) == lowered {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

func (s *Store) FindCategory(categoryID string) (Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cat := range s.categories {
		if cat.ID == categoryID {
			copied := cat
			copied.Items = make([]MenuItem, len(cat.Items))
			copy(copied.Items, cat.Items)
			return copied, true
		}
	}
	return Category{}, false
}

func validateItem(item MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(item.Description) == "" {
		return errors.New("description is required")
	}
	if item.Price < 0 {
		return errors.New("price must be >= 0")
	}
	return nil
}

// CreateItem menambahkan item ke kategori yang dituju.
func (s *Store) CreateItem(categoryID string, item MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if strings.TrimSpace(item.ID) == "" {
		return errors.New("id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cat := range s.categories {
		for _, existing := range cat.Items {
			if existing.ID == item.ID {
				return ErrDuplicateItem
			}
		}
	}

	for i, cat := range s.categories {
		if cat.ID == categoryID {
			item.Category = cat.Name
			s.categories[i].Items = append(s.categories[i].Items, item)
			return nil
		}
	}
	return fmt.Errorf("category not found: %s", categoryID)
}

// UpdateItem mengganti field dasar item (nama, deskripsi, harga, gambar).
// Customizations tidak bisa diedit dari menu management, sama seperti demo
// aslinya.
func (s *Store) UpdateItem(itemID string, name, description string, price float64, imageURL string) (MenuItem, error) {
	updated := MenuItem{
		Name:        name,
		Description: description,
		Price:       price,
	}
	if err := validateItem(updated); err != nil {
		return MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for ci, cat := range s.categories {
		for ii, item := range cat.Items {
			if item.ID == itemID {
				item.Name = name
				item.Description = description
				item.Price = price
				if imageURL != "" {
					item.ImageURL = imageURL
				}
				s.categories[ci].Items[ii] = item
				return item, nil
			}
		}
	}
	return MenuItem{}, ErrItemNotFound
}

func (s *Store) DeleteItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ci, cat := range s.categories {
		for ii, item := range cat.Items {
			if item.ID == itemID {
				s.categories[ci].Items = append(cat.Items[:ii], cat.Items[ii+1:]...)
				return nil
			}
		}
	}
	return ErrItemNotFound
}
