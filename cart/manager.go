package cart

import "sync"

// Manager memetakan session id -> cart store milik sesi itu. Cart dibuat
// saat sesi pertama kali menyentuh endpoint cart dan dibuang bersama proses
// (tidak ada persistence, sama seperti demo asli).
type Manager struct {
	mu      sync.Mutex
	pricing PricingOptions
	carts   map[string]*Store
}

func NewManager(pricing PricingOptions) *Manager {
	return &Manager{
		pricing: pricing,
		carts:   make(map[string]*Store),
	}
}

// GetOrCreate mengembalikan cart milik sesi, membuat baru kalau belum ada.
func (m *Manager) GetOrCreate(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.carts[sessionID]; ok {
		return store
	}
	store := NewStore(m.pricing)
	m.carts[sessionID] = store
	return store
}

// Drop membuang cart sebuah sesi saat teardown eksplisit. Checkout sukses
// cukup memanggil Clear.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}
