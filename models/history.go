package models

// HistoricalDayOrders adalah satu bucket arsip: seluruh order satu hari
// kalender. Disimpan sebagai JSON di StorageBlob.
type HistoricalDayOrders struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Orders []Order `json:"orders"`
}

// OrderHistoryItem adalah ringkasan riwayat pesanan yang dikirim ke
// recommendation adapter.
type OrderHistoryItem struct {
	DishName string `json:"dish_name"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date,omitempty"` // ISO date string
}
