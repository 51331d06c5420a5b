package events

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/antarcticanco/storefront-app/models"
	"github.com/antarcticanco/storefront-app/utils"
)

// Event types
const (
	EventOrderUpdate    = "order_update"
	EventOrderCreated   = "order_created"
	EventOrdersArchived = "orders_archived"
	EventMenuUpdate     = "menu_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// DashboardHub menampung koneksi websocket dashboard employee dan
// menyiarkan perubahan order/menu ke semuanya.
type DashboardHub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

func NewDashboardHub() *DashboardHub {
	return &DashboardHub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// RegisterClient menambahkan koneksi ke hub.
func (h *DashboardHub) RegisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = true
}

// UnregisterClient melepaskan koneksi.
func (h *DashboardHub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// BroadcastOrderCreated -> order baru masuk dari checkout.
func (h *DashboardHub) BroadcastOrderCreated(order models.Order) {
	h.broadcast(Message{Event: EventOrderCreated, Data: order})
}

// BroadcastOrderUpdate -> status/payment order berubah.
func (h *DashboardHub) BroadcastOrderUpdate(order models.Order) {
	h.broadcast(Message{Event: EventOrderUpdate, Data: order})
}

// BroadcastOrdersArchived -> order aktif dipindahkan ke arsip.
func (h *DashboardHub) BroadcastOrdersArchived(bucket models.HistoricalDayOrders) {
	h.broadcast(Message{Event: EventOrdersArchived, Data: bucket})
}

// BroadcastMenuUpdate -> perubahan dari menu management.
func (h *DashboardHub) BroadcastMenuUpdate(data interface{}) {
	h.broadcast(Message{Event: EventMenuUpdate, Data: data})
}

// broadcast mengirim message ke semua client; client yang gagal ditulis
// dianggap putus dan dilepas.
func (h *DashboardHub) broadcast(msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			utils.ErrorLogger.Printf("dashboard ws write failed, dropping client: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
