package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Nama event yang disiarkan ke dashboard admin setelah commit berhasil.
const (
	EventMejaCreated      = "meja_created"
	EventMejaUpdated      = "meja_updated"
	EventMejaDeleted      = "meja_deleted"
	EventMejaSoftDeleted  = "meja_soft_deleted"
	EventMejaRestored     = "meja_restored"
	EventBookingCreated   = "booking_created"
	EventBookingConfirmed = "booking_confirmed"
	EventDashboardUpdate  = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Publisher dipegang controller; event dipublikasikan setelah transaksi
// database commit, bukan sebagai side effect implisit.
type Publisher interface {
	Publish(event string, data interface{})
}

// Hub menampung koneksi websocket dashboard dan menyiarkan event ke semuanya.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
	}
}

// Register menambahkan connection dengan role-nya.
func (h *Hub) Register(conn *websocket.Conn, role string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = role
}

// Unregister melepaskan connection dan menutupnya.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Publish menyiarkan satu event ke semua client yang terhubung. Client yang
// gagal menerima dilepas.
func (h *Hub) Publish(event string, data interface{}) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		log.Printf("Error marshaling event %s: %v", event, err)
		return
	}

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// NopPublisher dipakai saat hub tidak tersedia (mis. unit test).
type NopPublisher struct{}

func (NopPublisher) Publish(string, interface{}) {}
