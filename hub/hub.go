// Package hub pushes portal events to open dashboard tabs over WebSocket,
// so a cancellation performed in one tab shows up everywhere without
// polling.
package hub

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/flexipack-labs/order-portal/utils"
)

// Event types.
const (
	EventOrderCancelled = "order_cancelled"
	EventOrdersRefresh  = "orders_refresh"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type dashboardHub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var hub = dashboardHub{
	clients: make(map[*websocket.Conn]struct{}),
}

// RegisterClient adds a dashboard connection to the broadcast set.
func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = struct{}{}
}

// UnregisterClient removes and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderCancelled notifies every open dashboard about a cancelled
// order; clients show the banner and reload.
func BroadcastOrderCancelled(orderNo, message string) {
	broadcast(Message{
		Event: EventOrderCancelled,
		Data: map[string]string{
			"order_no": orderNo,
			"message":  message,
		},
	})
}

// BroadcastOrdersRefresh asks dashboards to refetch the order list.
func BroadcastOrdersRefresh() {
	broadcast(Message{Event: EventOrdersRefresh, Data: nil})
}

func broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			if utils.ErrorLogger != nil {
				utils.ErrorLogger.Printf("hub: dropping client: %v", err)
			}
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
