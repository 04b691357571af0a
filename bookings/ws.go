package bookings

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

type wsMessage struct {
	Type  string `json:"type"`
	LotID string `json:"lotid"`
}

// GET /ws/lots/:lotid — pushes an update message whenever a booking at
// the lot is created or cancelled.
func HandleLotWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lotID := ps.ByName("lotid")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers[lotID] = append(subscribers[lotID], conn)
	mu.Unlock()

	for {
		// This keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	// Clean up on disconnect
	mu.Lock()
	conns := subscribers[lotID]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[lotID] = newList
	mu.Unlock()

	conn.Close()
}

func broadcastLotUpdate(lotID string) {
	msg := wsMessage{Type: "update", LotID: lotID}
	data, _ := json.Marshal(msg)

	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[lotID]
	newList := conns[:0]

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}

	subscribers[lotID] = newList
}
