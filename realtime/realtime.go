package realtime

import (
	"log"
	"sync"

	"acelerador/metrics"

	"github.com/gorilla/websocket"
)

var (
	clients   = make(map[*websocket.Conn]bool) // Connected ranking dashboards
	broadcast = make(chan RankingUpdate)       // Broadcast channel for updates
	mutex     sync.Mutex                       // Protects the clients map
)

// StandingRow is the compact ranking row pushed to dashboards
type StandingRow struct {
	EquipeID   string `json:"equipe_id"`
	EquipeNome string `json:"equipe_nome"`
	Posicao    int    `json:"posicao"`
	Pontos     int    `json:"pontos"`
}

// RankingUpdate carries the full standings after a recompute
type RankingUpdate struct {
	EstadoSistema string        `json:"estado_sistema"`
	Standings     []StandingRow `json:"standings"`
}

// RegisterClient adds a websocket client to the ranking feed
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	clients[conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a websocket client from the ranking feed
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(clients, conn)
	mutex.Unlock()
}

// BroadcastRanking sends the standings to every connected dashboard
func BroadcastRanking(update RankingUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		metrics.RankingBroadcasts.Inc()
		mutex.Lock()
		for client := range clients {
			if err := client.WriteJSON(update); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(clients, client)
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
