package banca

import (
	"log"
	"net/http"

	"acelerador/database"
	"acelerador/realtime"
	"acelerador/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// RankingWebSocket streams ranking updates to the banca dashboard. The
// current standings are pushed once on connect; afterwards the client gets
// every broadcast triggered by a validation or phase change.
func RankingWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	realtime.RegisterClient(conn)
	defer func() {
		realtime.UnregisterClient(conn)
		conn.Close()
	}()

	if phase, err := database.CurrentPhase(); err == nil {
		if standings, err := services.ComputeRanking(); err == nil {
			conn.WriteJSON(realtime.RankingUpdate{
				EstadoSistema: string(phase),
				Standings:     services.ToRealtimeRows(standings),
			})
		}
	}

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
