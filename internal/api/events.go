package api

import (
	"net/http"
	"time"

	"zynta_referral/internal/service"
	"zynta_referral/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const eventWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type eventRoutes struct {
	hub *service.NotificationHub
}

func NewEventRoutes(handler *gin.RouterGroup, hub *service.NotificationHub) {
	r := &eventRoutes{hub: hub}

	handler.GET("/events", r.Stream)
}

// Stream upgrades to a websocket and forwards registration events until the
// client goes away. Client frames are read only to notice the close.
func (r *eventRoutes) Stream(c *gin.Context) {
	log := logger.Logger()

	// Subscribe before the handshake so no event published after the client
	// sees the upgrade response is lost.
	messages, unsubscribe := r.hub.Subscribe()
	defer unsubscribe()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Info("failed to upgrade connection", zap.Error(err))
		return
	}
	defer conn.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				return
			}

			data, err := json.Marshal(msg)
			if err != nil {
				log.Error("failed to marshal event", zap.Error(err))
				continue
			}

			_ = conn.SetWriteDeadline(time.Now().Add(eventWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Info("failed to write event", zap.Error(err))
				return
			}
		case <-closed:
			return
		}
	}
}
