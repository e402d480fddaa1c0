package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/response"
	"roadmap-dashboard-api/internal/surface"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
	sendBuffer     = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// SurfaceHandler serves the event channel of the board and timeline views.
// Each connection gets its own surface.Session.
type SurfaceHandler struct {
	scheduler surface.Scheduler
	timeline  surface.Timeline
	logger    *zap.Logger
}

func NewSurfaceHandler(scheduler surface.Scheduler, timeline surface.Timeline, logger *zap.Logger) *SurfaceHandler {
	return &SurfaceHandler{scheduler: scheduler, timeline: timeline, logger: logger}
}

// HandleWebSocket godoc
// @Summary      화면 이벤트 채널
// @Description  click, drag-start, drag-end, drop-on-bucket, progress-drag 이벤트를 받아 갱신된 보드나 요약을 응답합니다
// @Tags         surface
// @Param        year query int false "화면에 표시 중인 연도"
// @Success      101
// @Router       /surface/ws [get]
func (h *SurfaceHandler) HandleWebSocket(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", zap.Error(err))
		return
	}

	session := surface.NewSession(h.scheduler, h.timeline, year, h.logger)
	send := make(chan []byte, sendBuffer)

	go h.writePump(conn, send)
	h.readPump(c, conn, session, send)
}

// readPump owns the session; it closes send when the peer goes away
func (h *SurfaceHandler) readPump(c *gin.Context, conn *websocket.Conn, session *surface.Session, send chan<- []byte) {
	defer close(send)

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket error", zap.Error(err))
			}
			return
		}

		var reply surface.Reply
		var ev surface.Event
		if err := json.Unmarshal(message, &ev); err != nil {
			h.logger.Warn("Failed to parse surface event", zap.Error(err))
			reply = surface.Reply{
				Type:  surface.ReplyError,
				Error: &response.ErrorDetail{Code: response.ErrCodeValidation, Message: "Malformed event"},
			}
		} else {
			reply = session.Handle(c.Request.Context(), ev)
		}

		payload, err := json.Marshal(reply)
		if err != nil {
			h.logger.Error("Failed to encode surface reply", zap.Error(err))
			continue
		}
		send <- payload
	}
}

func (h *SurfaceHandler) writePump(conn *websocket.Conn, send <-chan []byte) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
