package http

import (
	"encoding/json"
	"net/http"

	"lms-admin-service/internal/app"
	"lms-admin-service/internal/domain"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSHandler streams live snapshots of a course being edited and accepts
// edits over the same connection.
type WSHandler struct {
	service  *app.CourseService
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.CourseService, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and wires them into the course editor.
//
// Outbound: "opened" with the course when the stream starts, then "course"
// after every change from any editor. Inbound: "update" with a partial course
// update, "addTag" with {"name": ...}, "close" to leave the editor.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	courseID := r.URL.Query().Get("courseId")
	if courseID == "" {
		http.Error(w, "missing courseId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	updates, cancel, err := h.service.Subscribe(r.Context(), courseID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	// single writer: gorilla connections do not support concurrent writes
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Debug("ws write error", zap.String("course_id", courseID), zap.Error(err))
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		msgType := "opened"
		for {
			select {
			case c, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: msgType, Payload: c}:
				case <-closeSignals:
					return
				}
				msgType = "course"
			case <-closeSignals:
				return
			}
		}
	}()

	reply := func(msg outboundMessage[any]) {
		select {
		case send <- msg:
		case <-writerDone:
		}
	}
	fail := func(message string) {
		reply(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}})
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "update":
			var u domain.CourseUpdate
			if err := json.Unmarshal(inbound.Payload, &u); err != nil {
				fail("invalid update payload")
				continue
			}
			if _, err := h.service.UpdateCourse(r.Context(), courseID, u); err != nil {
				fail(err.Error())
			}
		case "addTag":
			var payload struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				fail("invalid tag payload")
				continue
			}
			if _, err := h.service.AddTag(r.Context(), courseID, payload.Name); err != nil {
				fail(err.Error())
			}
		case "close":
			h.service.CloseCourse(r.Context(), courseID)
		default:
			fail("unsupported message type")
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}
