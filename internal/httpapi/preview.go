package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/codec"
)

const (
	previewWriteWait  = 10 * time.Second
	previewPongWait   = 60 * time.Second
	previewPingPeriod = 54 * time.Second
	previewQueue      = 16
)

var errEmptyPreview = errors.New("preview request needs xml or kind and document")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// PreviewRequest carries either XML text to parse or a structured document
// to render.
type PreviewRequest struct {
	XML      string          `json:"xml,omitempty"`
	Kind     string          `json:"kind,omitempty"`
	Document json.RawMessage `json:"document,omitempty"`
}

// PreviewResponse always carries both forms of the document, or an error.
type PreviewResponse struct {
	Kind     string         `json:"kind,omitempty"`
	Document codec.Document `json:"document,omitempty"`
	XML      string         `json:"xml,omitempty"`
	Error    *errorResponse `json:"error,omitempty"`
}

// Preview turns one request into a response.
func Preview(cache *codec.Cache, req PreviewRequest) PreviewResponse {
	var (
		doc codec.Document
		err error
	)
	switch {
	case req.XML != "":
		doc, err = cache.Parse(req.XML)
	case req.Kind != "":
		doc, err = codec.DecodeJSON(req.Kind, req.Document)
	default:
		err = errEmptyPreview
	}
	if err != nil {
		res := newErrorResponse(err)
		return PreviewResponse{Kind: req.Kind, Error: &res}
	}
	return PreviewResponse{Kind: doc.Kind(), Document: doc, XML: codec.Render(doc)}
}

// PreviewHandler upgrades to a WebSocket and answers every request with a
// PreviewResponse. Each connection has one reader and one writer.
func PreviewHandler(cache *codec.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("preview upgrade failed", "error", err)
			return
		}

		send := make(chan PreviewResponse, previewQueue)
		done := make(chan struct{})
		go previewWriter(conn, send, done)

		previewReader(conn, cache, send, done)
		close(send)
		<-done
	}
}

func previewReader(conn *websocket.Conn, cache *codec.Cache, send chan<- PreviewResponse, done <-chan struct{}) {
	conn.SetReadLimit(maxBodyBytes)
	_ = conn.SetReadDeadline(time.Now().Add(previewPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(previewPongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("preview read failed", "error", err)
			}
			return
		}

		var req PreviewRequest
		var res PreviewResponse
		if err := json.Unmarshal(msg, &req); err != nil {
			e := newErrorResponse(err)
			res = PreviewResponse{Error: &e}
		} else {
			res = Preview(cache, req)
		}

		select {
		case send <- res:
		case <-done:
			return
		}
	}
}

func previewWriter(conn *websocket.Conn, send <-chan PreviewResponse, done chan<- struct{}) {
	ticker := time.NewTicker(previewPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
		close(done)
	}()

	for {
		select {
		case res, ok := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(previewWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteJSON(res); err != nil {
				slog.Warn("preview write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(previewWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
