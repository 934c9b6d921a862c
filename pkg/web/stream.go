package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/shamikhz/UUID-Generator/pkg/generator"
	"github.com/shamikhz/UUID-Generator/pkg/httputil"
	"github.com/shamikhz/UUID-Generator/pkg/panel"
)

// Stream actions.
const (
	ActionSelect   = "select"
	ActionGenerate = "generate"
	ActionState    = "state"
)

const codeInvalidAction = "invalid_action"

// StreamRequest is a client message on /ws.
type StreamRequest struct {
	Action  string `json:"action"`
	Version string `json:"version,omitempty"`
}

// handleStream drives a private panel over a WebSocket. Messages are handled
// one at a time in the read loop, so the panel needs no locking. The current
// state is sent on connect and after every message; a bad message gets an
// error frame and the connection stays open.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	// Streams outlive the server's per-request timeouts.
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.Debug("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	s.metrics.ActiveStreams.Inc()
	defer s.metrics.ActiveStreams.Dec()

	ctx := r.Context()
	p := s.newPanel()

	if err := wsjson.Write(ctx, conn, p.State()); err != nil {
		return
	}

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				if !errors.Is(err, context.Canceled) {
					s.log.Debug("websocket read failed", "error", err)
				}
			}
			return
		}

		var reply any
		if typ != websocket.MessageText {
			reply = httputil.ErrorResponse{Error: httputil.CodeInvalidJSON, Message: "expected a text message"}
		} else {
			reply = s.applyStreamMessage(p, data)
		}

		if err := wsjson.Write(ctx, conn, reply); err != nil {
			return
		}
	}
}

func (s *Server) applyStreamMessage(p *panel.Panel, data []byte) any {
	var req StreamRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return httputil.ErrorResponse{Error: httputil.CodeInvalidJSON, Message: err.Error()}
	}

	switch req.Action {
	case ActionSelect:
		v, err := generator.ParseVersion(req.Version)
		if err != nil {
			return httputil.ErrorResponse{Error: httputil.CodeInvalidVersion, Message: err.Error()}
		}
		if err := p.Select(v); err != nil {
			return httputil.ErrorResponse{Error: httputil.CodeInvalidVersion, Message: err.Error()}
		}
	case ActionGenerate:
		if err := p.Generate(); err != nil {
			return httputil.ErrorResponse{Error: httputil.CodeNoSelection, Message: err.Error()}
		}
	case ActionState:
	default:
		return httputil.ErrorResponse{
			Error:   codeInvalidAction,
			Message: fmt.Sprintf("unknown action %q (want select, generate or state)", req.Action),
		}
	}
	return p.State()
}
