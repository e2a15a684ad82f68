package server

import (
	"fmt"
	"net/http"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/yashbhanu1/Alternate-Credit/internal/domain"
	"github.com/yashbhanu1/Alternate-Credit/internal/scoring"
)

// chatInbound is a user message from the websocket.
type chatInbound struct {
	Message string `json:"message"`
}

// chatOutbound is one frame sent to the client: a streamed text fragment,
// an end-of-reply marker, or an error notice.
type chatOutbound struct {
	Type string `json:"type"` // fragment, done, error
	Text string `json:"text,omitempty"`
}

// handleChatWS handles GET /api/chat/ws?profile_id=... — a websocket that
// relays streamed collaborator chat fragments to the UI. Each inbound
// message produces a sequence of fragment frames followed by a done frame.
// A new inbound message supersedes nothing server-side: replies are handled
// one at a time per connection.
func (s *Server) handleChatWS(w http.ResponseWriter, r *http.Request) {
	profileID := r.URL.Query().Get("profile_id")
	signals, err := s.registry.Get(profileID)
	if err != nil {
		s.writeProfileError(w, err)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "connection closed")

	log := s.log.With().Str("profile_id", profileID).Logger()
	log.Info().Msg("Chat session opened")

	system := chatSystemInstruction(signals)
	ctx := r.Context()

	for {
		var inbound chatInbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			// Normal close or client gone; either way the session is over.
			log.Debug().Err(err).Msg("Chat session ended")
			return
		}
		if inbound.Message == "" {
			continue
		}

		fragments, err := s.gemini.StreamChat(ctx, system, inbound.Message)
		if err != nil {
			log.Warn().Err(err).Msg("Chat stream failed to start")
			_ = wsjson.Write(ctx, conn, chatOutbound{Type: "error", Text: "Chat is unavailable right now."})
			continue
		}

		for fragment := range fragments {
			if err := wsjson.Write(ctx, conn, chatOutbound{Type: "fragment", Text: fragment}); err != nil {
				log.Debug().Err(err).Msg("Client went away mid-stream")
				return
			}
		}
		if err := wsjson.Write(ctx, conn, chatOutbound{Type: "done"}); err != nil {
			return
		}
	}
}

// chatSystemInstruction grounds the assistant in the applicant's current
// score so answers reference their actual standing.
func chatSystemInstruction(signals domain.RawSignals) string {
	score := scoring.CalculateTrustScore(scoring.EngineerFeatures(signals))

	return fmt.Sprintf(
		"You are a friendly financial support assistant for an alternative-credit platform. "+
			"You are chatting with %s (%s). Their current Trust Score is %d (Grade %s). "+
			"Answer questions about their score, what drives it, and how to improve it. "+
			"Be concise and encouraging; never promise loan approval.",
		signals.Name, signals.Occupation, score.TrustScore, score.Grade)
}
