package server

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"MidnightPledge/internal/shop"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Session is one player's game: a state container plus its seeded rng.
// Commands arrive on the session's websocket read loop, so game mutation is
// single-threaded per session.
type Session struct {
	ID    string
	state *shop.GameState
	rng   *rand.Rand
}

// Hub owns all live sessions and the shared read-only content.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*Session

	content      *shop.Content
	tuning       shop.Tuning
	startingCash float64
	seed         int64
}

// NewHub creates a hub. A zero seed means seed from the clock per session.
func NewHub(content *shop.Content, tuning shop.Tuning, startingCash float64, seed int64) *Hub {
	return &Hub{
		sessions:     make(map[string]*Session),
		content:      content,
		tuning:       tuning,
		startingCash: startingCash,
		seed:         seed,
	}
}

func (h *Hub) newSession(seed int64) *Session {
	if seed == 0 {
		seed = h.seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		ID:    uuid.NewString(),
		state: shop.NewGameState(h.content, h.startingCash, h.tuning.BaseActionPoints),
		rng:   rand.New(rand.NewSource(seed)),
	}
	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()
	return s
}

func (h *Hub) dropSession(id string) {
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type offerPayload struct {
	Amount   float64 `json:"amount"`
	Rate     float64 `json:"rate"`
	TermDays int     `json:"term_days,omitempty"`
}

type renewalPayload struct {
	Accept bool `json:"accept"`
}

type sellPayload struct {
	ItemID string `json:"item_id"`
}

func serveWS(h *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}
	defer conn.Close()

	var seed int64
	if raw := r.URL.Query().Get("seed"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			seed = v
		}
	}
	session := h.newSession(seed)
	defer h.dropSession(session.ID)

	// Day one opens with a customer before any command arrives.
	shop.BeginDay(session.state, h.content, h.tuning, session.rng)
	sendState(conn, session, h.content)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sendError(conn, "malformed message")
			continue
		}
		if err := h.dispatch(conn, session, msg); err != nil {
			sendError(conn, err.Error())
		}
		sendState(conn, session, h.content)
	}
}

func (h *Hub) dispatch(conn *websocket.Conn, s *Session, msg inboundMessage) error {
	switch msg.Type {
	case "state":
		return nil

	case "advance_day":
		report, err := shop.AdvanceNight(s.state, h.content, h.tuning, s.rng)
		if err != nil {
			return err
		}
		sendJSON(conn, outboundMessage{Type: "night_report", Payload: report})
		shop.BeginDay(s.state, h.content, h.tuning, s.rng)
		return nil

	case "offer":
		var p offerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		deal, err := shop.AcceptOffer(s.state, h.content, h.tuning, shop.DealTerms{
			Offer:    p.Amount,
			Rate:     p.Rate,
			TermDays: p.TermDays,
		})
		if err != nil {
			return err
		}
		sendJSON(conn, outboundMessage{Type: "deal_result", Payload: deal})
		return nil

	case "reject":
		return shop.RejectOffer(s.state, h.content)

	case "resolve_visit":
		out, err := shop.ResolveRedemptionVisit(s.state, h.content)
		if err != nil {
			return err
		}
		sendJSON(conn, outboundMessage{Type: "visit_outcome", Payload: out})
		return nil

	case "renewal":
		var p renewalPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		out, err := shop.ResolveRenewal(s.state, p.Accept)
		if err != nil {
			return err
		}
		sendJSON(conn, outboundMessage{Type: "visit_outcome", Payload: out})
		return nil

	case "sell":
		var p sellPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		price, err := shop.ForceSell(s.state, h.content, p.ItemID)
		if err != nil {
			return err
		}
		sendJSON(conn, outboundMessage{Type: "sale_result", Payload: map[string]float64{"price": price}})
		return nil

	default:
		sendError(conn, "unknown command: "+msg.Type)
		return nil
	}
}

func sendJSON(conn *websocket.Conn, msg outboundMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("ws write: %v", err)
	}
}

func sendError(conn *websocket.Conn, text string) {
	sendJSON(conn, outboundMessage{Type: "error", Payload: map[string]string{"message": text}})
}

func sendState(conn *websocket.Conn, s *Session, content *shop.Content) {
	sendJSON(conn, outboundMessage{Type: "state", Payload: buildStateDTO(s.state, content)})
}
