package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"solitaire/internal/engine"
	"solitaire/internal/protocol"
	"solitaire/internal/session"
	"solitaire/internal/store"
)

// ResultRecorder persists finished games. *store.DB implements it.
type ResultRecorder interface {
	RecordResult(ctx context.Context, r store.Result) (int64, error)
	RecentResults(ctx context.Context, limit int) ([]store.Result, error)
}

const recordTimeout = 5 * time.Second

// Hub owns one table and fans its state out to every connected client.
// All moves go through the Run goroutine, so clients see them in order.
type Hub struct {
	mu         sync.Mutex
	table      *session.Table
	tables     *session.Manager
	results    ResultRecorder
	log        *zap.Logger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
	stopOnce   sync.Once
}

func NewHub(table *session.Table, tables *session.Manager, results ResultRecorder, logger *zap.Logger) *Hub {
	return &Hub{
		table:      table,
		tables:     tables,
		results:    results,
		log:        logger.With(zap.String("table", table.ID)),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.Debug("client joined", zap.Int("clients", h.clientCount()))
			h.sendState(client)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop ends Run and disconnects every client.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}

// Register hands a new client to Run. It returns false once the hub has
// stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.quit:
		return false
	}
}

func (h *Hub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	h.mu.Lock()
	live := h.clients[msg.Client]
	h.mu.Unlock()
	// The client may have unregistered while its last message was queued.
	if !live {
		return
	}
	if msg.Err != nil {
		h.sendError(msg.Client, protocol.ErrorMsg{Message: "malformed message"})
		return
	}
	switch msg.Envelope.Type {
	case protocol.MsgClick:
		h.handleClick(msg)
	case protocol.MsgMove:
		h.handleMove(msg)
	case protocol.MsgNewGame:
		h.handleNewGame()
	default:
		h.sendError(msg.Client, protocol.ErrorMsg{Message: fmt.Sprintf("unknown message type %q", msg.Envelope.Type)})
	}
}

func (h *Hub) handleClick(msg IncomingMessage) {
	var c protocol.ClickMsg
	if err := msg.Envelope.Decode(&c); err != nil {
		h.sendError(msg.Client, protocol.ErrorMsg{Message: err.Error()})
		return
	}

	paired := h.table.Pending() != nil
	events, err := h.table.Click(c.X, c.Y)
	if err != nil {
		// A lone click that fails is just the first half of a move.
		if paired {
			h.log.Debug("move rejected", zap.Error(err))
			h.sendError(msg.Client, protocol.NewErrorMsg(err))
		}
		h.broadcastState()
		return
	}
	h.afterMove(events)
}

func (h *Hub) handleMove(msg IncomingMessage) {
	var m protocol.MoveMsg
	if err := msg.Envelope.Decode(&m); err != nil {
		h.sendError(msg.Client, protocol.ErrorMsg{Message: err.Error()})
		return
	}
	events, err := h.table.Apply(m.Move())
	if err != nil {
		h.log.Debug("move rejected", zap.Stringer("move", m.Move()), zap.Error(err))
		h.sendError(msg.Client, protocol.NewErrorMsg(err))
		return
	}
	h.afterMove(events)
}

func (h *Hub) afterMove(events []engine.Event) {
	h.broadcastEvents(events)
	h.broadcastState()
	if h.table.Won() {
		sum := h.table.Summary()
		h.log.Info("game won", zap.Int("moves", sum.Moves))
		h.record(sum)
	}
}

func (h *Hub) handleNewGame() {
	prev, events := h.tables.Redeal(h.table)
	// Won games were recorded when they ended.
	if !prev.Won && prev.Moves > 0 {
		h.log.Info("game abandoned", zap.Int("moves", prev.Moves), zap.Int("cards_home", prev.Score.Total))
		h.record(prev)
	}
	h.broadcastEvents(events)
	h.broadcastState()
}

func (h *Hub) record(sum session.Summary) {
	if h.results == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	id, err := h.results.RecordResult(ctx, resultFromSummary(sum))
	if err != nil {
		h.log.Error("record result", zap.Error(err))
		return
	}
	h.log.Debug("result recorded", zap.Int64("id", id))
}

func resultFromSummary(s session.Summary) store.Result {
	return store.Result{
		TableID:    s.TableID,
		Won:        s.Won,
		Moves:      s.Moves,
		CardsHome:  s.Score.Total,
		Remaining:  s.Score.Remaining,
		StartedAt:  s.Started,
		FinishedAt: s.Finished,
	}
}

func (h *Hub) broadcastEvents(events []engine.Event) {
	for _, ev := range events {
		h.broadcastAll(protocol.MustEnvelope(protocol.MsgEvent, ev))
	}
}

func (h *Hub) broadcastState() {
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgBoardState, h.table.View()))
}

func (h *Hub) sendState(client *Client) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgBoardState, h.table.View()))
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(env)
	if err != nil {
		h.log.Error("broadcast marshal error", zap.Error(err))
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			client.log.Warn("client buffer full")
		}
	}
}

func (h *Hub) sendError(client *Client, msg protocol.ErrorMsg) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgError, msg))
}
