package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"solitaire/internal/config"
	qr "solitaire/internal/qrcode"
	"solitaire/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	Tables  *session.Manager
	Results ResultRecorder
	Config  config.Config

	log  *zap.Logger
	mu   sync.Mutex
	hubs map[string]*Hub
}

// NewHandlers wires the handlers. results may be nil, in which case games
// are not recorded and /api/results answers 404.
func NewHandlers(cfg config.Config, tables *session.Manager, results ResultRecorder, logger *zap.Logger) *Handlers {
	return &Handlers{
		Tables:  tables,
		Results: results,
		Config:  cfg,
		log:     logger,
		hubs:    make(map[string]*Hub),
	}
}

func (h *Handlers) hub(id string) *Hub {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hubs[id]
}

// CreateTable deals a new table and starts its hub.
func (h *Handlers) CreateTable() *Hub {
	t, _ := h.Tables.Create()
	hub := NewHub(t, h.Tables, h.Results, h.log)

	h.mu.Lock()
	h.hubs[t.ID] = hub
	h.mu.Unlock()

	go hub.Run()
	h.log.Info("table created", zap.String("table", t.ID))
	return hub
}

// CloseTable stops the table's hub, disconnecting its clients, and forgets
// the table. It reports whether the table existed.
func (h *Handlers) CloseTable(id string) bool {
	h.mu.Lock()
	hub, ok := h.hubs[id]
	delete(h.hubs, id)
	h.mu.Unlock()

	h.Tables.Remove(id)
	if !ok {
		return false
	}
	hub.Stop()
	h.log.Info("table closed", zap.String("table", id))
	return true
}

// StopAll closes every table.
func (h *Handlers) StopAll() {
	h.mu.Lock()
	ids := make([]string, 0, len(h.hubs))
	for id := range h.hubs {
		ids = append(ids, id)
	}
	h.mu.Unlock()

	for _, id := range ids {
		h.CloseTable(id)
	}
}

// HandleCreate creates a table and redirects the browser to it.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	hub := h.CreateTable()
	http.Redirect(w, r, "/?table="+hub.table.ID, http.StatusSeeOther)
}

// HandleQR generates a QR code PNG for watching the table from a phone.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	t, ok := h.tableParam(w, r)
	if !ok {
		return
	}
	png, err := qr.Generate(h.Config.JoinURL(r.Host, t.ID))
	if err != nil {
		h.log.Error("qr generation failed", zap.Error(err))
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleState returns the table as JSON.
func (h *Handlers) HandleState(w http.ResponseWriter, r *http.Request) {
	t, ok := h.tableParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, t.View())
}

// HandleClose closes a table.
func (h *Handlers) HandleClose(w http.ResponseWriter, r *http.Request) {
	t, ok := h.tableParam(w, r)
	if !ok {
		return
	}
	h.CloseTable(t.ID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleResults lists recently finished games.
func (h *Handlers) HandleResults(w http.ResponseWriter, r *http.Request) {
	if h.Results == nil {
		http.Error(w, "results are not recorded", http.StatusNotFound)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	res, err := h.Results.RecentResults(r.Context(), limit)
	if err != nil {
		h.log.Error("list results", zap.Error(err))
		http.Error(w, "results unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, res)
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"ok": true, "tables": h.Tables.Len()})
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	t, ok := h.tableParam(w, r)
	if !ok {
		return
	}
	hub := h.hub(t.ID)
	if hub == nil {
		http.Error(w, "table not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade error", zap.Error(err))
		return
	}

	client := NewClient(hub, conn)
	if !hub.Register(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

func (h *Handlers) tableParam(w http.ResponseWriter, r *http.Request) (*session.Table, bool) {
	id := r.URL.Query().Get("table")
	if id == "" {
		http.Error(w, "missing table parameter", http.StatusBadRequest)
		return nil, false
	}
	t := h.Tables.Get(id)
	if t == nil {
		http.Error(w, "table not found", http.StatusNotFound)
		return nil, false
	}
	return t, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
