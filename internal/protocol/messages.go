package protocol

import "solitaire/internal/engine"

// Message types: Server → Client
const (
	MsgBoardState = "board_state"
	MsgEvent      = "event"
	MsgError      = "error"
)

// Message types: Client → Server
const (
	MsgClick   = "click"
	MsgMove    = "move"
	MsgNewGame = "new_game"
)

// ClickMsg is a canvas click, resolved server side.
type ClickMsg struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MoveMsg names both ends of a move directly.
type MoveMsg struct {
	Src *engine.Location `json:"src,omitempty"`
	Dst *engine.Location `json:"dst,omitempty"`
}

func (m MoveMsg) Move() engine.Move {
	return engine.Move{Src: m.Src, Dst: m.Dst}
}

// ErrorMsg is sent to a client on error. Rejected is set when the error is
// an ordinary illegal move rather than a bad request.
type ErrorMsg struct {
	Message  string `json:"message"`
	Rejected bool   `json:"rejected,omitempty"`
}

// NewErrorMsg classifies err for the client.
func NewErrorMsg(err error) ErrorMsg {
	return ErrorMsg{Message: err.Error(), Rejected: engine.IsRejection(err)}
}
