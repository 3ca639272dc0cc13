package engine

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventDealt        EventType = "dealt"
	EventCardMoved    EventType = "card_moved"
	EventJacksCleared EventType = "jacks_cleared"
	EventCardSwept    EventType = "card_swept"
	EventJokerSwept   EventType = "joker_swept"
	EventGameWon      EventType = "game_won"
	EventPhaseChange  EventType = "phase_change"
)

// Event is emitted by the engine after state changes.
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func sweepEvents(promos []Promotion) []Event {
	events := make([]Event, 0, len(promos))
	for _, p := range promos {
		if p.Card.IsJoker() {
			events = append(events, Event{Type: EventJokerSwept, Data: map[string]interface{}{
				"stack": p.Stack,
			}})
			continue
		}
		events = append(events, Event{Type: EventCardSwept, Data: map[string]interface{}{
			"card": p.Card, "stack": p.Stack, "foundation": p.Foundation,
		}})
	}
	return events
}
