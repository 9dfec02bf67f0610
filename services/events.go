package services

// Event is a store change notification. The services publish them after a
// successful mutation; the ws hub fans them out to subscribers.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

const (
	EventMenuChanged        = "menu.changed"
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

// Publisher receives events. A nil publisher disables notifications.
type Publisher interface {
	Publish(Event)
}

func publish(p Publisher, typ string, data any) {
	if p != nil {
		p.Publish(Event{Type: typ, Data: data})
	}
}
