package preferences

import "github.com/shopspring/decimal"

// GuardrailHit is the event name carried by every ClampNotification.
const GuardrailHit = "guardrailHit"

// ClampNotification is raised exactly when a guardrail changed a value the
// user entered. Message is meant to be shown as-is.
type ClampNotification struct {
	Name      string
	Key       string
	Field     string
	Requested decimal.Decimal
	Applied   decimal.Decimal
	Min       *decimal.Decimal
	Max       *decimal.Decimal
	Message   string
}

// Publisher receives guardrail notifications from fields.
type Publisher interface {
	Publish(note ClampNotification)
}

// Observer handles a published notification.
type Observer func(note ClampNotification)

// Notifier fans notifications out to observers in registration order.
// It belongs to one editing session and is not safe for concurrent use;
// the session serializes all edits.
type Notifier struct {
	nextID    int
	observers []subscription
}

type subscription struct {
	id       int
	observer Observer
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers obs and returns a func that removes it again.
// Calling the returned func more than once is harmless.
func (n *Notifier) Subscribe(obs Observer) func() {
	n.nextID++
	id := n.nextID
	n.observers = append(n.observers, subscription{id: id, observer: obs})
	return func() {
		for i, s := range n.observers {
			if s.id == id {
				n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers note synchronously. Observers added or removed during
// delivery take effect from the next Publish.
func (n *Notifier) Publish(note ClampNotification) {
	if note.Name == "" {
		note.Name = GuardrailHit
	}
	snapshot := make([]subscription, len(n.observers))
	copy(snapshot, n.observers)
	for _, s := range snapshot {
		s.observer(note)
	}
}

// Len returns the number of registered observers.
func (n *Notifier) Len() int {
	return len(n.observers)
}
