package event

//go:generate mockgen -destination=../mock/event/mock_event.go -package=mock_event . Notifier

// Notifier receives scan events. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(evt Event)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(evt Event)

// Notify implements Notifier
func (f NotifierFunc) Notify(evt Event) {
	f(evt)
}
