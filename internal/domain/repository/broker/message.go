package broker

// Message is one delivered stream entry. Ack removes it from the pending
// list of the consumer group.
type Message interface {
	ID() string
	Body() string
	Ack() error
}
