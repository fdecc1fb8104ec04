package events

type ProducerOptions func(e *EventProducer)

// WithOutputTopic overrides the topic handed to the Writer. An empty topic keeps the default.
func WithOutputTopic(topic string) ProducerOptions {
	return func(e *EventProducer) {
		if topic != "" {
			e.topic = topic
		}
	}
}

func WithSource(source string) ProducerOptions {
	return func(e *EventProducer) {
		e.source = source
	}
}
