package events

import (
	"context"
	"io"
	"sync"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RunMessageKind       string = "ahp.planner.events.run"
	ReportMessageKind    string = "ahp.planner.events.report"
	NarrativeMessageKind string = "ahp.planner.events.narrative"
	defaultTopic         string = "ahp.planner.events"
	defaultSource        string = "ahp.planner"
)

// Writer is the interface to be implemented by the underlying writer.
type Writer interface {
	Write(ctx context.Context, topic string, e cloudevents.Event) error
	Close(ctx context.Context) error
}

// EventProducer is a wrapper around a Writer with a buffer, so callers are
// never blocked by a slow writer.
type EventProducer struct {
	buffer    *buffer
	notify    chan struct{}
	doneCh    chan struct{}
	stopped   chan struct{}
	writer    Writer
	topic     string
	source    string
	closeOnce sync.Once
	closeErr  error
}

func NewEventProducer(w Writer, opts ...ProducerOptions) *EventProducer {
	ep := &EventProducer{
		buffer:  newBuffer(),
		notify:  make(chan struct{}, 1),
		doneCh:  make(chan struct{}),
		stopped: make(chan struct{}),
		writer:  w,
		topic:   defaultTopic,
		source:  defaultSource,
	}

	for _, o := range opts {
		o(ep)
	}

	go ep.run()
	return ep
}

// Write queues the body as an event of the given kind.
func (ep *EventProducer) Write(_ context.Context, kind string, body io.Reader) error {
	d, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	ep.buffer.PushBack(&message{
		Kind: kind,
		Data: d,
	})

	select {
	case ep.notify <- struct{}{}:
	default:
	}

	return nil
}

// Close flushes pending events, then closes the writer. It gives up after
// five seconds. Later calls return the result of the first one.
func (ep *EventProducer) Close() error {
	ep.closeOnce.Do(func() {
		ep.closeErr = ep.close()
	})
	return ep.closeErr
}

func (ep *EventProducer) close() error {
	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	close(ep.doneCh)
	select {
	case <-ep.stopped:
	case <-closeCtx.Done():
		zap.S().Named("event_producer").Warnw("pending events dropped", "count", ep.buffer.Size())
	}

	if err := ep.writer.Close(closeCtx); err != nil {
		zap.S().Named("event_producer").Errorf("event producer closed with error: %s", err)
		return err
	}

	zap.S().Named("event_producer").Info("event producer closed")
	return nil
}

func (ep *EventProducer) run() {
	defer close(ep.stopped)

	for {
		ep.flush()

		select {
		case <-ep.notify:
		case <-ep.doneCh:
			ep.flush()
			return
		}
	}
}

func (ep *EventProducer) flush() {
	for msg := ep.buffer.Pop(); msg != nil; msg = ep.buffer.Pop() {
		e := cloudevents.NewEvent()
		e.SetID(uuid.NewString())
		e.SetSource(ep.source)
		e.SetType(msg.Kind)
		e.SetTime(time.Now())
		_ = e.SetData(*cloudevents.StringOfApplicationJSON(), msg.Data)

		if err := ep.writer.Write(context.TODO(), ep.topic, e); err != nil {
			zap.S().Named("event_producer").Errorw("failed to send message", "error", err, "event", e)
		}
	}
}
