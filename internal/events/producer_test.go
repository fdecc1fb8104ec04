package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("producer", Ordered, func() {
	Context("write", func() {
		It("writes successfully", func() {
			w := newTestWriter()
			kp := NewEventProducer(w, WithOutputTopic("runs"))

			data, err := json.Marshal(RunEvent{RunID: "1", Name: "plan", Kind: "costs", Action: RunCreated})
			Expect(err).To(BeNil())
			Expect(kp.Write(context.TODO(), RunMessageKind, bytes.NewReader(data))).To(Succeed())
			Expect(kp.Write(context.TODO(), ReportMessageKind, bytes.NewReader([]byte(`{}`)))).To(Succeed())

			Eventually(w.Count).Should(Equal(2))

			msgs := w.Events()
			Expect(msgs[0].Type()).To(Equal(RunMessageKind))
			Expect(msgs[0].Source()).To(Equal(defaultSource))
			Expect(msgs[1].Type()).To(Equal(ReportMessageKind))
			Expect(w.Topics()).To(ConsistOf("runs", "runs"))

			var ev RunEvent
			Expect(json.Unmarshal(msgs[0].Data(), &ev)).To(Succeed())
			Expect(ev.Name).To(Equal("plan"))

			Expect(kp.Close()).To(Succeed())
			Expect(w.closed).To(BeTrue())
		})

		It("keeps the default topic when none is configured", func() {
			w := newTestWriter()
			kp := NewEventProducer(w, WithOutputTopic(""), WithSource("test"))
			Expect(kp.Write(context.TODO(), NarrativeMessageKind, bytes.NewReader([]byte(`{}`)))).To(Succeed())

			Eventually(w.Count).Should(Equal(1))
			Expect(w.Topics()).To(ConsistOf(defaultTopic))
			Expect(w.Events()[0].Source()).To(Equal("test"))
			Expect(kp.Close()).To(Succeed())
		})

		It("flushes pending events on close", func() {
			w := newTestWriter()
			kp := NewEventProducer(w)
			for i := 0; i < 50; i++ {
				Expect(kp.Write(context.TODO(), RunMessageKind, bytes.NewReader([]byte(`{}`)))).To(Succeed())
			}
			Expect(kp.Close()).To(Succeed())
			Expect(w.Count()).To(Equal(50))
		})

		It("closes the writer once when closed twice", func() {
			w := newTestWriter()
			kp := NewEventProducer(w)
			Expect(kp.Write(context.TODO(), RunMessageKind, bytes.NewReader([]byte(`{}`)))).To(Succeed())

			Expect(kp.Close()).To(Succeed())
			Expect(func() { Expect(kp.Close()).To(Succeed()) }).NotTo(Panic())
			Expect(w.Count()).To(Equal(1))
			Expect(w.closes).To(Equal(1))
		})

		It("keeps going when the writer fails", func() {
			w := newTestWriter()
			w.err = errors.New("broker down")
			kp := NewEventProducer(w)
			Expect(kp.Write(context.TODO(), RunMessageKind, bytes.NewReader([]byte(`{}`)))).To(Succeed())
			Expect(kp.Write(context.TODO(), RunMessageKind, bytes.NewReader([]byte(`{}`)))).To(Succeed())

			Eventually(w.Count).Should(Equal(2))
			Expect(kp.Close()).To(Succeed())
		})
	})
})

type testwriter struct {
	mu       sync.Mutex
	messages []cloudevents.Event
	topics   []string
	err      error
	closed   bool
	closes   int
}

func newTestWriter() *testwriter {
	return &testwriter{}
}

func (t *testwriter) Write(_ context.Context, topic string, e cloudevents.Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, e)
	t.topics = append(t.topics, topic)
	return t.err
}

func (t *testwriter) Close(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.closes++
	return nil
}

func (t *testwriter) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

func (t *testwriter) Events() []cloudevents.Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]cloudevents.Event(nil), t.messages...)
}

func (t *testwriter) Topics() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.topics...)
}
