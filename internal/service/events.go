package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"go.uber.org/zap"
)

// EventWriter publishes domain events. *events.EventProducer implements it.
type EventWriter interface {
	Write(ctx context.Context, kind string, body io.Reader) error
}

// emit publishes payload as JSON. Failures are logged and never reach the caller.
func emit(ctx context.Context, w EventWriter, kind string, payload any) {
	if w == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		zap.S().Named("service").Errorw("failed to marshal event", "error", err, "event_kind", kind)
		return
	}
	if err := w.Write(ctx, kind, bytes.NewReader(data)); err != nil {
		zap.S().Named("service").Errorw("failed to write event", "error", err, "event_kind", kind)
	}
}
