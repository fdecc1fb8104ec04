package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ahpgap/workforce-planner/pkg/requestid"
)

// StructuredLogger traces service operations: one start line, any number of
// steps, and a final success or error line carrying the elapsed time.
type StructuredLogger struct {
	name string
	ctx  context.Context
}

func NewDebugLogger(name string) *StructuredLogger {
	return &StructuredLogger{name: name, ctx: context.Background()}
}

// WithContext returns a copy bound to ctx; the request id found there is
// stamped on every line.
func (l *StructuredLogger) WithContext(ctx context.Context) *StructuredLogger {
	return &StructuredLogger{name: l.name, ctx: ctx}
}

func (l *StructuredLogger) Operation(op string) *OperationBuilder {
	return &OperationBuilder{logger: l, op: op}
}

func (l *StructuredLogger) base() *zap.Logger {
	z := zap.L().Named(l.name)
	if id := requestid.FromContext(l.ctx); id != "" {
		z = z.With(zap.String("request_id", id))
	}
	return z
}

type fields []zap.Field

type OperationBuilder struct {
	logger *StructuredLogger
	op     string
	fields fields
}

func (b *OperationBuilder) WithString(key, value string) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *OperationBuilder) WithInt(key string, value int) *OperationBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *OperationBuilder) WithFloat(key string, value float64) *OperationBuilder {
	b.fields = append(b.fields, zap.Float64(key, value))
	return b
}

func (b *OperationBuilder) WithBool(key string, value bool) *OperationBuilder {
	b.fields = append(b.fields, zap.Bool(key, value))
	return b
}

func (b *OperationBuilder) WithUUID(key string, value uuid.UUID) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value.String()))
	return b
}

func (b *OperationBuilder) WithUUIDPtr(key string, value *uuid.UUID) *OperationBuilder {
	if value != nil {
		b.fields = append(b.fields, zap.String(key, value.String()))
	}
	return b
}

// Build logs the operation start and returns its tracer.
func (b *OperationBuilder) Build() *Tracer {
	t := &Tracer{
		logger: b.logger.base().With(zap.String("operation", b.op)),
		start:  time.Now(),
	}
	t.logger.Debug("operation started", b.fields...)
	return t
}

type Tracer struct {
	logger *zap.Logger
	start  time.Time
}

func (t *Tracer) Step(name string) *Entry {
	return &Entry{tracer: t, level: zapcore.DebugLevel, msg: "operation step", fields: fields{zap.String("step", name)}}
}

func (t *Tracer) Success() *Entry {
	return &Entry{tracer: t, level: zapcore.DebugLevel, msg: "operation succeeded", fields: fields{zap.Duration("elapsed", time.Since(t.start))}}
}

func (t *Tracer) Error(err error) *Entry {
	return &Entry{tracer: t, level: zapcore.ErrorLevel, msg: "operation failed", fields: fields{zap.Error(err), zap.Duration("elapsed", time.Since(t.start))}}
}

// Entry is one pending line; nothing is written until Log.
type Entry struct {
	tracer *Tracer
	level  zapcore.Level
	msg    string
	fields fields
}

func (e *Entry) WithString(key, value string) *Entry {
	e.fields = append(e.fields, zap.String(key, value))
	return e
}

func (e *Entry) WithInt(key string, value int) *Entry {
	e.fields = append(e.fields, zap.Int(key, value))
	return e
}

func (e *Entry) WithFloat(key string, value float64) *Entry {
	e.fields = append(e.fields, zap.Float64(key, value))
	return e
}

func (e *Entry) WithBool(key string, value bool) *Entry {
	e.fields = append(e.fields, zap.Bool(key, value))
	return e
}

func (e *Entry) WithUUID(key string, value uuid.UUID) *Entry {
	e.fields = append(e.fields, zap.String(key, value.String()))
	return e
}

func (e *Entry) Log() {
	if ce := e.tracer.logger.Check(e.level, e.msg); ce != nil {
		ce.Write(e.fields...)
	}
}
