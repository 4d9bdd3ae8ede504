package otel

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Scope is the slice of a span the todo layers use. Each repository, service
// and handler call opens one and must End it.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func (s *scopeImpl) End() {
	s.span.End()
}

// TraceError records err on the span and marks the span failed.
func (s *scopeImpl) TraceError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *scopeImpl) TraceIfError(err error) {
	if err == nil {
		return
	}

	s.TraceError(err)
}

func (s *scopeImpl) AddEvent(name string) {
	s.span.AddEvent(name)
}

// SetAttribute maps the value onto the closest attribute kind. Row ids and
// counts arrive as int64 or int; anything unknown is stored as its %v string.
func (s *scopeImpl) SetAttribute(key string, value any) {
	var kv attribute.KeyValue

	switch val := value.(type) {
	case bool:
		kv = attribute.Bool(key, val)
	case string:
		kv = attribute.String(key, val)
	case int:
		kv = attribute.Int(key, val)
	case int64:
		kv = attribute.Int64(key, val)
	case float64:
		kv = attribute.Float64(key, val)
	case []string:
		kv = attribute.StringSlice(key, val)
	default:
		kv = attribute.String(key, fmt.Sprintf("%v", val))
	}

	s.span.SetAttributes(kv)
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

// NewScope wraps an already started span.
func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{span: span}
}
