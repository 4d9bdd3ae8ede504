// Package mocks provides tracing stand-ins for tests: a silent Otel and a
// Recorder that remembers which spans were opened and which of them failed.
package mocks

import (
	"context"
	"sync"

	"todoapp/infras/otel"
)

type otelImpl struct{}

func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// NewOtel returns an Otel whose scopes do nothing.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

// Recorder is an otel.Otel that keeps span names and traced errors. It is safe
// for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	spans  []string
	errors map[string][]error
}

func NewRecorder() *Recorder {
	return &Recorder{errors: map[string][]error{}}
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.spans = append(r.spans, spanName)

	return ctx, &recordingScope{recorder: r, name: spanName}
}

// Spans lists opened span names in order.
func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.spans...)
}

// Errors returns the errors traced on spans named spanName.
func (r *Recorder) Errors(spanName string) []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors[spanName]...)
}

func (r *Recorder) record(spanName string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors[spanName] = append(r.errors[spanName], err)
}
