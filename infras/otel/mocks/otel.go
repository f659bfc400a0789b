// Package mocks provides an in-memory otel.Otel for tests. Spans are never exported;
// errors traced through a scope are kept so tests can assert on them.
package mocks

import (
	"context"
	"spa/infras/otel"
	"sync"
)

type Recorder struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

func NewOtel() otel.Otel {
	return &Recorder{}
}

// NewRecorder is NewOtel with access to what was traced.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.spans = append(r.spans, spanName)
	r.mu.Unlock()

	return ctx, &scope{recorder: r}
}

func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.spans...)
}

func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

// NewScope returns a scope that records nothing.
func NewScope() otel.Scope {
	return &scope{}
}

type scope struct {
	recorder *Recorder
}

func (s *scope) End() {}

func (s *scope) AddEvent(_ string) {}

func (s *scope) SetAttribute(_ string, _ any) {}

func (s *scope) SetAttributes(_ map[string]any) {}

func (s *scope) TraceError(err error) {
	if err == nil || s.recorder == nil {
		return
	}

	s.recorder.mu.Lock()
	s.recorder.errors = append(s.recorder.errors, err)
	s.recorder.mu.Unlock()
}

func (s *scope) TraceIfError(err error) {
	s.TraceError(err)
}
