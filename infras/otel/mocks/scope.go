package mocks

import "todoapp/infras/otel"

type scopeImpl struct{}

func (s *scopeImpl) AddEvent(string) {}
func (s *scopeImpl) End() {}
func (s *scopeImpl) SetAttribute(string, any) {}
func (s *scopeImpl) SetAttributes(map[string]any) {}
func (s *scopeImpl) TraceError(error) {}
func (s *scopeImpl) TraceIfError(error) {}

// NewScope returns a Scope that discards everything.
func NewScope() otel.Scope {
	return &scopeImpl{}
}

type recordingScope struct {
	scopeImpl

	recorder *Recorder
	name     string
}

func (s *recordingScope) TraceError(err error) {
	s.recorder.record(s.name, err)
}

func (s *recordingScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
