package gemini

import (
	"context"
	"sync"
)

// MockTransport for testing
type MockTransport struct {
	Response *Response
	Error    error

	mu       sync.Mutex
	requests []*Request
}

func (m *MockTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	return m.Response, m.Error
}

// Requests returns every request seen so far.
func (m *MockTransport) Requests() []*Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Request(nil), m.requests...)
}

// Calls returns the number of Send invocations.
func (m *MockTransport) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
