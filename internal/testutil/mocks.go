// Package testutil provides shared mocks and helpers for tests.
package testutil

import (
	"context"

	"github.com/enaizabil/Proyecto-Deportivo/internal/ai"
)

// MockAIClient mocks the chat-completion backend. It records every request
// it receives.
type MockAIClient struct {
	Response string
	Err      error
	Calls    []ai.Request
}

// Complete returns the canned response or error.
func (m *MockAIClient) Complete(ctx context.Context, req ai.Request) (string, error) {
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
