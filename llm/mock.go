package llm

import (
	"context"
	"strings"

	"ai-doctor-chat-app/entity"
)

// MockClient is a scripted Client for tests and local development. Replies
// are consumed in order; the last one repeats. Every outbound request is
// recorded so tests can assert on what would have been sent to the model.
type MockClient struct {
	Replies []string
	Err     error

	Requests [][]entity.Turn
}

func NewMockClient(replies ...string) *MockClient {
	if len(replies) == 0 {
		replies = []string{"How body? Tell me wetin dey worry you."}
	}
	return &MockClient{Replies: replies}
}

func (m *MockClient) Complete(ctx context.Context, turns []entity.Turn, onChunk func(chunk string)) (string, error) {
	recorded := make([]entity.Turn, len(turns))
	copy(recorded, turns)
	m.Requests = append(m.Requests, recorded)

	if m.Err != nil {
		return "", m.Err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	index := len(m.Requests) - 1
	if index >= len(m.Replies) {
		index = len(m.Replies) - 1
	}
	reply := m.Replies[index]

	if onChunk != nil {
		// Stream word by word to exercise incremental rendering.
		words := strings.SplitAfter(reply, " ")
		for _, word := range words {
			onChunk(word)
		}
	}
	return reply, nil
}

// CallCount reports how many completions were requested.
func (m *MockClient) CallCount() int {
	return len(m.Requests)
}

// LastRequest returns the most recent outbound turn list, or nil.
func (m *MockClient) LastRequest() []entity.Turn {
	if len(m.Requests) == 0 {
		return nil
	}
	return m.Requests[len(m.Requests)-1]
}
