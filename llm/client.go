// Package llm is the boundary to the hosted chat-completion API. The rest of
// the application treats it as an opaque capability: an ordered list of turns
// in, a finite non-restartable stream of text fragments out.
package llm

import (
	"context"

	"ai-doctor-chat-app/entity"
)

// Client performs one chat completion. onChunk, when non-nil, receives each
// text fragment as it arrives; the returned string is the full concatenated
// reply. A completion either runs to the end or fails — there is no resume.
type Client interface {
	Complete(ctx context.Context, turns []entity.Turn, onChunk func(chunk string)) (string, error)
}
