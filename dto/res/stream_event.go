package res

// Event types sent over the chat websocket.
const (
	EventHistory = "history"
	EventChunk   = "chunk"
	EventDone    = "done"
	EventError   = "error"
)

// StreamEvent is one frame written to the chat websocket. "chunk" carries an
// incremental fragment of the assistant reply, "done" the full concatenated
// text, "history" the persisted messages restored at session start.
type StreamEvent struct {
	Type     string            `json:"type"`
	Content  string            `json:"content,omitempty"`
	Messages []MessageResponse `json:"messages,omitempty"`
}
