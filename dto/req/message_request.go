package req

// MessageRequest is one user submission read off the chat websocket.
type MessageRequest struct {
	Content string `json:"content"`
}
