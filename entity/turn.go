package entity

import "ai-doctor-chat-app/enum"

// Turn is one in-memory conversation unit. Unlike Message it is never
// persisted directly and may carry the system role.
type Turn struct {
	Role    enum.Role `json:"role"`
	Content string    `json:"content"`
}
