package enum

// Role identifies who produced a conversation turn. Only RoleUser and
// RoleAssistant are ever persisted; RoleSystem exists purely in memory.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)
