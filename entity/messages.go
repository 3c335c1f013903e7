package entity

import "ai-doctor-chat-app/enum"

// Message is one persisted chat turn. Rows are immutable once written and
// ordered by creation time; they are removed only when the owning user is.
type Message struct {
	BaseEntity
	UserID  string    `json:"userId" gorm:"type:varchar(36);not null;index"`
	Role    enum.Role `json:"role" gorm:"type:varchar(9);not null"`
	Content string    `json:"content" gorm:"type:TEXT;not null"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}
