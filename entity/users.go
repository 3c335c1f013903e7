package entity

import (
	"time"

	"ai-doctor-chat-app/enum"
)

type User struct {
	BaseEntity
	Phone        string       `json:"phone" gorm:"unique;type:varchar(11);not null"`
	PasswordHash string       `json:"-" gorm:"type:varchar(255);not null"`
	Name         string       `json:"name" gorm:"type:varchar(50);not null"`
	Dob          time.Time    `json:"dob" gorm:"type:date;not null"`
	Gender       *enum.Gender `json:"gender,omitempty" gorm:"type:varchar(6)"`

	Messages []Message `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BasicInfo is the profile fact set handed to the model in a system turn.
func (u *User) BasicInfo() map[string]string {
	gender := ""
	if u.Gender != nil {
		gender = string(*u.Gender)
	}
	return map[string]string{
		"name":            u.Name,
		"dob":             u.Dob.Format("2006-01-02"),
		"gender":          gender,
		"medical summary": "",
	}
}
