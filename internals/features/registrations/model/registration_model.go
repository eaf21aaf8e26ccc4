package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel is one submitter's entry into one event. A multi-event
// submission fans out into several rows sharing GroupID and CreatedAt.
// EventName is a name reference, not an enforced foreign key: renaming or
// deleting an event leaves historical rows with the stale name.
type RegistrationModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	GroupID   uuid.UUID `gorm:"column:group_id;type:uuid" json:"group_id"`
	UserName  string    `gorm:"column:user_name;size:255;not null" json:"user_name"`
	Email     string    `gorm:"column:email;size:255;not null" json:"email"`
	Type      string    `gorm:"column:type;size:50;not null" json:"type"`
	EventName string    `gorm:"column:event_name;size:255;not null" json:"event_name"`
	Status    string    `gorm:"column:status;size:20;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
