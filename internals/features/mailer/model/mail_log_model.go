package model

import (
	"time"

	"gorm.io/datatypes"
)

// MailLogModel records every confirmation dispatch attempt. Delivery is
// best-effort; this table is the only trace of a failed send.
type MailLogModel struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Recipient string         `gorm:"column:recipient;size:255;not null" json:"recipient"`
	Subject   string         `gorm:"column:subject;size:255;not null" json:"subject"`
	Status    string         `gorm:"column:status;size:20;not null" json:"status"` // sent | failed | disabled
	Error     string         `gorm:"column:error;type:text" json:"error,omitempty"`
	Context   datatypes.JSON `gorm:"column:context" json:"context,omitempty"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MailLogModel) TableName() string {
	return "mail_log"
}
