package dto

import (
	"time"
)

// ============================
// Request DTO
// ============================

// RegisterRequest accepts either a single event name or a list of them.
type RegisterRequest struct {
	Name       string   `json:"name" validate:"required,min=2"`
	Email      string   `json:"email" validate:"required,email"`
	Type       string   `json:"type" validate:"required,oneof=individual group"`
	EventName  string   `json:"eventName"`
	EventNames []string `json:"eventNames"`
}

// TargetEvents normalizes the two input shapes into one list.
func (r RegisterRequest) TargetEvents() []string {
	if len(r.EventNames) > 0 {
		return r.EventNames
	}
	if r.EventName != "" {
		return []string{r.EventName}
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// ============================
// Response DTO
// ============================

// RegistrationStatusDTO is a registration row joined with the (current)
// event schedule details. Event fields are empty when the event has been
// renamed or removed since submission.
type RegistrationStatusDTO struct {
	ID        uint      `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	EventName string    `json:"event_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	EventDate string    `json:"event_date"`
	EventTime string    `json:"event_time"`
	Location  string    `json:"location"`
}
