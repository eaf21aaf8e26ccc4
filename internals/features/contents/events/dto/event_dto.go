package dto

import (
	"paisleygames_backend/internals/features/contents/events/model"
)

// ============================
// Response DTO
// ============================

type EventDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	EventDate   string  `json:"event_date"`
	EventTime   string  `json:"event_time"`
	Location    string  `json:"location"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateEventRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	EventDate   string   `json:"event_date"`
	EventTime   string   `json:"event_time"`
	Location    string   `json:"location"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

// UpdateEventRequest is a patch: nil fields keep the stored value.
type UpdateEventRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	EventDate   *string  `json:"event_date"`
	EventTime   *string  `json:"event_time"`
	Location    *string  `json:"location"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

// ============================
// Converter
// ============================

func ToEventDTO(m model.EventModel) EventDTO {
	return EventDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Image:       m.Image,
		EventDate:   m.EventDate,
		EventTime:   m.EventTime,
		Location:    m.Location,
		Lat:         m.Lat,
		Lng:         m.Lng,
	}
}

func (r CreateEventRequest) ToModel() model.EventModel {
	ev := model.EventModel{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		EventDate:   r.EventDate,
		EventTime:   r.EventTime,
		Location:    r.Location,
		Lat:         model.FallbackLat,
		Lng:         model.FallbackLng,
	}
	if r.Lat != nil {
		ev.Lat = *r.Lat
	}
	if r.Lng != nil {
		ev.Lng = *r.Lng
	}
	return ev
}

// ApplyToModel copies only the submitted fields onto the stored row.
func (r *UpdateEventRequest) ApplyToModel(m *model.EventModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Image != nil {
		m.Image = *r.Image
	}
	if r.EventDate != nil {
		m.EventDate = *r.EventDate
	}
	if r.EventTime != nil {
		m.EventTime = *r.EventTime
	}
	if r.Location != nil {
		m.Location = *r.Location
	}
	if r.Lat != nil {
		m.Lat = *r.Lat
	}
	if r.Lng != nil {
		m.Lng = *r.Lng
	}
}
