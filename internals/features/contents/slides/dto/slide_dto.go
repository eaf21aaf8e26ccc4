package dto

import (
	"paisleygames_backend/internals/features/contents/slides/model"
)

// ============================
// Response DTO
// ============================

type SlideDTO struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
	Action     string `json:"action"`
	Image      string `json:"image"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateSlideRequest struct {
	Title      string `json:"title" validate:"required,min=2"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
	Action     string `json:"action"`
	Image      string `json:"image"`
}

type UpdateSlideRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=2"`
	Subtitle   *string `json:"subtitle"`
	ButtonText *string `json:"button_text"`
	Action     *string `json:"action"`
	Image      *string `json:"image"`
}

// ============================
// Converter
// ============================

func ToSlideDTO(m model.SlideModel) SlideDTO {
	return SlideDTO{
		ID:         m.ID,
		Title:      m.Title,
		Subtitle:   m.Subtitle,
		ButtonText: m.ButtonText,
		Action:     m.Action,
		Image:      m.Image,
	}
}

func (r CreateSlideRequest) ToModel() model.SlideModel {
	return model.SlideModel{
		Title:      r.Title,
		Subtitle:   r.Subtitle,
		ButtonText: r.ButtonText,
		Action:     r.Action,
		Image:      r.Image,
	}
}

func (r *UpdateSlideRequest) ApplyToModel(m *model.SlideModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Subtitle != nil {
		m.Subtitle = *r.Subtitle
	}
	if r.ButtonText != nil {
		m.ButtonText = *r.ButtonText
	}
	if r.Action != nil {
		m.Action = *r.Action
	}
	if r.Image != nil {
		m.Image = *r.Image
	}
}
