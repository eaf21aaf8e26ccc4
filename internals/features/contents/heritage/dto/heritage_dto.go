package dto

import (
	"paisleygames_backend/internals/features/contents/heritage/model"
)

type HeritageDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type CreateHeritageRequest struct {
	Title       string `json:"title" validate:"required,min=2"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type UpdateHeritageRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func ToHeritageDTO(m model.HeritageModel) HeritageDTO {
	return HeritageDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Image:       m.Image,
	}
}

func (r CreateHeritageRequest) ToModel() model.HeritageModel {
	return model.HeritageModel{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
	}
}

func (r *UpdateHeritageRequest) ApplyToModel(m *model.HeritageModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Image != nil {
		m.Image = *r.Image
	}
}
