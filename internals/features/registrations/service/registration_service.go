package service

import (
	"time"

	"github.com/google/uuid"

	"paisleygames_backend/internals/constants"
	eventModel "paisleygames_backend/internals/features/contents/events/model"
	mailService "paisleygames_backend/internals/features/mailer/service"
	"paisleygames_backend/internals/features/registrations/dto"
	"paisleygames_backend/internals/features/registrations/model"
)

// BuildRows fans a submission out into one pending row per resolved event.
// Unresolved names simply produce no row. All rows share submitter
// identity, a group id, and a single timestamp.
func BuildRows(req dto.RegisterRequest, resolved []eventModel.EventModel) []model.RegistrationModel {
	groupID := uuid.New()
	now := time.Now()

	rows := make([]model.RegistrationModel, 0, len(resolved))
	for _, ev := range resolved {
		rows = append(rows, model.RegistrationModel{
			GroupID:   groupID,
			UserName:  req.Name,
			Email:     req.Email,
			Type:      req.Type,
			EventName: ev.Name,
			Status:    constants.StatusPending,
			CreatedAt: now,
		})
	}
	return rows
}

// ToEventDetails maps resolved events into the mailer's template slice.
func ToEventDetails(resolved []eventModel.EventModel) []mailService.EventDetail {
	details := make([]mailService.EventDetail, 0, len(resolved))
	for _, ev := range resolved {
		details = append(details, mailService.EventDetail{
			Name:     ev.Name,
			Date:     ev.EventDate,
			Time:     ev.EventTime,
			Location: ev.Location,
		})
	}
	return details
}
