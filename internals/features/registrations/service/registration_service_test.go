package service

import (
	"testing"

	"paisleygames_backend/internals/constants"
	eventModel "paisleygames_backend/internals/features/contents/events/model"
	"paisleygames_backend/internals/features/registrations/dto"
)

func TestBuildRows(t *testing.T) {
	req := dto.RegisterRequest{
		Name:       "Morag",
		Email:      "morag@example.com",
		Type:       "individual",
		EventNames: []string{"Caber Toss", "Tug O' War", "Unknown Event"},
	}
	resolved := []eventModel.EventModel{
		{Name: "Caber Toss"},
		{Name: "Tug O' War"},
	}

	rows := BuildRows(req, resolved)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	for i, row := range rows {
		if row.Status != constants.StatusPending {
			t.Errorf("rows[%d].Status = %q, want pending", i, row.Status)
		}
		if row.UserName != "Morag" || row.Email != "morag@example.com" || row.Type != "individual" {
			t.Errorf("rows[%d] submitter fields wrong: %+v", i, row)
		}
		if row.GroupID != rows[0].GroupID {
			t.Errorf("rows[%d].GroupID differs within one submission", i)
		}
		if !row.CreatedAt.Equal(rows[0].CreatedAt) {
			t.Errorf("rows[%d].CreatedAt differs within one submission", i)
		}
		if row.EventName != resolved[i].Name {
			t.Errorf("rows[%d].EventName = %q, want %q", i, row.EventName, resolved[i].Name)
		}
	}
}

func TestBuildRowsNothingResolved(t *testing.T) {
	req := dto.RegisterRequest{Name: "Morag", Email: "m@example.com", Type: "group", EventName: "Ghost Event"}
	if rows := BuildRows(req, nil); len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}

func TestToEventDetails(t *testing.T) {
	details := ToEventDetails([]eventModel.EventModel{{
		Name:      "Highland Dancing",
		EventDate: "Sunday, August 16",
		EventTime: "11:00 AM",
		Location:  "Festival Stage",
	}})
	if len(details) != 1 {
		t.Fatalf("len(details) = %d", len(details))
	}
	d := details[0]
	if d.Name != "Highland Dancing" || d.Date != "Sunday, August 16" ||
		d.Time != "11:00 AM" || d.Location != "Festival Stage" {
		t.Errorf("detail = %+v", d)
	}
}
