package dto

import (
	"testing"

	"paisleygames_backend/internals/features/contents/events/model"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestCreateToModelFallbackCoords(t *testing.T) {
	ev := CreateEventRequest{Name: "Caber Toss"}.ToModel()
	if ev.Lat != model.FallbackLat || ev.Lng != model.FallbackLng {
		t.Errorf("coords = (%v, %v), want fallback (%v, %v)", ev.Lat, ev.Lng, model.FallbackLat, model.FallbackLng)
	}

	ev = CreateEventRequest{Name: "Caber Toss", Lat: floatPtr(56.1), Lng: floatPtr(-3.9)}.ToModel()
	if ev.Lat != 56.1 || ev.Lng != -3.9 {
		t.Errorf("explicit coords not kept: (%v, %v)", ev.Lat, ev.Lng)
	}
}

func TestApplyToModelPartialUpdate(t *testing.T) {
	stored := model.EventModel{
		Name:        "Caber Toss",
		Description: "The heavy event",
		Image:       "/images/caber.webp",
		EventDate:   "Saturday, August 15",
		Location:    "Main Arena",
		Lat:         model.FallbackLat,
		Lng:         model.FallbackLng,
	}

	patch := UpdateEventRequest{
		Description: strPtr("Updated description"),
		Lat:         floatPtr(55.9),
	}
	patch.ApplyToModel(&stored)

	if stored.Description != "Updated description" {
		t.Errorf("Description = %q", stored.Description)
	}
	if stored.Lat != 55.9 {
		t.Errorf("Lat = %v", stored.Lat)
	}
	// Omitted fields stay untouched.
	if stored.Name != "Caber Toss" || stored.Image != "/images/caber.webp" ||
		stored.EventDate != "Saturday, August 15" || stored.Location != "Main Arena" ||
		stored.Lng != model.FallbackLng {
		t.Errorf("omitted fields changed: %+v", stored)
	}
}
