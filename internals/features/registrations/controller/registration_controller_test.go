package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Register with no event names must reject before any DB work, so a nil
// DB is safe here.
func TestRegisterRejectsEmptyEventList(t *testing.T) {
	app := fiber.New()
	ctrl := NewRegistrationController(nil, nil)
	app.Post("/api/register", ctrl.Register)

	bodies := []string{
		`{"name":"Morag","email":"morag@example.com","type":"individual"}`,
		`{"name":"Morag","email":"morag@example.com","type":"group","eventNames":[]}`,
	}
	for _, body := range bodies {
		req := httptest.NewRequest("POST", "/api/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d for body %s, want 400", resp.StatusCode, body)
		}
	}
}

func TestRegisterRejectsInvalidBody(t *testing.T) {
	app := fiber.New()
	ctrl := NewRegistrationController(nil, nil)
	app.Post("/api/register", ctrl.Register)

	// Bad email and bad type both fail validation after the event check.
	body := `{"name":"Morag","email":"not-an-email","type":"solo","eventName":"Caber Toss"}`
	req := httptest.NewRequest("POST", "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetByEmailRequiresQuery(t *testing.T) {
	app := fiber.New()
	ctrl := NewRegistrationController(nil, nil)
	app.Get("/api/check-status", ctrl.GetByEmail)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/check-status", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
