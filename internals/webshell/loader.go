package webshell

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// HTTPDataSource pulls the reference batch from the REST API.
type HTTPDataSource struct {
	BaseURL string
}

func NewHTTPDataSource(baseURL string) *HTTPDataSource {
	return &HTTPDataSource{BaseURL: baseURL}
}

func (s *HTTPDataSource) LoadAll(ctx context.Context) (*ReferenceData, error) {
	data := &ReferenceData{}
	targets := []struct {
		path string
		dst  *json.RawMessage
	}{
		{"/api/events", &data.Events},
		{"/api/slides", &data.Slides},
		{"/api/tally", &data.Tally},
		{"/api/heritage", &data.Heritage},
	}

	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body, err := s.get(t.path)
		if err != nil {
			return nil, err
		}
		*t.dst = body
	}
	return data, nil
}

func (s *HTTPDataSource) get(path string) (json.RawMessage, error) {
	agent := fiber.Get(s.BaseURL + path)
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("fetch %s: %w", path, errs[0])
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", path, code)
	}
	return json.RawMessage(body), nil
}
