package service

import (
	"strings"
	"testing"
)

func TestRenderConfirmation(t *testing.T) {
	html, err := RenderConfirmation("Morag", []EventDetail{
		{Name: "Caber Toss", Date: "Saturday, August 15", Time: "10:00 AM", Location: "Main Arena"},
		{Name: "Tug O' War"},
	})
	if err != nil {
		t.Fatalf("RenderConfirmation: %v", err)
	}

	for _, want := range []string{
		"Morag",
		"Caber Toss",
		"Saturday, August 15",
		"Tug O&#39; War",
		"PENDING APPROVAL",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered mail missing %q", want)
		}
	}
}

func TestRenderConfirmationFallbacks(t *testing.T) {
	html, err := RenderConfirmation("Hamish", []EventDetail{{Name: "Hammer Throw"}})
	if err != nil {
		t.Fatalf("RenderConfirmation: %v", err)
	}
	if !strings.Contains(html, "TBD") {
		t.Error("empty date/time did not fall back to TBD")
	}
	if !strings.Contains(html, "Main Arena") {
		t.Error("empty location did not fall back to Main Arena")
	}
}
