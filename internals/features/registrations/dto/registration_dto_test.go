package dto

import (
	"reflect"
	"testing"
)

func TestTargetEvents(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterRequest
		want []string
	}{
		{"list wins", RegisterRequest{EventName: "Solo", EventNames: []string{"A", "B"}}, []string{"A", "B"}},
		{"single name", RegisterRequest{EventName: "Solo"}, []string{"Solo"}},
		{"nothing", RegisterRequest{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.TargetEvents(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TargetEvents() = %v, want %v", got, tt.want)
			}
		})
	}
}
