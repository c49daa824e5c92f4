package validator_test

import (
	"strings"
	"testing"

	"luxeroom/shared/validator"
)

type testRequest struct {
	RoomID    string `json:"roomId"    validate:"required"`
	GuestName string `json:"guestName" validate:"required,max=100"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	Nights    int    `json:"nights"    validate:"required,min=1"`
	Status    string `json:"status"    validate:"omitempty,oneof=Ready Cleaning"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        testRequest
		expectError bool
	}{
		{
			name: "valid struct",
			data: testRequest{
				RoomID:    "r101",
				GuestName: "Aisha",
				StartDate: "2026-03-10",
				Nights:    2,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: testRequest{
				GuestName: "Aisha",
				StartDate: "2026-03-10",
				Nights:    2,
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: testRequest{
				RoomID:    "r101",
				GuestName: "Aisha",
				StartDate: "10/03/2026",
				Nights:    2,
			},
			expectError: true,
		},
		{
			name: "nights below minimum",
			data: testRequest{
				RoomID:    "r101",
				GuestName: "Aisha",
				StartDate: "2026-03-10",
				Nights:    -1,
			},
			expectError: true,
		},
		{
			name: "unknown enum value",
			data: testRequest{
				RoomID:    "r101",
				GuestName: "Aisha",
				StartDate: "2026-03-10",
				Nights:    2,
				Status:    "Broken",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	body := strings.NewReader(`{"roomId":"r101","guestName":"Aisha","startDate":"2026-03-10","nights":2}`)

	req := testRequest{}
	if err := validator.Validate(body, &req); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if req.RoomID != "r101" || req.Nights != 2 {
		t.Errorf("expected decoded request, got %+v", req)
	}
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"roomId":`)

	req := testRequest{}
	if err := validator.Validate(body, &req); err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	body := strings.NewReader(`{"nights":0}`)

	req := testRequest{}
	err := validator.Validate(body, &req)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	msg := err.Error()
	for _, field := range []string{"RoomID", "GuestName", "StartDate", "Nights"} {
		if !strings.Contains(msg, field) {
			t.Errorf("expected message to mention %s, got %q", field, msg)
		}
	}
}
