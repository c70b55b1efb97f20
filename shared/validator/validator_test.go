package validator_test

import (
	"roomstay/shared/validator"
	"strings"
	"testing"
)

type guestPayload struct {
	Firstname string `json:"firstname" validate:"required,min=3,max=18"`
	Lastname  string `json:"lastname"  validate:"required,min=3,max=30"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"required,min=11,max=21"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
		errContains string
	}{
		{
			name:        "valid payload",
			body:        `{"firstname":"Jim","lastname":"Brown","email":"jim@example.com","phone":"12345678901"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"firstname":`,
			expectError: true,
			errContains: "failed to decode request body",
		},
		{
			name:        "missing required field",
			body:        `{"firstname":"Jim","lastname":"Brown","phone":"12345678901"}`,
			expectError: true,
			errContains: "Email is required",
		},
		{
			name:        "field below minimum length",
			body:        `{"firstname":"Ji","lastname":"Brown","email":"jim@example.com","phone":"12345678901"}`,
			expectError: true,
			errContains: "Firstname must be greater than or equal to 3",
		},
		{
			name:        "field above maximum length",
			body:        `{"firstname":"Jimjimjimjimjimjimj","lastname":"Brown","email":"jim@example.com","phone":"12345678901"}`,
			expectError: true,
			errContains: "Firstname must be less than or equal to 18",
		},
		{
			name:        "invalid email",
			body:        `{"firstname":"Jim","lastname":"Brown","email":"not-an-email","phone":"12345678901"}`,
			expectError: true,
			errContains: "Email must be a valid email address",
		},
		{
			name:        "phone too short",
			body:        `{"firstname":"Jim","lastname":"Brown","email":"jim@example.com","phone":"1234567890"}`,
			expectError: true,
			errContains: "Phone must be greater than or equal to 11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload guestPayload
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error to contain %q, got %q", tt.errContains, err.Error())
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	payload := guestPayload{
		Firstname: "Jim",
		Lastname:  "Brown",
		Email:     "jim@example.com",
		Phone:     "12345678901",
	}

	if err := validator.ValidateStruct(&payload); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	payload.Lastname = ""
	err := validator.ValidateStruct(&payload)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if !strings.Contains(err.Error(), "Lastname is required") {
		t.Errorf("expected error to mention Lastname, got %q", err.Error())
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{
			name:        "positive id",
			field:       int64(5),
			tag:         "required,gte=1",
			expectError: false,
		},
		{
			name:        "zero id",
			field:       int64(0),
			tag:         "required,gte=1",
			expectError: true,
		},
		{
			name:        "valid sort direction",
			field:       "DESC",
			tag:         "oneof=ASC DESC",
			expectError: false,
		},
		{
			name:        "invalid sort direction",
			field:       "SIDEWAYS",
			tag:         "oneof=ASC DESC",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
