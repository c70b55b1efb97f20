package shared_test

import (
	"reflect"
	"roomstay/shared"
	"roomstay/shared/constant"
	"roomstay/shared/dto"
	"testing"
	"time"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "valid FALSE string",
			input:    "FALSE",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *int64
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid positive number",
			input:    "42",
			expected: int64Ptr(42),
		},
		{
			name:     "valid negative number",
			input:    "-7",
			expected: int64Ptr(-7),
		},
		{
			name:     "zero",
			input:    "0",
			expected: int64Ptr(0),
		},
		{
			name:     "invalid string returns nil",
			input:    "abc",
			expected: nil,
		},
		{
			name:     "float string returns nil",
			input:    "1.5",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToInt(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type bookingUpdate struct {
		RoomID      int64  `db:"room_id"`
		Firstname   string `db:"firstname"`
		Lastname    string `db:"lastname"`
		Internal    string
		NoTag       string `db:""`
		DepositPaid bool   `db:"deposit_paid"`
	}

	data := bookingUpdate{
		RoomID:    1,
		Firstname: "Jim",
		Lastname:  "Brown",
		Internal:  "skipped",
		NoTag:     "skipped",
	}

	result := shared.TransformFields(data)

	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}

	expected := map[string]any{
		"room_id":   int64(1),
		"firstname": "Jim",
		"lastname":  "Brown",
	}

	for key, expectedValue := range expected {
		if actualValue, exists := result[key]; !exists {
			t.Errorf("expected field %s to exist", key)
		} else if !reflect.DeepEqual(actualValue, expectedValue) {
			t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
		}
	}

	// Zero-valued and untagged fields must be skipped.
	for _, key := range []string{"deposit_paid", "Internal", "NoTag", ""} {
		if _, exists := result[key]; exists {
			t.Errorf("unexpected field %q in result", key)
		}
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       any
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "basic filter by id",
			id:      int64(123),
			fieldID: "id",
			table:   "room_bookings",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    int64(123),
						Operator: dto.FilterOperatorEq,
						Table:    "room_bookings",
					},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      int64(456),
			fieldID: "id",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    int64(456),
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("booking:get", int64(7))

	if key != "booking:get:7" {
		t.Errorf("expected key to be 'booking:get:7', got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	filterA := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "room_id", Value: int64(1), Operator: dto.FilterOperatorEq},
		},
		Operator: dto.FilterGroupOperatorAnd,
	}
	filterB := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "room_id", Value: int64(2), Operator: dto.FilterOperatorEq},
		},
		Operator: dto.FilterGroupOperatorAnd,
	}

	keyA := shared.BuildCacheKeyWithQuery("booking:get_all", params, filterA)
	keyB := shared.BuildCacheKeyWithQuery("booking:get_all", params, filterB)

	if keyA == keyB {
		t.Error("expected distinct filters to produce distinct keys")
	}

	keyA2 := shared.BuildCacheKeyWithQuery("booking:get_all", params, filterA)
	if keyA != keyA2 {
		t.Error("expected identical queries to produce identical keys")
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func int64Ptr(i int64) *int64 {
	return &i
}
