package dto_test

import (
	"net/http"
	"net/url"
	"roomstay/shared/constant"
	"roomstay/shared/dto"
	"roomstay/shared/model"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "checkin",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "checkin",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "with invalid sort direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			request := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(request, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "room_id",
				Value:    int64(1),
				Operator: dto.FilterOperatorEq,
				Table:    "room_bookings",
			},
			expectedWhere: "room_bookings.room_id = :room_id",
			expectedArgs:  map[string]any{"room_id": int64(1)},
		},
		{
			name: "inequality",
			filter: dto.Filter{
				Field:    "id",
				Value:    int64(9),
				Operator: dto.FilterOperatorNotEq,
			},
			expectedWhere: "id != :id",
			expectedArgs:  map[string]any{"id": int64(9)},
		},
		{
			name: "less than with custom argument name",
			filter: dto.Filter{
				ArgName:  "checkin_before",
				Field:    "checkin",
				Value:    "2021-04-03",
				Operator: dto.FilterOperatorLess,
			},
			expectedWhere: "checkin < :checkin_before",
			expectedArgs:  map[string]any{"checkin_before": "2021-04-03"},
		},
		{
			name: "greater than with custom argument name",
			filter: dto.Filter{
				ArgName:  "checkout_after",
				Field:    "checkout",
				Value:    "2021-04-01",
				Operator: dto.FilterOperatorGreater,
			},
			expectedWhere: "checkout > :checkout_after",
			expectedArgs:  map[string]any{"checkout_after": "2021-04-01"},
		},
		{
			name: "less than or equal",
			filter: dto.Filter{
				Field:    "beds",
				Value:    2,
				Operator: dto.FilterOperatorLessEq,
			},
			expectedWhere: "beds <= :beds",
			expectedArgs:  map[string]any{"beds": 2},
		},
		{
			name: "greater than or equal",
			filter: dto.Filter{
				Field:    "beds",
				Value:    2,
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedWhere: "beds >= :beds",
			expectedArgs:  map[string]any{"beds": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where clause %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, value := range tt.expectedArgs {
				if args[key] != value {
					t.Errorf("expected arg %s to be %v, got %v", key, value, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "room_id",
				Value:    int64(1),
				Operator: dto.FilterOperatorEq,
			},
			dto.Filter{
				ArgName:  "checkin_before",
				Field:    "checkin",
				Value:    "2021-04-03",
				Operator: dto.FilterOperatorLess,
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(room_id = :room_id AND checkin < :checkin_before)"
	if where != expected {
		t.Errorf("expected where clause %q, got %q", expected, where)
	}

	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
}

func TestFilterGroup_GetWhereClauseEmpty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}
