package dto_test

import (
	"net/http"
	"net/url"
	"reflect"
	"spa/shared/constant"
	"spa/shared/dto"
	"spa/shared/model"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 20, 0, 0, 0, time.FixedZone("WITA", 8*3600))
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := "2023-01-01T12:00:00Z"
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	defaults := dto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.DefaultValueLimit,
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

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
				"sort_by":  "start_time",
				"sort_dir": "asc",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20, SortBy: "start_time", SortDir: "ASC"},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       defaults,
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "with invalid page parameter",
			queryParams:    map[string]string{"page": "invalid"},
			defaultRequest: true,
			expected:       defaults,
		},
		{
			name:           "with negative page parameter",
			queryParams:    map[string]string{"page": "-1"},
			defaultRequest: true,
			expected:       defaults,
		},
		{
			name:           "with zero page parameter",
			queryParams:    map[string]string{"page": "0"},
			defaultRequest: true,
			expected:       defaults,
		},
		{
			name:           "with negative limit parameter",
			queryParams:    map[string]string{"limit": "-10"},
			defaultRequest: true,
			expected:       defaults,
		},
		{
			name:           "with unknown sort direction",
			queryParams:    map[string]string{"sort_dir": "sideways"},
			defaultRequest: true,
			expected:       defaults,
		},
		{
			name:           "with partial parameters and defaults enabled",
			queryParams:    map[string]string{"page": "3", "sort_by": "status"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "status",
				SortDir: constant.DefaultValueSortDir,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			req, err := http.NewRequest(http.MethodGet, "http://example.com/v1/bookings?"+query.Encode(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if queryParams != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, queryParams)
			}
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	tests := []struct {
		name    string
		params  dto.QueryParams
		allowed []string
		want    dto.QueryParams
	}{
		{
			name:    "allowed column kept",
			params:  dto.QueryParams{SortBy: "start_time", SortDir: "ASC"},
			allowed: []string{"start_time", "created_at"},
			want:    dto.QueryParams{SortBy: "start_time", SortDir: "ASC"},
		},
		{
			name:    "injection falls back to default column",
			params:  dto.QueryParams{SortBy: "id; DROP TABLE bookings", SortDir: "ASC"},
			allowed: []string{"start_time", "created_at"},
			want:    dto.QueryParams{SortBy: "created_at", SortDir: "ASC"},
		},
		{
			name:    "no usable column clears ordering",
			params:  dto.QueryParams{SortBy: "email", SortDir: "DESC"},
			allowed: []string{"block_date"},
			want:    dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			params.RestrictSort(tt.allowed...)

			if params != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, params)
			}
		})
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}

func TestFilter_RangeOperators(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		expected string
	}{
		{
			name:     "strictly less",
			filter:   dto.Filter{Field: "start_time", ArgName: "window_end", Operator: dto.FilterOperatorLess, Table: "bookings"},
			expected: "bookings.start_time < :window_end",
		},
		{
			name:     "strictly greater",
			filter:   dto.Filter{Field: "end_time", ArgName: "window_start", Operator: dto.FilterOperatorGreater, Table: "bookings"},
			expected: "bookings.end_time > :window_start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()
			if where != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, where)
			}

			if _, ok := args[tt.filter.ArgName]; !ok {
				t.Errorf("expected arg %s to be bound", tt.filter.ArgName)
			}
		})
	}
}

func TestFilterGroup_Overlap(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "start_time", ArgName: "window_end", Value: "b", Operator: dto.FilterOperatorLess},
			dto.Filter{Field: "end_time", ArgName: "window_start", Value: "a", Operator: dto.FilterOperatorGreater},
		},
	}

	where, args := group.GetWhereClause()

	if where != "(start_time < :window_end AND end_time > :window_start)" {
		t.Errorf("unexpected where clause %q", where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestFilter_Operators(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		expected string
		args     map[string]any
	}{
		{
			name:     "like wraps value",
			filter:   dto.Filter{Field: "name", Value: "stone", Operator: dto.FilterOperatorLike, Table: "rooms"},
			expected: "LOWER(rooms.name) LIKE LOWER(:name)",
			args:     map[string]any{"name": "%stone%"},
		},
		{
			name:     "in expands slice",
			filter:   dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
			expected: "status IN (:status_0, :status_1)",
			args:     map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name:     "in with empty slice matches nothing",
			filter:   dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			expected: "FALSE",
			args:     map[string]any{},
		},
		{
			name:     "is null",
			filter:   dto.Filter{Field: "room_id", Operator: dto.FilterIsNull, Table: "blocked_times"},
			expected: "blocked_times.room_id IS NULL",
			args:     map[string]any{},
		},
		{
			name:     "unknown operator renders nothing",
			filter:   dto.Filter{Field: "room_id", Operator: "between"},
			expected: "",
			args:     map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()
			if where != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, where)
			}

			if !reflect.DeepEqual(args, tt.args) {
				t.Errorf("expected args %v, got %v", tt.args, args)
			}
		})
	}
}

func TestFilterGroup_SkipsEmptyClauses(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.FilterGroup{Operator: dto.FilterGroupOperatorOr},
			dto.Filter{Field: "room_id", Value: "R", Operator: dto.FilterOperatorEq},
		},
	}

	where, _ := group.GetWhereClause()

	if where != "(room_id = :room_id)" {
		t.Errorf("unexpected where clause %q", where)
	}
}
