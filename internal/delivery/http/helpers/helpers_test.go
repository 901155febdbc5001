package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offerdirectory/internal/domain"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query string
		want  domain.PaginationParams
	}{
		{"", domain.PaginationParams{Page: 1, PageSize: 20}},
		{"page=3&page_size=5", domain.PaginationParams{Page: 3, PageSize: 5}},
		{"page=0&page_size=-4", domain.PaginationParams{Page: 1, PageSize: 20}},
		{"page=x&page_size=500", domain.PaginationParams{Page: 1, PageSize: MaxPageSize}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/fetches?"+tt.query, nil)
			require.Equal(t, tt.want, ParsePagination(r))
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, PaginationMeta{Page: 2, PageSize: 10, Total: 25, TotalPages: 3}, NewPaginationMeta(2, 10, 25))
	assert.Equal(t, 0, NewPaginationMeta(1, 0, 25).TotalPages)
}

func TestParseViewControls(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		c, err := ParseViewControls(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.True(t, c.Empty())
	})

	t.Run("all controls", func(t *testing.T) {
		c, err := ParseViewControls(httptest.NewRequest(http.MethodGet, "/?order=Z-A&page=2&rows_per_page=-1", nil))
		require.NoError(t, err)
		require.NotNil(t, c.Order)
		require.NotNil(t, c.Page)
		require.NotNil(t, c.RowsPerPage)
		assert.Equal(t, domain.SortNameDesc, *c.Order)
		assert.Equal(t, 2, *c.Page)
		assert.Equal(t, "-1", *c.RowsPerPage)
	})

	t.Run("unknown order is the default", func(t *testing.T) {
		c, err := ParseViewControls(httptest.NewRequest(http.MethodGet, "/?order=cheapest", nil))
		require.NoError(t, err)
		require.NotNil(t, c.Order)
		assert.Equal(t, domain.SortDefault, *c.Order)
	})

	t.Run("non-numeric page", func(t *testing.T) {
		_, err := ParseViewControls(httptest.NewRequest(http.MethodGet, "/?page=two", nil))
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

type pageRequest struct {
	Page *int `json:"page"`
}

func (p pageRequest) Validate() []string {
	if p.Page == nil {
		return []string{"page is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantOK  bool
		wantMsg string
	}{
		{"valid", `{"page":3}`, true, ""},
		{"empty body", ``, false, "request body is empty"},
		{"unknown field", `{"page":1,"extra":true}`, false, "unknown field"},
		{"validation", `{}`, false, "page is required"},
		{"too large", `{"page":1` + strings.Repeat(" ", maxControlBody) + `}`, false, "too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPut, "/views/x/page", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest pageRequest
			ok := DecodeAndValidate(rr, r, &dest)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, 3, *dest.Page)
				return
			}
			require.Equal(t, http.StatusBadRequest, rr.Code)
			var resp APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, ErrCodeBadRequest, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.wantMsg)
		})
	}
}
