package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParams_Offset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, PaginationParams{Page: 3, PageSize: 20}.Offset())
	assert.Equal(t, 0, PaginationParams{Page: 0, PageSize: 20}.Offset())
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name      string
		w         PageWindow
		wantStart int
		wantEnd   int
		wantEmpty int
		wantPages int
		wantPrev  bool
		wantNext  bool
	}{
		{"two items page size 5", PageWindow{Page: 0, RowsPerPage: 5, Total: 2}, 0, 2, 3, 1, false, false},
		{"full first page", PageWindow{Page: 0, RowsPerPage: 10, Total: 25}, 0, 10, 0, 3, false, true},
		{"partial last page", PageWindow{Page: 2, RowsPerPage: 10, Total: 25}, 20, 25, 5, 3, true, false},
		{"past the end clamps", PageWindow{Page: 7, RowsPerPage: 10, Total: 25}, 25, 25, 10, 3, true, false},
		{"huge page clamps", PageWindow{Page: 1 << 60, RowsPerPage: 20, Total: 3}, 3, 3, 20, 1, true, false},
		{"empty list", PageWindow{Page: 0, RowsPerPage: 10, Total: 0}, 0, 0, 10, 0, false, false},
		{"all rows", PageWindow{Page: 0, RowsPerPage: RowsAll, Total: 25}, 0, 25, 0, 1, false, false},
		{"all rows ignores page", PageWindow{Page: 3, RowsPerPage: RowsAll, Total: 4}, 0, 4, 0, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.w.Bounds()
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.Equal(t, tt.wantEmpty, tt.w.EmptyRows())
			assert.Equal(t, tt.wantPages, tt.w.TotalPages())
			assert.Equal(t, tt.wantPrev, tt.w.HasPrev())
			assert.Equal(t, tt.wantNext, tt.w.HasNext())
		})
	}
}

func TestPageWindow_PagesPartitionList(t *testing.T) {
	for _, total := range []int{0, 1, 4, 5, 6, 19, 20, 21, 57} {
		for _, size := range []int{5, 10, 20} {
			seen := make([]int, total)
			w := PageWindow{RowsPerPage: size, Total: total}
			for page := 0; page < w.TotalPages(); page++ {
				w.Page = page
				start, end := w.Bounds()
				for i := start; i < end; i++ {
					seen[i]++
				}
				require.GreaterOrEqual(t, w.EmptyRows(), 0)
				require.Equal(t, size-(end-start), w.EmptyRows())
			}
			for i, n := range seen {
				require.Equal(t, 1, n, "total=%d size=%d index=%d", total, size, i)
			}
		}
	}
}

func TestParseRowsPerPage(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"5", 5, false},
		{"10", 10, false},
		{" 20 ", 20, false},
		{"-1", RowsAll, false},
		{"All", RowsAll, false},
		{"7", 0, true},
		{"0", 0, true},
		{"ten", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRowsPerPage(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
