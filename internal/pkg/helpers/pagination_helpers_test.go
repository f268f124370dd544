package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		want    int
	}{
		{"first page", 1, 10, 0},
		{"second page", 2, 10, 10},
		{"larger page size", 3, 25, 50},
		{"zero page falls back to first", 0, 10, 0},
		{"negative page falls back to first", -5, 10, 0},
		{"zero per page falls back to default", 2, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateOffset(tt.page, tt.perPage))
		})
	}
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name        string
		totalCount  int64
		page        int
		perPage     int
		wantPages   int
		wantHasNext bool
		wantHasPrev bool
	}{
		{"empty result set has zero pages", 0, 1, 10, 0, false, false},
		{"exact multiple", 100, 1, 10, 10, true, false},
		{"partial last page rounds up", 101, 1, 10, 11, true, false},
		{"middle page", 50, 3, 10, 5, true, true},
		{"last page", 50, 5, 10, 5, false, true},
		{"page past the end is not clamped", 50, 9, 10, 5, false, true},
		{"single row", 1, 1, 10, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(tt.totalCount, tt.page, tt.perPage)
			assert.Equal(t, tt.totalCount, meta.TotalCount)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.perPage, meta.PerPage)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.wantHasNext, meta.HasNextPage)
			assert.Equal(t, tt.wantHasPrev, meta.HasPrevPage)
		})
	}
}
