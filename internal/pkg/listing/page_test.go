package listing

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		perPage  int
		def      int
		expected Page
	}{
		{"defaults", 0, 0, 15, Page{1, 15}},
		{"negative page", -3, 5, 10, Page{1, 5}},
		{"valid", 4, 25, 10, Page{4, 25}},
		{"per page above max", 1, MaxPerPage + 1, 10, Page{1, 10}},
		{"per page at max", 1, MaxPerPage, 10, Page{1, MaxPerPage}},
		{"bad entity default", 1, 0, -1, Page{1, DefaultPerPage}},
		{"page past the offset range", math.MaxInt, 10, 10, Page{math.MaxInt / 10, 10}},
		{"page at the offset range", math.MaxInt / 4, 4, 10, Page{math.MaxInt / 4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPage(tt.page, tt.perPage, tt.def))
		})
	}
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, Page{1, 10}, ParsePage("", "", 10))
	assert.Equal(t, Page{1, 10}, ParsePage("abc", "x", 10))
	assert.Equal(t, Page{3, 5}, ParsePage("3", "5", 10))
	assert.Equal(t, Page{1, 10}, ParsePage("0", "-5", 10))
	assert.Equal(t, Page{2, 15}, ParsePage("2", "1.5", 15))
	assert.Equal(t, Page{1, 10}, ParsePage("9223372036854775808", "10", 10))
}

func TestPage_OffsetStaysInRange(t *testing.T) {
	tests := []struct {
		page    string
		perPage string
	}{
		{"4611686018427387905", "4"},
		{"9223372036854775807", "10"},
		{"9223372036854775807", "1"},
		{"9223372036854775807", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.page+"/"+tt.perPage, func(t *testing.T) {
			p := ParsePage(tt.page, tt.perPage, 10)
			assert.Greater(t, p.Offset(), uint64(0))
			assert.LessOrEqual(t, p.Offset(), uint64(math.MaxInt64))
		})
	}
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, uint64(0), Page{1, 10}.Offset())
	assert.Equal(t, uint64(10), Page{2, 10}.Offset())
	assert.Equal(t, uint64(45), Page{10, 5}.Offset())
}

func TestTotalPages(t *testing.T) {
	for _, perPage := range []int{1, 2, 3, 5, 7, 10, 15, 100} {
		for total := int64(0); total <= 250; total++ {
			t.Run(fmt.Sprintf("%d/%d", total, perPage), func(t *testing.T) {
				pages := TotalPages(total, perPage)
				expected := int(math.Ceil(float64(total) / float64(perPage)))
				assert.Equal(t, expected, pages)
				assert.Equal(t, total == 0, pages == 0)
			})
		}
	}
}

func TestTotalPages_InvalidPerPage(t *testing.T) {
	assert.Equal(t, 0, TotalPages(10, 0))
}
