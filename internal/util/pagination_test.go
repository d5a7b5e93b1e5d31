package util

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{name: "first page", page: 1, size: 10, offset: 0, limit: 10},
		{name: "third page", page: 3, size: 5, offset: 10, limit: 5},
		{name: "page below one", page: 0, size: 10, offset: 0, limit: 10},
		{name: "default size", page: 2, size: 0, offset: DefaultPageSize, limit: DefaultPageSize},
		{name: "size capped", page: 1, size: 1000, offset: 0, limit: MaxPageSize},
		{name: "huge page", page: math.MaxInt, size: 100, offset: (math.MaxInt/100 - 1) * 100, limit: 100},
		{name: "huge page default size", page: math.MaxInt, size: 0, offset: (math.MaxInt/DefaultPageSize - 1) * DefaultPageSize, limit: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			offset, limit := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	offset, limit := Window("", "")
	assert.Zero(t, offset)
	assert.Zero(t, limit)

	offset, limit = Window("2", "")
	assert.Equal(t, DefaultPageSize, offset)
	assert.Equal(t, DefaultPageSize, limit)

	offset, limit = Window("abc", "3")
	assert.Equal(t, 0, offset)
	assert.Equal(t, 3, limit)

	offset, limit = Window(strconv.Itoa(math.MaxInt), "100")
	assert.GreaterOrEqual(t, offset, 0)
	assert.Equal(t, 100, limit)
}
