package util

import (
	"math"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func Calculate(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	// keep the offset from overflowing
	if maxPage := math.MaxInt / size; page > maxPage {
		page = maxPage
	}
	return (page - 1) * size, size
}

// Window turns the page and size query values into an offset and limit.
// Without either value the limit is zero, meaning no paging.
func Window(pageParam, sizeParam string) (offset, limit int) {
	if pageParam == "" && sizeParam == "" {
		return 0, 0
	}
	return Calculate(ParseIntDefault(pageParam, 1), ParseIntDefault(sizeParam, DefaultPageSize))
}
