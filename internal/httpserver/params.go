package httpserver

import (
	"errors"
	"strconv"
)

var errNotPositive = errors.New("not a positive integer")

func parsePositive(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, errNotPositive
	}
	return v, nil
}
