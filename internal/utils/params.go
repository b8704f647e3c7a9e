// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"errors"
	"strconv"
	"strings"
)

// ErrBadNumber is returned by IntParam for values that are not integers.
var ErrBadNumber = errors.New("not an integer")

// IntParam parses a query parameter value. An empty (or blank) value yields
// def; anything else must be a base-10 integer.
//
// Example:
//
//	n, err := utils.IntParam("42", 7) // 42, nil
//	n, err = utils.IntParam("", 7)    // 7, nil
//	n, err = utils.IntParam("x", 7)   // 0, ErrBadNumber
func IntParam(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrBadNumber
	}
	return n, nil
}
