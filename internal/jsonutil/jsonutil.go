// Package jsonutil provides helpers for diagnosing JSON decode failures.
package jsonutil

import (
	"encoding/json"
	"errors"
)

// SyntaxPosition converts the byte offset of a *json.SyntaxError inside data
// into a 1-based line and column. ok is false when err carries no offset.
func SyntaxPosition(data []byte, err error) (line, column int, ok bool) {
	var syn *json.SyntaxError
	if !errors.As(err, &syn) {
		return 0, 0, false
	}

	offset := syn.Offset
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}

	line, column = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column, true
}
