package cli

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/common"
)

var (
	ErrEmptyUsername   = errors.New("username must not be empty")
	ErrUsernameTooLong = errors.New("username too long")
	ErrNotANumber      = errors.New("not a number")
	ErrNotPositive     = errors.New("must be a positive number")
)

// parseUsername trims surrounding whitespace and bounds the length to
// common.MaxOwnerLen runes.
func parseUsername(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmptyUsername
	}
	if utf8.RuneCountInString(name) > common.MaxOwnerLen {
		return "", ErrUsernameTooLong
	}
	return name, nil
}

// parsePositiveFloat accepts strictly positive, finite values.
func parsePositiveFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrNotPositive
	}
	return v, nil
}

// opCode extracts the operation code from an input line: the first rune
// after leading whitespace, with the rest of the line ignored. Blank lines
// carry no code.
func opCode(line string) (rune, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, false
	}
	code, _ := utf8.DecodeRuneInString(trimmed)
	return code, true
}
