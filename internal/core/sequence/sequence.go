// Package sequence defines the contract for generating the human-readable
// sequential codes used across the inventory: the daily tag code printed on
// asset labels, the daily asset-file code that correlates a registration back
// to its historical origin, and the parent-scoped codes used by organizational
// catalogs.
package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxPerDay is the hard ceiling of a daily sequence. The 4-digit suffix never
// rolls over; exhausting it is a capacity failure.
const MaxPerDay = 9999

// SuffixWidth is the zero-padded width of the daily sequence suffix.
const SuffixWidth = 4

// Generator mints collision-free sequential codes. Implementations must
// guarantee that two concurrent calls for the same day never return the same
// code; gaps are acceptable, duplicates are not.
type Generator interface {
	// NextTagCode returns the next tag code for the given day,
	// formatted YYMMDD + 4-digit sequence (e.g. "2511160001").
	NextTagCode(ctx context.Context, day time.Time) (string, error)

	// NextAssetFileCode returns the next asset-file code for the given day,
	// formatted AF-YYYYMMDD-NNNN. Its counter is independent from the tag
	// code counter.
	NextAssetFileCode(ctx context.Context, day time.Time) (string, error)
}

// TagPrefix returns the date prefix of tag codes for a day.
func TagPrefix(day time.Time) string {
	return day.Format("060102")
}

// AssetFilePrefix returns the date prefix of asset-file codes for a day,
// including the trailing separator.
func AssetFilePrefix(day time.Time) string {
	return "AF-" + day.Format("20060102") + "-"
}

// Format appends the zero-padded sequence number to a prefix.
func Format(prefix string, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, SuffixWidth, n)
}

// NextAfter computes the sequence number following the highest existing code
// for a prefix. An empty highest code starts the sequence at 1. The second
// return value is false when the sequence is exhausted for the day.
func NextAfter(prefix, highest string) (int, bool) {
	if highest == "" {
		return 1, true
	}
	n := ParseSuffix(prefix, highest)
	if n < 0 {
		// A malformed stored code must not stall registration; restart
		// conservatively from the ceiling check path.
		n = 0
	}
	next := n + 1
	if next > MaxPerDay {
		return 0, false
	}
	return next, true
}

// ParseSuffix extracts the numeric suffix of a formatted code.
// Returns -1 if the code does not match the prefix or the suffix is not numeric.
func ParseSuffix(prefix, code string) int {
	if !strings.HasPrefix(code, prefix) {
		return -1
	}
	n, err := strconv.Atoi(code[len(prefix):])
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// ChildCode builds a parent-scoped code: "{parent}-{n}" where n is the number
// of existing children plus one. Used by branch and area catalogs.
func ChildCode(parentCode string, existingChildren int) string {
	return fmt.Sprintf("%s-%d", parentCode, existingChildren+1)
}

// ResponsibleCode builds the globally sequential responsible-party code "R{n}".
func ResponsibleCode(existingTotal int) string {
	return fmt.Sprintf("R%d", existingTotal+1)
}
