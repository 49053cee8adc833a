package reconcile

import (
	"math"
	"strconv"
	"strings"

	"stock-sync/core/utils"
)

// Normalize maps an arbitrary cell value to its canonical string form.
//
// Spreadsheet parsers hand back mixed types for the same logical column:
// "123", 123 and 123.0 must all normalize to "123" or reconciliation
// produces false negatives. Absent values become EmptyReference.
// Matching stays case-sensitive and exact; nothing is trimmed here beyond
// surrounding whitespace already handled at parse time.
func Normalize(val any) string {
	switch v := val.(type) {
	case nil:
		return EmptyReference
	case string:
		if v == "" {
			return EmptyReference
		}
		return normalizeString(v)
	case float64:
		return normalizeFloat(v)
	case float32:
		return normalizeFloat(float64(v))
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return strconv.Itoa(utils.ToInt(v))
	default:
		s := utils.ToString(v)
		if s == "" {
			return EmptyReference
		}
		return s
	}
}

// normalizeFloat renders integral floats without the trailing ".0" the
// spreadsheet layer introduces on numeric columns.
func normalizeFloat(f float64) string {
	if math.IsNaN(f) {
		return EmptyReference
	}
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// normalizeString collapses string cells that carry a numeric float form
// ("123.0") to the integer form, so CSV and XLSX sources compare equal.
func normalizeString(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if f == math.Trunc(f) && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}
