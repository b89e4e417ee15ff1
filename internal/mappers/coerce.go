package mappers

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

/* -------- Coercion -------- */

// String coerces a resolved JSON value into display text.
// Numbers are formatted, everything non-textual degrades to "".
func String(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// Number coerces a resolved JSON value with the parse-or-zero policy:
// anything that does not parse cleanly is 0. A genuine backend 0 is therefore
// indistinguishable from "absent"; that conflation is the observed contract,
// not something to fix here.
func Number(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		f, _ = t.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Int is Number truncated toward zero.
func Int(v any) int {
	return int(Number(v))
}

// Truthy reports whether a resolved JSON value reads as true:
// true, any non-zero number, or the usual affirmative strings.
func Truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes", "y":
			return true
		}
		return false
	default:
		return Number(v) != 0
	}
}
