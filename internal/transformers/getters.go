package transformers

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// lookup walks a dotted path through nested maps.
func lookup(m map[string]interface{}, key string) (interface{}, bool) {
	keys := strings.Split(key, ".")
	current := m
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	val, ok := current[keys[len(keys)-1]]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}

// firstString returns the first key holding a non-empty scalar, rendered as a string.
func firstString(m map[string]interface{}, keys []string) string {
	for _, key := range keys {
		val, ok := lookup(m, key)
		if !ok {
			continue
		}
		if s, ok := asString(val); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstNumber returns the first key holding a non-zero number. Numeric strings
// such as "$750,000" are accepted.
func firstNumber(m map[string]interface{}, keys []string) (float64, bool) {
	for _, key := range keys {
		val, ok := lookup(m, key)
		if !ok {
			continue
		}
		if f, ok := asFloat(val); ok && f != 0 {
			return f, true
		}
	}
	return 0, false
}

// firstStrings returns the first key holding a non-empty list of strings.
func firstStrings(m map[string]interface{}, keys []string) []string {
	for _, key := range keys {
		val, ok := lookup(m, key)
		if !ok {
			continue
		}
		items, ok := val.([]interface{})
		if !ok {
			if typed, ok := val.([]string); ok {
				items = make([]interface{}, len(typed))
				for i, s := range typed {
					items[i] = s
				}
			} else {
				continue
			}
		}
		var out []string
		for _, item := range items {
			switch v := item.(type) {
			case string:
				if s := strings.TrimSpace(v); s != "" {
					out = append(out, s)
				}
			case map[string]interface{}:
				if s := firstString(v, []string{"url", "src", "source_url"}); s != "" {
					out = append(out, s)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func firstBool(m map[string]interface{}, key string) (bool, bool) {
	val, ok := lookup(m, key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

func firstMaps(m map[string]interface{}, key string) []map[string]interface{} {
	val, ok := lookup(m, key)
	if !ok {
		return []map[string]interface{}{}
	}
	items, ok := val.([]interface{})
	if !ok {
		return []map[string]interface{}{}
	}
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]interface{}); ok {
			out = append(out, obj)
		}
	}
	return out
}

func asString(val interface{}) (string, bool) {
	switch v := val.(type) {
	case string:
		return strings.TrimSpace(v), true
	case float64:
		return formatNumber(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

// asFloat coerces val to a finite number. NaN and infinities are rejected.
func asFloat(val interface{}) (float64, bool) {
	f, ok := rawFloat(val)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func rawFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(v)
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil
	}
	return 0, false
}

// firstDate accepts ISO strings as-is and renders epoch values as YYYY-MM-DD.
func firstDate(m map[string]interface{}, keys []string) *string {
	for _, key := range keys {
		val, ok := lookup(m, key)
		if !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return &s
			}
		default:
			f, ok := asFloat(v)
			if !ok || f <= 0 || f > maxEpochMillis {
				continue
			}
			var t time.Time
			if f < 1e11 {
				t = time.Unix(int64(f), 0)
			} else {
				t = time.UnixMilli(int64(f))
			}
			s := t.UTC().Format("2006-01-02")
			return &s
		}
	}
	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// maxEpochMillis is 9999-12-31 in epoch milliseconds.
const maxEpochMillis = 253402300799999

// count clamps f into [0, MaxInt32] before the integer conversion.
func count(f float64) int {
	f = nonNegative(f)
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
