package configloader

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// envValue returns the variable's value and whether it was set to
// something non-empty. Every override below goes through it.
func envValue(env string) (string, bool) {
	val := os.Getenv(env)
	return val, val != ""
}

// OverrideString replaces *field when the environment variable is set.
func OverrideString(field *string, env string) {
	if val, ok := envValue(env); ok {
		*field = val
	}
}

// OverrideInt replaces *field when the variable is set to a valid int;
// an unparseable value leaves the field untouched.
func OverrideInt(field *int, env string) {
	if val, ok := envValue(env); ok {
		if i, err := strconv.Atoi(val); err == nil {
			*field = i
		}
	}
}

// OverrideInt64 is OverrideInt for 64-bit fields (e.g. DNS TTLs).
func OverrideInt64(field *int64, env string) {
	if val, ok := envValue(env); ok {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			*field = i
		}
	}
}

// OverrideFloat replaces *field when the variable parses as a float64.
func OverrideFloat(field *float64, env string) {
	if val, ok := envValue(env); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*field = f
		}
	}
}

// OverrideBool accepts 1/0 and true/false in the usual casings.
func OverrideBool(field *bool, env string) {
	val, ok := envValue(env)
	if !ok {
		return
	}
	switch val {
	case "1", "true", "TRUE", "True":
		*field = true
	case "0", "false", "FALSE", "False":
		*field = false
	}
}

// OverrideDuration accepts anything time.ParseDuration does ("500ms",
// "1s", "2m30s").
func OverrideDuration(field *time.Duration, env string) {
	if val, ok := envValue(env); ok {
		if d, err := time.ParseDuration(val); err == nil {
			*field = d
		}
	}
}

// OverrideStringSlice parses a comma-separated list, trimming whitespace
// and dropping empty elements ("peer-1, peer-2" -> ["peer-1" "peer-2"]).
func OverrideStringSlice(field *[]string, env string) {
	val, ok := envValue(env)
	if !ok {
		return
	}
	parts := strings.Split(val, ",")
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	*field = trimmed
}
