package ui

import (
	"strconv"
	"strings"
)

func formString(values map[string][]string, key string) string {
	if values == nil {
		return ""
	}
	return strings.TrimSpace(first(values[key]))
}

func formInt(values map[string][]string, key string) int {
	n, _ := strconv.Atoi(formString(values, key))
	return n
}

func formInt64(values map[string][]string, key string) int64 {
	n, _ := strconv.ParseInt(formString(values, key), 10, 64)
	return n
}

func formInt64List(values map[string][]string, key string) []int64 {
	if values == nil {
		return nil
	}
	out := make([]int64, 0, len(values[key]))
	for _, raw := range values[key] {
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
