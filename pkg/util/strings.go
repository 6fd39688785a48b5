package util

import (
	"strconv"
	"strings"
)

// Str2List splits str on sep, trimming whitespace and dropping empty and
// duplicate elements while keeping first-seen order.
func Str2List(str string, sep string) []string {
	list := make([]string, 0)

	if str == "" {
		return list
	}

	listMap := make(map[string]bool)
	for _, elem := range strings.Split(str, sep) {
		elem = strings.TrimSpace(elem)
		if len(elem) == 0 {
			continue
		}
		if _, ok := listMap[elem]; ok {
			continue
		}
		listMap[elem] = true
		list = append(list, elem)
	}

	return list
}

// Int64List parses a separated list of integer ids, dropping elements that
// do not parse.
func Int64List(str string, sep string) []int64 {
	elems := Str2List(str, sep)
	out := make([]int64, 0, len(elems))
	for _, elem := range elems {
		if id, err := strconv.ParseInt(elem, 10, 64); err == nil {
			out = append(out, id)
		}
	}
	return out
}
