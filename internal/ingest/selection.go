package ingest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseSelection resolves a 1-based index list such as "1,3,5" or "2-4"
// against a set of max items. "all", "*" and an empty string select
// everything. The result is sorted, deduplicated and 0-based.
func ParseSelection(input string, max int) ([]int, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" || input == "all" || input == "*" {
		out := make([]int, max)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}

	picked := make(map[int]struct{})
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, err := parseRange(part)
		if err != nil {
			return nil, err
		}
		for i := lo; i <= hi; i++ {
			if i < 1 || i > max {
				return nil, fmt.Errorf("selection index %d out of range 1-%d", i, max)
			}
			picked[i-1] = struct{}{}
		}
	}
	if len(picked) == 0 {
		return nil, fmt.Errorf("selection %q matched nothing", input)
	}

	out := make([]int, 0, len(picked))
	for i := range picked {
		out = append(out, i)
	}
	sort.Ints(out)
	return out, nil
}

func parseRange(part string) (int, int, error) {
	if lo, hi, ok := strings.Cut(part, "-"); ok {
		a, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid selection range %q", part)
		}
		b, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid selection range %q", part)
		}
		if a > b {
			return 0, 0, fmt.Errorf("selection range %q is reversed", part)
		}
		return a, b, nil
	}
	n, err := strconv.Atoi(part)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid selection index %q", part)
	}
	return n, n, nil
}

// Select applies a selection expression to the discovered file list.
func Select(files []string, selection string) ([]string, error) {
	idx, err := ParseSelection(selection, len(files))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, files[i])
	}
	return out, nil
}
