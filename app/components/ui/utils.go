package ui

import "strings"

// CN joins class lists with single spaces, skipping empty inputs.
// Inputs are kept verbatim: no splitting, trimming or deduplication.
func CN(inputs ...string) string {
	classes := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if input == "" {
			continue
		}
		classes = append(classes, input)
	}
	return strings.Join(classes, " ")
}

// When returns class if cond holds, otherwise the empty string CN skips.
func When(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
