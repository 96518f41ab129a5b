package utils

import (
	"strconv"
	"strings"

	"github.com/PolarWolf314/enigma/internal/ui"
)

// FormatDisks renders disk names with their offsets, e.g. "A12 E43 B27".
func FormatDisks(names []string, offsets []int) string {
	parts := make([]string, len(names))
	for i, name := range names {
		label := name
		if i < len(offsets) {
			label += strconv.Itoa(offsets[i])
		}
		parts[i] = ui.Highlight.Sprint(label)
	}
	return strings.Join(parts, " ")
}

// SplitNames splits a comma separated list, dropping empty items.
func SplitNames(value string) []string {
	var names []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
