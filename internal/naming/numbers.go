package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Numbers returns the runs of ASCII digits in s with leading zeros removed,
// in the order they appear. "E007 part 2" yields ["7", "2"].
func Numbers(s string) []string {
	var numbers []string
	for _, run := range strings.FieldsFunc(s, func(r rune) bool { return r < '0' || r > '9' }) {
		n := strings.TrimLeft(run, "0")
		if n == "" {
			n = "0"
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// Stem returns the base name of path without its final extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// NewName computes the renamed base name for path: the expanded template
// followed by the original extension. It returns ok=false when the name
// contains no number to substitute.
func NewName(t Template, path string, now time.Time) (name string, ok bool, err error) {
	numbers := Numbers(Stem(path))
	if len(numbers) == 0 {
		return "", false, nil
	}

	// Time first, so a % in the original name is not read as a strftime token.
	expanded, err := t.ExpandWithTime(now).ExpandWithNameExt(path).ExpandWithNumbers(numbers)
	if err != nil {
		return "", false, err
	}
	name = expanded.String() + filepath.Ext(path)

	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return "", false, fmt.Errorf("new name must not contain path separators: %s", name)
	}
	if name == filepath.Ext(path) {
		return "", false, fmt.Errorf("template %q expands to an empty name", t)
	}
	return name, true, nil
}
