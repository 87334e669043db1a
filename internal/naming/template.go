// Package naming builds new file names for the rename operation.
package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"
)

// DefaultTemplate is used when no rename template is given.
const DefaultTemplate Template = "File number ${number}"

// variablePattern matches ${var} patterns.
var variablePattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// indexedPattern matches numbers[N] variable names.
var indexedPattern = regexp.MustCompile(`^numbers\[(\d+)\]$`)

// Template is a file name template. It can contain ${name} and ${ext}
// (from the original file), ${number} and ${numbers[N]} (digit runs found
// in the original name) and strftime tokens like %Y, %m, %d.
type Template string

// ExpandWithNameExt substitutes ${name} and ${ext} from path.
func (t Template) ExpandWithNameExt(path string) Template {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return replaceVariables(t, map[string]string{
		"name": name,
		"ext":  ext,
	})
}

// ExpandWithNumbers substitutes ${number} with the first number and
// ${numbers[N]} with the N-th. Referencing a missing number is an error.
func (t Template) ExpandWithNumbers(numbers []string) (Template, error) {
	var missing string
	result := variablePattern.ReplaceAllStringFunc(string(t), func(match string) string {
		varName := match[2 : len(match)-1]
		idx := -1
		if varName == "number" {
			idx = 0
		} else if m := indexedPattern.FindStringSubmatch(varName); m != nil {
			idx, _ = strconv.Atoi(m[1])
		}
		if idx < 0 {
			return match
		}
		if idx >= len(numbers) {
			if missing == "" {
				missing = varName
			}
			return match
		}
		return numbers[idx]
	})
	if missing != "" {
		return t, fmt.Errorf("template references %s but only %d number(s) were found", missing, len(numbers))
	}
	return Template(result), nil
}

// ExpandWithTime formats strftime tokens against now.
func (t Template) ExpandWithTime(now time.Time) Template {
	return Template(timefmt.Format(now, string(t)))
}

func (t Template) String() string {
	return string(t)
}

func replaceVariables(template Template, vars map[string]string) Template {
	result := variablePattern.ReplaceAllStringFunc(string(template), func(match string) string {
		varName := match[2 : len(match)-1]
		if val, ok := vars[varName]; ok {
			return val
		}
		return match // leave unchanged if not found
	})
	return Template(result)
}
