package match

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// mimeMatches sniffs the file content and compares it with want.
// want may be an exact type ("text/plain"), a parent of the detected type
// ("text/plain" matches "text/x-go"), or a wildcard ("image/*").
func mimeMatches(afs afero.Fs, path, want string) (bool, error) {
	f, err := afs.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return false, fmt.Errorf("failed to detect type of %s: %w", path, err)
	}

	return mimeIs(mt, want), nil
}

func mimeIs(mt *mimetype.MIME, want string) bool {
	want = strings.ToLower(strings.TrimSpace(want))

	if top, ok := strings.CutSuffix(want, "/*"); ok {
		detected, _, _ := strings.Cut(mt.String(), "/")
		return detected == top
	}

	for m := mt; m != nil; m = m.Parent() {
		if m.Is(want) {
			return true
		}
	}
	return false
}
