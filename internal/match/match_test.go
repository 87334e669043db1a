package match

import (
	"errors"
	"testing"

	"github.com/prettymuchbryce/extops/internal/fs"
	"github.com/prettymuchbryce/extops/internal/testutil"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCriteriaPattern(t *testing.T) {
	tests := []struct {
		criteria Criteria
		want     string
	}{
		{Criteria{Extension: "txt"}, "*.txt"},
		{Criteria{Extension: ".txt"}, "*.txt"},
		{Criteria{Extension: "txt", Prefix: "report"}, "*report*.txt"},
		{Criteria{Extension: "txt", Prefix: "a*b"}, `*a\*b*.txt`},
		{Criteria{Extension: "t[x]t"}, `*.t\[x\]t`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.criteria.Pattern(); got != tt.want {
				t.Errorf("Pattern() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCriteriaMatches(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		file     string
		want     bool
	}{
		{"extension match", Criteria{Extension: "txt"}, "a.txt", true},
		{"other extension", Criteria{Extension: "txt"}, "a.log", false},
		{"extension is a suffix only", Criteria{Extension: "txt"}, "a.txt.bak", false},
		{"case sensitive", Criteria{Extension: "txt"}, "A.TXT", false},
		{"hidden file", Criteria{Extension: "txt"}, ".notes.txt", true},
		{"prefix at start", Criteria{Extension: "log", Prefix: "report"}, "report1.log", true},
		{"prefix in the middle", Criteria{Extension: "log", Prefix: "report"}, "daily-report-1.log", true},
		{"prefix missing", Criteria{Extension: "log", Prefix: "report"}, "summary.log", false},
		{"prefix after extension dot", Criteria{Extension: "log", Prefix: "log"}, "a.log", false},
		{"literal star in prefix", Criteria{Extension: "txt", Prefix: "a*b"}, "xa*b.txt", true},
		{"literal star does not glob", Criteria{Extension: "txt", Prefix: "a*b"}, "axxb.txt", false},
		{"compound extension", Criteria{Extension: "tar.gz"}, "backup.tar.gz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.Matches(tt.file); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestCriteriaValidate(t *testing.T) {
	if err := (Criteria{}).Validate(); err == nil {
		t.Error("empty extension should be rejected")
	}
	if err := (Criteria{Extension: "."}).Validate(); err == nil {
		t.Error("bare dot extension should be rejected")
	}
	if err := (Criteria{Extension: "txt", Prefix: "{["}).Validate(); err != nil {
		t.Errorf("escaped metacharacters should be valid: %v", err)
	}
}

func TestMatch(t *testing.T) {
	root := testutil.Path("/", "src")

	tests := []struct {
		name      string
		criteria  Criteria
		recursive bool
		want      []string
	}{
		{
			name:      "recursive finds nested files in path order",
			criteria:  Criteria{Extension: "txt"},
			recursive: true,
			want:      []string{"a.txt", "b.txt", "c.txt", "d.txt"},
		},
		{
			name:      "shallow finds direct children only",
			criteria:  Criteria{Extension: "txt"},
			recursive: false,
			want:      []string{"a.txt", "b.txt"},
		},
		{
			name:      "prefix narrows matches",
			criteria:  Criteria{Extension: "txt", Prefix: "b"},
			recursive: true,
			want:      []string{"b.txt"},
		},
		{
			name:      "no matches",
			criteria:  Criteria{Extension: "pdf"},
			recursive: true,
			want:      []string{},
		},
		{
			name:      "matching directory is returned",
			criteria:  Criteria{Extension: "d"},
			recursive: true,
			want:      []string{"conf.d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fs.NewMemTest()
			testutil.Create(t, m, root,
				testutil.File("a.txt"),
				testutil.File("b.txt"),
				testutil.File("notes.log"),
				testutil.File("sub/c.txt"),
				testutil.File("sub/deeper/d.txt"),
				testutil.Dir("conf.d"),
			)

			entries, err := Match(m, root, tt.criteria, tt.recursive)
			if err != nil {
				t.Fatalf("Match: %v", err)
			}
			if got := names(entries); !equal(got, tt.want) {
				t.Errorf("names = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchEntryFields(t *testing.T) {
	m := fs.NewMemTest()
	root := testutil.Path("/", "src")
	testutil.Create(t, m, root, testutil.File("sub/c.txt").WithContent("12345"))

	entries, err := Match(m, root, Criteria{Extension: "txt"}, true)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.Path != testutil.Path(root, "sub", "c.txt") {
		t.Errorf("Path = %q", e.Path)
	}
	if e.Dir != testutil.Path(root, "sub") {
		t.Errorf("Dir = %q", e.Dir)
	}
	if e.Name != "c.txt" || e.IsDir || e.Size != 5 {
		t.Errorf("unexpected entry %+v", e)
	}
}

func TestMatchMissingDirectory(t *testing.T) {
	m := fs.NewMemTest()
	m.MustWriteFile(testutil.Path("/", "file.txt"), "x")

	_, err := Match(m, testutil.Path("/", "nope"), Criteria{Extension: "txt"}, true)
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Errorf("err = %v, want ErrDirectoryNotFound", err)
	}

	_, err = Match(m, testutil.Path("/", "file.txt"), Criteria{Extension: "txt"}, true)
	if !errors.Is(err, ErrNotDirectory) {
		t.Errorf("err = %v, want ErrNotDirectory", err)
	}
}

func TestMatchIdempotent(t *testing.T) {
	m := fs.NewMemTest()
	root := testutil.Path("/", "src")
	testutil.Create(t, m, root, testutil.File("x.log"), testutil.File("y/z.log"))

	first, err := Match(m, root, Criteria{Extension: "log"}, true)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Match(m, root, Criteria{Extension: "log"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if !equal(names(first), names(second)) {
		t.Errorf("results differ: %v vs %v", names(first), names(second))
	}
}

func TestNames(t *testing.T) {
	m := fs.NewMemTest()
	root := testutil.Path("/", "dst")
	testutil.Create(t, m, root,
		testutil.File("b.txt"),
		testutil.File("nested/a.txt"),
		testutil.Dir("c.txt"),
	)

	got, err := Names(m, root, Criteria{Extension: "txt", MimeType: "image/*"})
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if _, ok := got["b.txt"]; !ok {
		t.Error("b.txt should be listed")
	}
	if _, ok := got["c.txt"]; !ok {
		t.Error("directory c.txt should be listed as an existing name")
	}
	if _, ok := got["a.txt"]; ok {
		t.Error("nested a.txt must not be listed")
	}
}

func TestMatchMimeType(t *testing.T) {
	root := testutil.Path("/", "src")
	png := "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

	tests := []struct {
		name string
		mime string
		want []string
	}{
		{"exact type", "image/png", []string{"real.png"}},
		{"wildcard", "image/*", []string{"real.png"}},
		{"text parent", "text/plain", []string{"fake.png"}},
		{"no match", "application/pdf", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fs.NewMemTest()
			testutil.Create(t, m, root,
				testutil.File("real.png").WithContent(png),
				testutil.File("fake.png").WithContent("just some text"),
			)

			entries, err := Match(m, root, Criteria{Extension: "png", MimeType: tt.mime}, true)
			if err != nil {
				t.Fatalf("Match: %v", err)
			}
			if got := names(entries); !equal(got, tt.want) {
				t.Errorf("names = %v, want %v", got, tt.want)
			}
		})
	}
}
