package report

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/xlab/treeprint"
)

// Tree renders files below root grouped by their directory, one branch per
// directory relative to root. Files outside root are grouped under their
// absolute directory.
func (s *Styler) Tree(root string, files []string) string {
	tree := treeprint.NewWithRoot(s.Render(Directory, Text(root)))

	byDir := map[string][]string{}
	for _, f := range files {
		dir := filepath.Dir(f)
		byDir[dir] = append(byDir[dir], filepath.Base(f))
	}

	dirs := make([]string, 0, len(byDir))
	for d := range byDir {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		names := byDir[dir]
		sort.Strings(names)

		branch := tree
		if rel, err := filepath.Rel(root, dir); err != nil {
			branch = tree.AddBranch(s.Render(Directory, Text(dir)))
		} else if rel != "." {
			branch = tree.AddBranch(s.Render(Directory, Text(filepath.ToSlash(rel))))
		}
		for _, name := range names {
			branch.AddNode(s.Render(FileName, Text(name)))
		}
	}

	return strings.TrimRight(tree.String(), "\n")
}
