package engine

import "strings"

// Action names a mutating file operation.
type Action string

const (
	ActionCopy   Action = "copy"
	ActionMove   Action = "move"
	ActionDelete Action = "delete"
	ActionRename Action = "rename"
)

var pastTense = map[Action]string{
	ActionCopy:   "copied",
	ActionMove:   "moved",
	ActionDelete: "deleted",
	ActionRename: "renamed",
}

// Past returns the past tense of the action ("copied"). Actions missing
// from the table are returned as is.
func (a Action) Past() string {
	if p, ok := pastTense[a]; ok {
		return p
	}
	return string(a)
}

// PastTitle returns the capitalized past tense ("Copied").
func (a Action) PastTitle() string {
	p := a.Past()
	if p == "" {
		return p
	}
	return strings.ToUpper(p[:1]) + p[1:]
}

// Heading returns the section heading for the action ("COPY FILES:").
func (a Action) Heading() string {
	return strings.ToUpper(string(a)) + " FILES:"
}
