package report

import (
	"gopkg.in/yaml.v3"
)

// Status is the per-file result of an operation.
type Status string

const (
	StatusFound     Status = "found"
	StatusSucceeded Status = "succeeded"
	StatusSkipped   Status = "skipped" // destination exists or nothing to do
	StatusFailed    Status = "failed"  // the filesystem primitive returned an error
)

// Outcome records what happened to one matched file.
type Outcome struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Target string `yaml:"target,omitempty"`
	Status Status `yaml:"status"`
	Reason string `yaml:"reason,omitempty"`
}

// Summary is the machine-readable account of one operation.
type Summary struct {
	Operation   string    `yaml:"operation"`
	Source      string    `yaml:"source,omitempty"`
	Destination string    `yaml:"destination,omitempty"`
	Extension   string    `yaml:"extension,omitempty"`
	Prefix      string    `yaml:"prefix,omitempty"`
	DryRun      bool      `yaml:"dry_run,omitempty"`
	Succeeded   int       `yaml:"succeeded"`
	Failed      int       `yaml:"failed"`
	Outcomes    []Outcome `yaml:"outcomes,omitempty"`
	Errors      []string  `yaml:"errors,omitempty"`
}

// Record appends an outcome and updates the tallies.
// Skipped and failed outcomes both count as failed.
func (s *Summary) Record(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	switch o.Status {
	case StatusSucceeded, StatusFound:
		s.Succeeded++
	case StatusSkipped, StatusFailed:
		s.Failed++
	}
}

// YAML encodes the summary as a YAML document.
func (s *Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
