package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style is the semantic category of a run of report text.
// Renderers map each category to concrete terminal formatting.
type Style int

const (
	Plain Style = iota // inherits the style of the enclosing line
	Directory
	FileName
	Success
	Error
	Info
	Heading
	Extension
)

func (s Style) String() string {
	switch s {
	case Directory:
		return "directory"
	case FileName:
		return "file"
	case Success:
		return "success"
	case Error:
		return "error"
	case Info:
		return "info"
	case Heading:
		return "heading"
	case Extension:
		return "extension"
	default:
		return "plain"
	}
}

// Span is one run of text with its own style.
type Span struct {
	Text  string
	Style Style
}

// Text returns a span that takes the style of its line.
func Text(s string) Span { return Span{Text: s} }

// Dir returns a span styled as a directory name.
func Dir(s string) Span { return Span{Text: s, Style: Directory} }

// File returns a span styled as a file name.
func File(s string) Span { return Span{Text: s, Style: FileName} }

// Ext returns a span styled as an extension label.
func Ext(s string) Span { return Span{Text: s, Style: Extension} }

// As returns a span with an explicit style, e.g. a green count inside an info line.
func As(style Style, s string) Span { return Span{Text: s, Style: style} }

// Renderer turns text of a given style into displayable text.
type Renderer interface {
	Render(style Style, text string) string
}

// PlainRenderer renders text unchanged. Used for tests, pipes and --no-color.
type PlainRenderer struct{}

func (PlainRenderer) Render(_ Style, text string) string { return text }

// LipglossRenderer renders styles with ANSI attributes through lipgloss.
type LipglossRenderer struct {
	styles map[Style]lipgloss.Style
}

// NewLipglossRenderer returns a renderer with the default presets.
func NewLipglossRenderer() *LipglossRenderer {
	return &LipglossRenderer{
		styles: map[Style]lipgloss.Style{
			Directory: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")), // Bright magenta
			FileName:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),  // Yellow
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),            // Bright green
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),             // Bright red
			Info:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("15")),
			Heading:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")),
			Extension: lipgloss.NewStyle().Bold(true).Italic(true),
		},
	}
}

func (r *LipglossRenderer) Render(style Style, text string) string {
	s, ok := r.styles[style]
	if !ok || text == "" {
		return text
	}
	return s.Render(text)
}

// Styler renders spans and, through Emit and its helpers, records them in a Log.
type Styler struct {
	renderer Renderer
	log      *Log
}

// NewStyler creates a Styler. A nil renderer falls back to PlainRenderer.
func NewStyler(renderer Renderer, log *Log) *Styler {
	if renderer == nil {
		renderer = PlainRenderer{}
	}
	return &Styler{renderer: renderer, log: log}
}

// Render styles each span on its own and joins the results.
// Plain spans take the line style.
func (s *Styler) Render(style Style, spans ...Span) string {
	var b strings.Builder
	for _, sp := range spans {
		st := sp.Style
		if st == Plain {
			st = style
		}
		b.WriteString(s.renderer.Render(st, sp.Text))
	}
	return b.String()
}

// Emit renders the spans and appends the result to the log.
func (s *Styler) Emit(style Style, spans ...Span) string {
	out := s.Render(style, spans...)
	if s.log != nil {
		s.log.Append(out)
	}
	return out
}

func (s *Styler) Success(spans ...Span) string { return s.Emit(Success, spans...) }
func (s *Styler) Failure(spans ...Span) string { return s.Emit(Error, spans...) }
func (s *Styler) Info(spans ...Span) string    { return s.Emit(Info, spans...) }
func (s *Styler) Heading(spans ...Span) string { return s.Emit(Heading, spans...) }
