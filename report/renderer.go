package report

import (
	"iter"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/poiesic/mindgrep/core"
)

// DefaultConnector joins ancestor node texts in a match header line.
const DefaultConnector = " --> "

// Renderer formats match results as human-readable terminal output.
type Renderer struct {
	pathColor  *color.Color
	matchColor *color.Color
	connector  string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithConnector sets the string joining ancestor texts in header lines.
// Default is DefaultConnector.
func WithConnector(connector string) Option {
	return func(r *Renderer) {
		r.connector = connector
	}
}

// WithPathColor sets the color used for source file paths.
// Default is green.
func WithPathColor(c *color.Color) Option {
	return func(r *Renderer) {
		r.pathColor = c
	}
}

// WithMatchColor sets the color used for matched spans.
// Default is red.
func WithMatchColor(c *color.Color) Option {
	return func(r *Renderer) {
		r.matchColor = c
	}
}

// NewRenderer creates a renderer. Color output honors the fatih/color
// global NoColor switch, so redirected output degrades to plain text.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		pathColor:  color.New(color.FgGreen),
		matchColor: color.New(color.FgRed),
		connector:  DefaultConnector,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lines yields the formatted output for a batch of matches, lazily, one
// line at a time. Matches are expected in the searcher's deterministic
// order; consecutive matches from the same file share one file header and
// each file group ends with a blank line. The sequence is finite and can
// be iterated more than once.
func (r *Renderer) Lines(matches []core.MatchResult) iter.Seq[string] {
	return func(yield func(string) bool) {
		currentFile := ""
		for _, m := range matches {
			if m.File != currentFile {
				if currentFile != "" && !yield("") {
					return
				}
				currentFile = m.File
				if !yield(r.pathColor.Sprint(m.File)) {
					return
				}
			}
			if !yield("[" + m.Label + "] " + r.headerPath(m.Path)) {
				return
			}
			if !yield(r.Highlight(m.Flattened, m.Spans)) {
				return
			}
		}
		if currentFile != "" {
			yield("")
		}
	}
}

// headerPath joins ancestor texts with the connector, truncating each
// segment to its first line so multi-line notes stay on one header line.
func (r *Renderer) headerPath(path []string) string {
	segments := make([]string, len(path))
	for i, p := range path {
		if idx := strings.IndexByte(p, '\n'); idx >= 0 {
			p = p[:idx]
		}
		segments[i] = p
	}
	return strings.Join(segments, r.connector)
}

// Highlight wraps each matched span in the match color without altering
// the underlying text. Overlapping spans from different terms are merged
// before coloring.
func (r *Renderer) Highlight(text string, spans []core.Span) string {
	merged := mergeSpans(spans)
	if len(merged) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, sp := range merged {
		b.WriteString(text[last:sp.Start])
		b.WriteString(r.matchColor.Sprint(text[sp.Start:sp.End]))
		last = sp.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// mergeSpans sorts spans by start offset and merges any that overlap, so
// coloring never nests escape sequences.
func mergeSpans(spans []core.Span) []core.Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]core.Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	merged := sorted[:1]
	for _, sp := range sorted[1:] {
		top := &merged[len(merged)-1]
		if sp.Start <= top.End {
			if sp.End > top.End {
				top.End = sp.End
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}
