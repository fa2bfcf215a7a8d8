package report

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/poiesic/mindgrep/core"
)

// Record is the machine-readable form of one match.
type Record struct {
	File  string       `json:"file"`
	Label string       `json:"label"`
	Path  []string     `json:"path"`
	Text  string       `json:"text"`
	Spans []SpanRecord `json:"spans"`
}

// SpanRecord is one matched span in a Record.
type SpanRecord struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Term  string `json:"term"`
}

// WriteJSON writes one JSON record per match, newline-delimited, in the
// order the matches were collected.
func WriteJSON(w io.Writer, matches []core.MatchResult) error {
	enc := json.NewEncoder(w)
	for _, m := range matches {
		rec := Record{
			File:  m.File,
			Label: m.Label,
			Path:  m.Path,
			Text:  m.Flattened,
			Spans: make([]SpanRecord, len(m.Spans)),
		}
		for i, sp := range m.Spans {
			rec.Spans[i] = SpanRecord{Start: sp.Start, End: sp.End, Term: sp.Term}
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
