package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a stable identifier for a mind-map node, derived from content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b
// hashing. Identical flattened content always produces the same ID, so nodes
// without an explicit Freeplane ID attribute can still be labeled stably
// across runs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Node is one element of a mind-map tree. A node carries its own text plus
// an ordered list of children; the tree mirrors the XML nesting of the
// source document, so there is no sharing and no cycles. Nodes are built
// once by the parser and never mutated afterwards.
type Node struct {
	ID       string  // Freeplane ID attribute, may be empty
	Text     string  // node text, may be empty
	Children []*Node // ordered, parent-owned
}

// Span marks one occurrence of a search term inside flattened text.
// Offsets are byte offsets into MatchResult.Flattened.
type Span struct {
	Start int
	End   int
	Term  string // the original (pre-escaping) term that produced this span
}

// MatchResult is one node found to satisfy a SearchSpec.
type MatchResult struct {
	File      string   // source file the node came from
	Node      *Node    // the matching node
	Label     string   // Freeplane ID when present, content-derived otherwise
	Path      []string // node texts from the document root down to this node
	Flattened string   // the text that was tested (after any newline escaping)
	Spans     []Span   // every occurrence of every term, in term order
}
