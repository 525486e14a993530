package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

var defaultSeparators = []string{"\n\n", "\n", ".", " ", ""}

// Chunker splits text recursively on coarser separators first so each chunk fits a token budget.
// Adjacent chunks share up to overlap tokens.
type Chunker struct {
	tok        Tokenizer
	size       int
	overlap    int
	separators []string
}

func NewChunker(tok Tokenizer, size, overlap int) *Chunker {
	return &Chunker{
		tok:        tok,
		size:       size,
		overlap:    overlap,
		separators: defaultSeparators,
	}
}

// Split returns the chunks of text in reading order. Chunks are whitespace-trimmed and never empty.
func (c *Chunker) Split(text string) []string {
	return c.split(text, c.separators)
}

func (c *Chunker) split(text string, separators []string) []string {
	sep := ""
	var rest []string
	for i, s := range separators {
		if s == "" {
			break
		}
		if strings.Contains(text, s) {
			sep = s
			rest = separators[i+1:]
			break
		}
	}

	var out, small []string
	for _, piece := range splitKeepSeparator(text, sep) {
		if c.tok.Count(piece) < c.size {
			small = append(small, piece)
			continue
		}
		if len(small) > 0 {
			out = append(out, c.merge(small)...)
			small = nil
		}
		if len(rest) == 0 {
			out = append(out, piece)
		} else {
			out = append(out, c.split(piece, rest)...)
		}
	}
	if len(small) > 0 {
		out = append(out, c.merge(small)...)
	}
	return out
}

// merge packs consecutive pieces into chunks of at most size tokens, carrying up to overlap
// tokens from the end of one chunk to the start of the next.
func (c *Chunker) merge(pieces []string) []string {
	var docs, current []string
	var lens []int
	total := 0

	emit := func() {
		if doc := strings.TrimSpace(strings.Join(current, "")); doc != "" {
			docs = append(docs, doc)
		}
	}

	for _, p := range pieces {
		n := c.tok.Count(p)
		if total+n > c.size && len(current) > 0 {
			emit()
			for len(current) > 0 && (total > c.overlap || total+n > c.size) {
				total -= lens[0]
				current, lens = current[1:], lens[1:]
			}
		}
		current = append(current, p)
		lens = append(lens, n)
		total += n
	}
	emit()
	return docs
}

// splitKeepSeparator splits on sep and keeps sep at the start of every piece after the first.
// An empty sep splits into characters.
func splitKeepSeparator(text, sep string) []string {
	var parts []string
	if sep == "" {
		for _, r := range text {
			parts = append(parts, string(r))
		}
		return parts
	}
	for i, p := range strings.Split(text, sep) {
		if i > 0 {
			p = sep + p
		}
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// ChunkID derives a stable chunk ID from the parent tweet ID and the chunk text.
func ChunkID(parentID, text string) string {
	sum := sha256.Sum256([]byte(text))
	return parentID + "-" + hex.EncodeToString(sum[:])[:10]
}
