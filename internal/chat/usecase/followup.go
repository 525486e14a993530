package usecase

import (
	"regexp"
	"strings"
)

const followUpDelimiter = "<<"

var followUpPattern = regexp.MustCompile(`<<(.*?)>>`)

// extractFollowUps returns every <<...>> question in order. Duplicates are kept.
func extractFollowUps(buffer string) []string {
	matches := followUpPattern.FindAllStringSubmatch(buffer, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// splitter separates the forwarded answer from the follow-up block of a token stream.
type splitter struct {
	cumulative strings.Builder
	forwarded  int
	buffer     strings.Builder
	split      bool
}

// push consumes one token and returns the text to forward, if any. Once the delimiter has
// appeared in the cumulative stream nothing else is forwarded. A trailing '<' is held back
// until the next token shows whether it opens the delimiter.
func (s *splitter) push(token string) (forward string, delimiterFound bool) {
	if s.split {
		s.buffer.WriteString(token)
		return "", false
	}

	s.cumulative.WriteString(token)
	all := s.cumulative.String()
	idx := strings.Index(all, followUpDelimiter)
	if idx < 0 {
		safe := len(all)
		if strings.HasSuffix(all, followUpDelimiter[:1]) {
			safe--
		}
		forward = all[s.forwarded:safe]
		s.forwarded = safe
		return forward, false
	}

	s.split = true
	if idx > s.forwarded {
		forward = all[s.forwarded:idx]
	}
	s.forwarded = idx
	s.buffer.WriteString(all[idx:])
	return forward, true
}

// flush returns the held-back tail once the stream ended without a delimiter.
func (s *splitter) flush() string {
	if s.split {
		return ""
	}
	all := s.cumulative.String()
	rest := all[s.forwarded:]
	s.forwarded = len(all)
	return rest
}

func (s *splitter) followUps() []string {
	return extractFollowUps(s.buffer.String())
}
