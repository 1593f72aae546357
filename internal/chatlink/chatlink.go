// Package chatlink splits assistant replies into plain text and booking links.
//
// A link is written [label](url). Labels cannot contain ']' and urls cannot
// contain ')'; there is no escaping, so such text is split wherever the first
// closing bracket falls.
package chatlink

import (
	"regexp"
	"strings"
)

var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

type Kind int

const (
	KindText Kind = iota
	KindLink
)

// Segment is a run of plain text or one link. Text holds the raw characters of
// the segment; Label and URL are set for links only.
type Segment struct {
	Kind  Kind
	Text  string
	Label string
	URL   string
}

func (s Segment) IsLink() bool {
	return s.Kind == KindLink
}

// Parse scans reply left to right. Matches never overlap; text between them
// becomes text segments in order. A reply without links yields a single text
// segment equal to the input, even when the input is empty.
func Parse(reply string) []Segment {
	matches := linkPattern.FindAllStringSubmatchIndex(reply, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: KindText, Text: reply}}
	}

	segments := make([]Segment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Kind: KindText, Text: reply[last:m[0]]})
		}
		segments = append(segments, Segment{
			Kind:  KindLink,
			Text:  reply[m[0]:m[1]],
			Label: reply[m[2]:m[3]],
			URL:   reply[m[4]:m[5]],
		})
		last = m[1]
	}
	if last < len(reply) {
		segments = append(segments, Segment{Kind: KindText, Text: reply[last:]})
	}
	return segments
}

// Links returns only the link segments of reply, in order.
func Links(reply string) []Segment {
	var links []Segment
	for _, seg := range Parse(reply) {
		if seg.IsLink() {
			links = append(links, seg)
		}
	}
	return links
}

// IsCheckout reports whether url points at the checkout screen.
func IsCheckout(url string) bool {
	return url == "/checkout" || strings.HasPrefix(url, "/checkout?")
}
