package cluster

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Cluster is a base code-point together with its trailing combining marks,
// as found in a normalized source text.
//
// Start and End are byte offsets into the source text, RuneStart and RuneEnd
// are the corresponding code-point offsets. Line is the 0-based number of
// newlines preceding Start.
type Cluster struct {
	Text      string
	Start     int
	End       int
	RuneStart int
	RuneEnd   int
	Line      int
}

func (c Cluster) String() string {
	return fmt.Sprintf("[%q %d:%d line=%d]", c.Text, c.Start, c.End, c.Line)
}

// IsCombining is true if r has a non-zero canonical combining class.
func IsCombining(r rune) bool {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return norm.NFD.Properties(buf[:n]).CCC() != 0
}

// Segment splits text into clusters, left to right. The clusters cover text
// completely, without gaps or overlaps.
//
// Segment will never fail. If text starts with a combining mark (which is
// malformed input), this mark will start a cluster of its own.
func Segment(text string) []Cluster {
	clusters := make([]Cluster, 0, len(text)/2)
	line, runepos := 0, 0
	i := 0
	for i < len(text) {
		start, runestart := i, runepos
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		runepos++
		for i < len(text) {
			next, sz := utf8.DecodeRuneInString(text[i:])
			if !IsCombining(next) {
				break
			}
			i += sz
			runepos++
		}
		clusters = append(clusters, Cluster{
			Text:      text[start:i],
			Start:     start,
			End:       i,
			RuneStart: runestart,
			RuneEnd:   runepos,
			Line:      line,
		})
		if r == '\n' {
			line++
		}
	}
	T().Debugf("segmented %d bytes into %d clusters", len(text), len(clusters))
	return clusters
}
