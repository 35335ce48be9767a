package hiatus

import (
	"context"
	"io"
	"strings"

	"github.com/npillmayer/hiatus/cluster"
	"github.com/npillmayer/hiatus/internal/textio"
	"github.com/npillmayer/hiatus/lines"
	"golang.org/x/text/unicode/norm"
)

// Result is the outcome of a detection run.
type Result struct {
	Text        string            // NFC-normalized input text
	Clusters    []cluster.Cluster // clusters of Text
	Occurrences []Occurrence      // hiatus found, ordered by I
	// Marks holds, for every cluster, the 1-based number of the first
	// occurrence whose spans include the cluster, or 0.
	Marks []int
}

// Detect finds all hiatus in text.
//
// text is normalized to NFC first; all positions in the result refer to the
// normalized text. Detect never fails: malformed input (invalid UTF-8, stray
// combining marks) is segmented as well and simply does not contain vowels.
func Detect(text string, opts ...Option) *Result {
	o := makeOptions(opts)
	text = norm.NFC.String(text)
	clusters := cluster.Segment(text)
	scr := borrowScratch(len(clusters))
	defer scr.releaseIntoPool()
	for i, c := range clusters {
		scr.traits[i] = scr.classifier.Classify(c.Text)
	}
	traits := scr.traits
	ix := lines.Build(clusters, func(i int) bool {
		return traits[i].PunctOrSpace
	})
	sc := &scanner{
		text:     text,
		clusters: clusters,
		traits:   traits,
		lines:    ix,
		opts:     o,
	}
	occs := sc.scan()
	for k := range occs {
		occ := &occs[k]
		occ.LeftSpan, occ.RightSpan = expandSpans(occ.I, occ.J, traits)
		occ.LeftText = spanText(occ.LeftSpan, clusters)
		occ.RightText = spanText(occ.RightSpan, clusters)
	}
	res := &Result{
		Text:        text,
		Clusters:    clusters,
		Occurrences: occs,
		Marks:       markClusters(len(clusters), occs),
	}
	CT().P("clusters", len(clusters)).P("lines", ix.Lines()).Infof(
		"hiatus: %d occurrences found", len(occs))
	return res
}

// DetectReader reads a complete text from r and finds all hiatus in it.
// The input may be UTF-8 or, if starting with a byte order mark, UTF-16.
// Input which is not valid UTF-8 is rejected with an error.
func DetectReader(ctx context.Context, r io.Reader, opts ...Option) (*Result, error) {
	text, err := textio.Decode(ctx, r)
	if err != nil {
		return nil, err
	}
	return Detect(text, opts...), nil
}

// markClusters assigns every cluster touched by an occurrence the 1-based
// number of this occurrence. Where spans of several occurrences touch the
// same cluster, the lowest number wins.
func markClusters(n int, occs []Occurrence) []int {
	marks := make([]int, n)
	for k, occ := range occs {
		for _, span := range [2][]int{occ.LeftSpan, occ.RightSpan} {
			for _, c := range span {
				if marks[c] == 0 {
					marks[c] = k + 1
				}
			}
		}
	}
	return marks
}

// Count returns the number of occurrences of a given kind.
func (res *Result) Count(kind Kind) int {
	n := 0
	for _, occ := range res.Occurrences {
		if occ.Kind == kind {
			n++
		}
	}
	return n
}

// Segment is a run of consecutive clusters carrying the same mark.
// Mark is the 1-based number of an occurrence, or 0 for unmarked text.
// Kind is the kind of the marking occurrence, or 0.
type Segment struct {
	Text string
	Mark int
	Kind Kind
}

// Segments splits the text of a result into runs of equally marked
// clusters. Concatenating the segments' texts yields Result.Text.
func (res *Result) Segments() []Segment {
	var segs []Segment
	var b strings.Builder
	mark := -1
	flush := func() {
		if mark < 0 {
			return
		}
		seg := Segment{Text: b.String(), Mark: mark}
		if mark > 0 {
			seg.Kind = res.Occurrences[mark-1].Kind
		}
		segs = append(segs, seg)
		b.Reset()
	}
	for k, c := range res.Clusters {
		if res.Marks[k] != mark {
			flush()
			mark = res.Marks[k]
		}
		b.WriteString(c.Text)
	}
	flush()
	return segs
}
