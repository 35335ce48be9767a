package cluster

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSegmentPrecomposed(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	clusters := Segment("\u03b8\u03b5\u03bf\u1fe6")
	if len(clusters) != 4 {
		t.Fatalf("expected 4 clusters, have %d: %v", len(clusters), clusters)
	}
	if clusters[3].Text != "\u1fe6" {
		t.Errorf("expected 4th cluster to be upsilon with perispomeni, is %q", clusters[3].Text)
	}
	if clusters[3].Start != 6 || clusters[3].End != 9 {
		t.Errorf("expected byte range 6:9 for 'ῦ', have %d:%d", clusters[3].Start, clusters[3].End)
	}
	if clusters[3].RuneStart != 3 || clusters[3].RuneEnd != 4 {
		t.Errorf("expected rune range 3:4 for 'ῦ', have %d:%d", clusters[3].RuneStart, clusters[3].RuneEnd)
	}
}

func TestSegmentCombiningMarks(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := "\u03b5\u0313\u0301\u03b9\u0308" // decomposed epsilon with psili+oxia, iota with diaeresis
	clusters := Segment(input)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, have %d: %v", len(clusters), clusters)
	}
	if clusters[0].Text != "\u03b5\u0313\u0301" {
		t.Errorf("expected first cluster to absorb both marks, is %q", clusters[0].Text)
	}
	if clusters[1].RuneStart != 3 || clusters[1].RuneEnd != 5 {
		t.Errorf("expected rune range 3:5, have %d:%d", clusters[1].RuneStart, clusters[1].RuneEnd)
	}
}

func TestSegmentLeadingMark(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	clusters := Segment("\u0301\u0308\u03b1")
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, have %d: %v", len(clusters), clusters)
	}
	if clusters[0].Text != "\u0301\u0308" {
		t.Errorf("expected leading marks to form a cluster, have %q", clusters[0].Text)
	}
	if clusters[1].Text != "\u03b1" {
		t.Errorf("expected second cluster to be alpha, have %q", clusters[1].Text)
	}
}

func TestSegmentCoversInput(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	inputs := []string{
		"",
		"μῆνιν ἄειδε θεὰ\nΠηληϊάδεω Ἀχιλῆος",
		"\u0345\u1fb3, \u1ff3; \u1fc3\u0387\n\n",
		"a\xffb",
	}
	for _, input := range inputs {
		var sb strings.Builder
		pos := 0
		for _, c := range Segment(input) {
			if c.Start != pos {
				t.Errorf("gap or overlap in %q at %d", input, pos)
			}
			pos = c.End
			sb.WriteString(c.Text)
		}
		if sb.String() != input {
			t.Errorf("concatenated clusters differ from input %q", input)
		}
	}
}

func TestSegmentLines(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	clusters := Segment("α\nβ\n\nγ")
	lines := []int{0, 0, 1, 1, 2, 3}
	if len(clusters) != len(lines) {
		t.Fatalf("expected %d clusters, have %d", len(lines), len(clusters))
	}
	for i, c := range clusters {
		if c.Line != lines[i] {
			t.Errorf("cluster #%d %q: expected line %d, have %d", i, c.Text, lines[i], c.Line)
		}
	}
}

func TestIsCombining(t *testing.T) {
	for _, r := range []rune{0x0301, 0x0313, 0x0314, 0x0308, 0x0345, 0x0342} {
		if !IsCombining(r) {
			t.Errorf("expected %#U to be a combining mark", r)
		}
	}
	for _, r := range []rune{0x03b1, 0x1f71, 0x1fb3, ' ', '\n', 0x0387} {
		if IsCombining(r) {
			t.Errorf("expected %#U not to be a combining mark", r)
		}
	}
}

func ExampleSegment() {
	clusters := Segment("\u03b1\u0314\u0301\u03b3\u03b9\u03bf\u03bd") // decomposed ἅγιον
	fmt.Println(len(clusters))
	fmt.Println(clusters[0].RuneEnd, clusters[1].RuneStart)
	// Output:
	// 5
	// 3 3
}
