package hiatus

import (
	"strings"

	"github.com/npillmayer/hiatus/cluster"
	"github.com/npillmayer/hiatus/greek"
	"github.com/npillmayer/hiatus/lines"
)

// scanState is the state of the scanner looking ahead from a start vowel.
//
//	searching ──(intra-word diphthong or suppressed)──▶ diphthongStopped
//	searching ──(hiatus found)────────────────────────▶ hiatusRecorded
//	searching ──(window done)─────────────────────────▶ exhausted
type scanState int8

const (
	searching scanState = iota
	diphthongStopped
	hiatusRecorded
	exhausted
)

func (s scanState) String() string {
	switch s {
	case searching:
		return "searching"
	case diphthongStopped:
		return "diphthong-stopped"
	case hiatusRecorded:
		return "hiatus-recorded"
	}
	return "exhausted"
}

// scanner finds vowel pairs forming a hiatus. It operates on the clusters
// of a normalized text, their traits and the text's line index.
type scanner struct {
	text     string
	clusters []cluster.Cluster
	traits   []greek.Traits
	lines    *lines.Index
	opts     Options
}

// scan looks ahead from every vowel cluster and returns the hiatus pairs
// found, in ascending order of their start cluster. Spans are left empty.
func (sc *scanner) scan() []Occurrence {
	var occs []Occurrence
	for i := range sc.clusters {
		if !sc.traits[i].Vowel {
			continue
		}
		occ, state := sc.scanFrom(i)
		CT().Debugf("hiatus: scan from %d %q: %s", i, sc.clusters[i].Text, state)
		if state == hiatusRecorded {
			occs = append(occs, occ)
		}
	}
	return occs
}

// scanFrom looks ahead from vowel cluster i, within the lookahead window,
// for the first vowel cluster j which may pair with i. It returns the end
// state of the search and, for state hiatusRecorded, the occurrence found.
func (sc *scanner) scanFrom(i int) (Occurrence, scanState) {
	last := i + sc.opts.Lookahead
	if last > len(sc.clusters)-1 {
		last = len(sc.clusters) - 1
	}
	state := searching
	var occ Occurrence
	for j := i + 1; j <= last && state == searching; j++ {
		if !sc.traits[j].Vowel {
			continue
		}
		kind, ok := sc.pairKind(i, j)
		if !ok {
			continue
		}
		if kind == IntraWord && sc.stopsIntraWord(i, j) {
			state = diphthongStopped
			break
		}
		occ = sc.occurrence(kind, i, j)
		state = hiatusRecorded
	}
	if state == searching {
		state = exhausted
	}
	return occ, state
}

// pairKind classifies the relation of vowel clusters i and j by the text
// between them. If the clusters cannot pair, pairKind returns false.
//
// A line break in between allows only for an across-line pair, and only if
// i is the last content cluster of its line and j is the first content
// cluster of the next line. Text containing letters or digits in between
// separates i and j.
func (sc *scanner) pairKind(i, j int) (Kind, bool) {
	ci, cj := sc.clusters[i], sc.clusters[j]
	between := sc.text[ci.End:cj.Start]
	if strings.Contains(between, "\n") {
		if cj.Line == ci.Line+1 && sc.lines.IsLineEnd(i, ci.Line) &&
			sc.lines.IsLineStart(j, cj.Line) {
			return AcrossLine, true
		}
		return 0, false
	}
	if between == "" {
		return IntraWord, true
	}
	if greek.OnlyPunctOrSpace(between) {
		return Interword, true
	}
	return 0, false
}

// stopsIntraWord decides whether an intra-word pair i, j ends the search
// from i without recording a hiatus. This is the case if the pair forms a
// diphthong or if i carries a breathing.
//
// The decision is made in this order: the base letters form a diphthong,
// or optionally either cluster carries an iota subscript. A diaeresis on j
// overrides both. Finally a breathing on i suppresses recording in any case.
func (sc *scanner) stopsIntraWord(i, j int) bool {
	ti, tj := sc.traits[i], sc.traits[j]
	diphthong := greek.IsDiphthong(ti.Base + tj.Base)
	if sc.opts.IotaAsDiphthong && (ti.IotaSubscript || tj.IotaSubscript) {
		diphthong = true
	}
	if tj.Diaeresis {
		diphthong = false
	}
	if ti.Breathing {
		return true
	}
	return diphthong
}

// occurrence creates an occurrence for pair i, j, without spans.
func (sc *scanner) occurrence(kind Kind, i, j int) Occurrence {
	ci, cj := sc.clusters[i], sc.clusters[j]
	return Occurrence{
		Kind:        kind,
		I:           i,
		J:           j,
		Snippet:     sc.text[ci.Start:cj.End],
		Intervening: sc.text[ci.End:cj.Start],
		LineI:       ci.Line + 1,
		LineJ:       cj.Line + 1,
		Start:       ci.RuneStart,
		End:         cj.RuneEnd,
		ByteStart:   ci.Start,
		ByteEnd:     cj.End,
	}
}
