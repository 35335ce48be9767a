package hiatus

import (
	"fmt"
	"strconv"
)

// Kind is the kind of a hiatus.
type Kind int8

// Kinds of hiatus. The zero value is not a valid kind.
const (
	IntraWord  Kind = iota + 1 // vowels adjacent inside a word
	Interword                  // vowels separated by punctuation or space only
	AcrossLine                 // vowels meeting across a line break
)

func (k Kind) String() string {
	switch k {
	case IntraWord:
		return "intra-word"
	case Interword:
		return "interword"
	case AcrossLine:
		return "across-line"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Code returns the short code of a kind: "I" for intra-word, "B" for
// between words, "V" for between verses.
func (k Kind) Code() string {
	switch k {
	case IntraWord:
		return "I"
	case Interword:
		return "B"
	case AcrossLine:
		return "V"
	}
	return k.String()
}

// Title returns a human readable description of a kind.
func (k Kind) Title() string {
	return k.String() + " hiatus"
}

// Occurrence is a single hiatus found in a text.
//
// I and J are the indices of the two vowel clusters, with I < J. LeftSpan and
// RightSpan are the (ascending) cluster indices of the vowel groups on each
// side, i.e. I and J, possibly widened by a neighbouring cluster forming a
// diphthong. The spans never overlap.
type Occurrence struct {
	Kind        Kind
	I, J        int    // cluster indices of the vowel pair
	LeftSpan    []int  // vowel group containing I
	RightSpan   []int  // vowel group containing J
	LeftText    string // text of the left vowel group
	RightText   string // text of the right vowel group
	Snippet     string // text from the start of cluster I to the end of cluster J
	Intervening string // text between cluster I and cluster J
	LineI       int    // 1-based line of cluster I
	LineJ       int    // 1-based line of cluster J
	Start       int    // code-point offset of the start of cluster I
	End         int    // code-point offset of the end of cluster J
	ByteStart   int    // byte offset of the start of cluster I
	ByteEnd     int    // byte offset of the end of cluster J
}

// LineLabel returns the line(s) of an occurrence for display: a range
// "i-j" for across-line hiatus, a single line number otherwise.
func (occ Occurrence) LineLabel() string {
	if occ.Kind == AcrossLine {
		return fmt.Sprintf("%d-%d", occ.LineI, occ.LineJ)
	}
	return strconv.Itoa(occ.LineI)
}

func (occ Occurrence) String() string {
	return fmt.Sprintf("[%s %d:%d %q|%q line %s]", occ.Kind.Code(), occ.I, occ.J,
		occ.LeftText, occ.RightText, occ.LineLabel())
}
