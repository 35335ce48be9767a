package report

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/npillmayer/hiatus"
)

// JSONOccurrence is the JSON form of an occurrence.
type JSONOccurrence struct {
	Index       int    `json:"index"`
	Kind        string `json:"kind"`
	KindName    string `json:"kind_name"`
	Line        string `json:"line"`
	LineI       int    `json:"line_i"`
	LineJ       int    `json:"line_j"`
	StartPos    int    `json:"start_pos"`
	EndPos      int    `json:"end_pos"`
	VowelI      string `json:"vowel_i"`
	VowelJ      string `json:"vowel_j"`
	LeftSpan    []int  `json:"vowel_i_indices"`
	RightSpan   []int  `json:"vowel_j_indices"`
	Snippet     string `json:"snippet"`
	Intervening string `json:"intervening"`
}

// JSONReport is the JSON form of a detection result.
type JSONReport struct {
	Clusters    int              `json:"clusters"`
	Counts      map[string]int   `json:"counts"`
	Occurrences []JSONOccurrence `json:"occurrences"`
}

// NewJSONReport converts a detection result to its JSON form.
func NewJSONReport(res *hiatus.Result) JSONReport {
	r := JSONReport{
		Clusters: len(res.Clusters),
		Counts: map[string]int{
			hiatus.IntraWord.Code():  res.Count(hiatus.IntraWord),
			hiatus.Interword.Code():  res.Count(hiatus.Interword),
			hiatus.AcrossLine.Code(): res.Count(hiatus.AcrossLine),
		},
		Occurrences: make([]JSONOccurrence, len(res.Occurrences)),
	}
	for k, occ := range res.Occurrences {
		r.Occurrences[k] = JSONOccurrence{
			Index:       k + 1,
			Kind:        occ.Kind.Code(),
			KindName:    occ.Kind.String(),
			Line:        occ.LineLabel(),
			LineI:       occ.LineI,
			LineJ:       occ.LineJ,
			StartPos:    occ.Start,
			EndPos:      occ.End,
			VowelI:      occ.LeftText,
			VowelJ:      occ.RightText,
			LeftSpan:    occ.LeftSpan,
			RightSpan:   occ.RightSpan,
			Snippet:     occ.Snippet,
			Intervening: occ.Intervening,
		}
	}
	return r
}

// JSON writes the JSON form of a detection result to w.
func JSON(w io.Writer, res *hiatus.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewJSONReport(res)); err != nil {
		T().Errorf("report: %v", err)
		return fmt.Errorf("report: writing JSON: %w", err)
	}
	return nil
}
