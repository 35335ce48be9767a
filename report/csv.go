package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/hiatus"
)

// CSVHeader is the header row of the CSV table.
var CSVHeader = []string{"index", "kind", "line", "start_pos", "end_pos", "vowel_i", "vowel_j"}

// CSV writes a table of all occurrences to w, one row per occurrence.
// Positions are code-point offsets into the normalized text. Rows are
// terminated by CR LF.
func CSV(w io.Writer, res *hiatus.Result) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("report: writing CSV: %w", err)
	}
	for k, occ := range res.Occurrences {
		row := []string{
			strconv.Itoa(k + 1),
			occ.Kind.Code(),
			occ.LineLabel(),
			strconv.Itoa(occ.Start),
			strconv.Itoa(occ.End),
			occ.LeftText,
			occ.RightText,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: writing CSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		T().Errorf("report: %v", err)
		return fmt.Errorf("report: writing CSV: %w", err)
	}
	return nil
}
