package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/npillmayer/hiatus"
	"github.com/rivo/uniseg"
)

var kindColors = map[hiatus.Kind]color.Color{
	hiatus.IntraWord:  color.Red,
	hiatus.Interword:  color.Green,
	hiatus.AcrossLine: color.Blue,
}

var summaryHeader = []string{"#", "Type", "Line", "Vowel 1", "Vowel 2", "Context"}

// Summary writes the number of occurrences per kind and a table of all
// occurrences to w. Columns are aligned by display width. If colored is
// set, kind codes are colored the same way as in the HTML document.
func Summary(w io.Writer, res *hiatus.Result, colored bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d hiatus occurrences (I %d, B %d, V %d)\n", len(res.Occurrences),
		res.Count(hiatus.IntraWord), res.Count(hiatus.Interword), res.Count(hiatus.AcrossLine))
	if len(res.Occurrences) > 0 {
		rows := make([][]string, 0, len(res.Occurrences)+1)
		rows = append(rows, summaryHeader)
		for k, occ := range res.Occurrences {
			rows = append(rows, []string{
				strconv.Itoa(k + 1),
				occ.Kind.Code(),
				occ.LineLabel(),
				occ.LeftText,
				occ.RightText,
				strings.ReplaceAll(occ.Snippet, "\n", " / "),
			})
		}
		widths := columnWidths(rows)
		for r, row := range rows {
			for c, cell := range row {
				if c > 0 {
					bw.WriteString("  ")
				}
				padded := cell
				if c < len(row)-1 {
					padded = pad(cell, widths[c])
				}
				if colored && r > 0 && c == 1 {
					padded = kindColors[res.Occurrences[r-1].Kind].Sprint(padded)
				}
				bw.WriteString(padded)
			}
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		T().Errorf("report: %v", err)
		return fmt.Errorf("report: writing summary: %w", err)
	}
	return nil
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if w := uniseg.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// pad fills s with blanks up to display width w.
func pad(s string, w int) string {
	if n := w - uniseg.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
