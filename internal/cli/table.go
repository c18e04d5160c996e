package cli

import (
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
)

const minCellWidth = 8

// table writes aligned columns. On a terminal, cells after the first (the id)
// are cut to fit its width.
type table struct {
	tw      *tabwriter.Writer
	maxCell int
}

func newTable(out io.Writer, headers ...string) *table {
	t := &table{
		tw:      tabwriter.NewWriter(out, 0, 0, 2, ' ', 0),
		maxCell: cellLimit(out, len(headers)),
	}
	t.row(headers...)
	return t
}

func (t *table) row(cells ...string) {
	for i, c := range cells {
		c = strings.ReplaceAll(c, "\t", " ")
		if i > 0 {
			c = truncate(c, t.maxCell)
		}
		cells[i] = c
	}
	io.WriteString(t.tw, strings.Join(cells, "\t")+"\n")
}

func (t *table) flush() error {
	return t.tw.Flush()
}

// cellLimit returns the widest a cell may be, or 0 for no limit.
func cellLimit(out io.Writer, cols int) int {
	f, ok := out.(*os.File)
	if !ok || cols == 0 || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	limit := width/cols - 2
	if limit < minCellWidth {
		limit = minCellWidth
	}
	return limit
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}
