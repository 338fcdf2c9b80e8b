package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Batch merges CSV rows into a template and renders one PDF per row.
type Batch struct {
	Template string
	OutDir   string

	// Render defaults to RenderPDF; tests swap it out.
	Render func(html, outPath string) error
	Out    io.Writer
	Now    func() time.Time
}

// Result tallies one Batch run.
type Result struct {
	Succeeded int
	Failed    int
	FirstPDF  string
}

// Run processes every row to the end. A row that fails to render is
// reported and skipped, it never aborts the batch.
func (b *Batch) Run(header []string, rows []map[string]string) Result {
	render := b.Render
	if render == nil {
		render = RenderPDF
	}
	now := b.Now
	if now == nil {
		now = time.Now
	}
	out := b.Out
	if out == nil {
		out = os.Stdout
	}

	var res Result
	total := len(rows)
	for i, row := range rows {
		idx := i + 1
		fields := Derive(row, idx, total, now())
		html := Substitute(b.Template, fields)

		var base string
		if len(header) > 0 {
			base = row[header[0]]
		}
		name := OutputFileName(base, idx)
		path := filepath.Join(b.OutDir, name)

		if err := render(html, path); err != nil {
			fmt.Fprintf(out, "❌ [%d/%d] Ошибка при создании %s: %v\n", idx, total, name, err)
			res.Failed++
			continue
		}

		fmt.Fprintf(out, "✓ [%d/%d] Создан: %s\n", idx, total, name)
		res.Succeeded++
		if res.FirstPDF == "" {
			res.FirstPDF = path
		}
	}
	return res
}
