package pdfdoc

import (
	"fmt"
	"math"

	"github.com/ledongthuc/pdf"
)

const (
	// rowTolerance is the baseline Y movement (in points) treated as a
	// line break between consecutive content-stream texts.
	rowTolerance = 2.0

	// wordSpaceMultiplier of the font size is the horizontal gap that
	// splits texts on one line into separate runs.
	wordSpaceMultiplier = 0.3
)

// PageRuns returns the page's text runs in content-stream order (1-based
// page). Consecutive positioned texts are merged into one run while they
// stay on the same baseline with no word-sized gap; a baseline change
// closes the run with its EOL marker set. This reconstructs reading
// order from positioned glyph runs and makes no attempt at column or
// layout analysis.
func (d *ParsedPDF) PageRuns(page int) (runs []TextRun, err error) {
	if err := d.checkPage(page); err != nil {
		return nil, err
	}
	if d.reader == nil {
		return nil, fmt.Errorf("pdfdoc: page %d: no structural reader available", page)
	}

	// The underlying content-stream parser panics on malformed streams.
	defer func() {
		if r := recover(); r != nil {
			runs = nil
			err = fmt.Errorf("pdfdoc: parse content of page %d: %v", page, r)
		}
	}()

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return nil, nil
	}

	return groupRuns(p.Content().Text), nil
}

// groupRuns merges positioned texts into line-aware runs.
func groupRuns(texts []pdf.Text) []TextRun {
	var runs []TextRun
	var current []byte
	var lastY, lastEnd float64

	flush := func(eol bool) {
		if len(current) == 0 {
			return
		}
		runs = append(runs, TextRun{Text: string(current), EOL: eol})
		current = current[:0]
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		if t.S == "\n" {
			flush(true)
			lastEnd = 0
			continue
		}

		if len(current) > 0 {
			if math.Abs(t.Y-lastY) > rowTolerance {
				// New baseline: previous run ends its line.
				flush(true)
			} else if gap := t.X - lastEnd; gap > wordGapThreshold(t.FontSize) {
				// Same line, word-sized gap: separate run, no EOL.
				flush(false)
			}
		}

		current = append(current, t.S...)
		lastY = t.Y
		lastEnd = t.X + t.W
	}
	flush(false)

	return runs
}

func wordGapThreshold(fontSize float64) float64 {
	if fontSize <= 0 {
		return 3.0
	}
	return wordSpaceMultiplier * fontSize
}
