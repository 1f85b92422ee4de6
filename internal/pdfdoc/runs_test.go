package pdfdoc

import (
	"reflect"
	"testing"

	"github.com/ledongthuc/pdf"
)

// txt builds a positioned text the way the content-stream parser emits
// them: one small chunk per show-text operation.
func txt(s string, x, y, w, size float64) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w, FontSize: size}
}

func TestGroupRunsMergesSameLine(t *testing.T) {
	texts := []pdf.Text{
		txt("He", 10, 700, 12, 10),
		txt("llo", 22, 700, 14, 10),
	}
	got := groupRuns(texts)
	want := []TextRun{{Text: "Hello", EOL: false}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("groupRuns() = %+v, want %+v", got, want)
	}
}

func TestGroupRunsSplitsOnWordGap(t *testing.T) {
	texts := []pdf.Text{
		txt("Hello", 10, 700, 25, 10),
		// Gap of 10pt at font size 10 is well past the word threshold.
		txt("world", 45, 700, 25, 10),
	}
	got := groupRuns(texts)
	want := []TextRun{
		{Text: "Hello", EOL: false},
		{Text: "world", EOL: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("groupRuns() = %+v, want %+v", got, want)
	}
}

func TestGroupRunsMarksEOLOnBaselineChange(t *testing.T) {
	texts := []pdf.Text{
		txt("First line", 10, 700, 50, 10),
		txt("Second line", 10, 686, 55, 10),
	}
	got := groupRuns(texts)
	want := []TextRun{
		{Text: "First line", EOL: true},
		{Text: "Second line", EOL: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("groupRuns() = %+v, want %+v", got, want)
	}
}

func TestGroupRunsExplicitNewline(t *testing.T) {
	texts := []pdf.Text{
		txt("Heading", 10, 700, 40, 12),
		txt("\n", 50, 700, 0, 12),
		txt("Body", 10, 686, 20, 10),
	}
	got := groupRuns(texts)
	want := []TextRun{
		{Text: "Heading", EOL: true},
		{Text: "Body", EOL: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("groupRuns() = %+v, want %+v", got, want)
	}
}

func TestGroupRunsSkipsEmptyTexts(t *testing.T) {
	texts := []pdf.Text{
		txt("", 10, 700, 0, 10),
		txt("x", 10, 700, 5, 10),
	}
	got := groupRuns(texts)
	want := []TextRun{{Text: "x", EOL: false}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("groupRuns() = %+v, want %+v", got, want)
	}
}

func TestGroupRunsEmptyPage(t *testing.T) {
	if got := groupRuns(nil); len(got) != 0 {
		t.Errorf("groupRuns(nil) = %+v, want empty", got)
	}
}
