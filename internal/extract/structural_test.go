package extract

import (
	"errors"
	"testing"

	"docpipe/internal/pdfdoc"
)

// fakeSource serves canned runs per page; pages mapped to nil error-out.
type fakeSource struct {
	pages [][]pdfdoc.TextRun
	fail  map[int]bool
}

func (f *fakeSource) NumPages() int { return len(f.pages) }

func (f *fakeSource) PageRuns(page int) ([]pdfdoc.TextRun, error) {
	if f.fail[page] {
		return nil, errors.New("malformed content stream")
	}
	return f.pages[page-1], nil
}

func TestStructuralJoinsRuns(t *testing.T) {
	src := &fakeSource{pages: [][]pdfdoc.TextRun{
		{
			{Text: "Title of the document", EOL: true},
			{Text: "first", EOL: false},
			{Text: "paragraph line  ", EOL: true},
		},
	}}

	got := Structural(src)
	want := "Title of the document\nfirst paragraph line"
	if got != want {
		t.Errorf("Structural() = %q, want %q", got, want)
	}
}

func TestStructuralBlankLineBetweenPages(t *testing.T) {
	src := &fakeSource{pages: [][]pdfdoc.TextRun{
		{{Text: "page one", EOL: true}},
		{}, // blank scanned page contributes nothing
		{{Text: "page three", EOL: true}},
	}}

	got := Structural(src)
	want := "page one\n\n\n\npage three"
	if got != want {
		t.Errorf("Structural() = %q, want %q", got, want)
	}
}

func TestStructuralRecoversFailedPage(t *testing.T) {
	src := &fakeSource{
		pages: [][]pdfdoc.TextRun{
			{{Text: "good page", EOL: true}},
			{{Text: "never seen", EOL: true}},
		},
		fail: map[int]bool{2: true},
	}

	got := Structural(src)
	if got != "good page" {
		t.Errorf("Structural() = %q, want %q", got, "good page")
	}
}

func TestStructuralStripsNULs(t *testing.T) {
	src := &fakeSource{pages: [][]pdfdoc.TextRun{
		{{Text: "be\x00fore", EOL: true}},
	}}

	got := Structural(src)
	if got != "before" {
		t.Errorf("Structural() = %q, want %q", got, "before")
	}
}

func TestStructuralEmptyDocument(t *testing.T) {
	src := &fakeSource{}
	if got := Structural(src); got != "" {
		t.Errorf("Structural() = %q, want empty", got)
	}
}
