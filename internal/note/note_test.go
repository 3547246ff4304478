package note_test

import (
	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"note-keeper/internal/environment"
	"note-keeper/internal/models"
	"note-keeper/internal/note"
	"strings"
	"testing"
)

func TestValidateNote_Valid(t *testing.T) {
	errs := note.ValidateNote("Hi", "Body")

	if errs.HasErrors() {
		t.Errorf("got errors %+v, want none", errs)
		return
	}
}

func TestValidateNote_BoundsAreInclusive(t *testing.T) {
	errs := note.ValidateNote(strings.Repeat("a", 100), strings.Repeat("b", 10000))

	if errs.HasErrors() {
		t.Errorf("got errors %+v, want none at the upper bounds", errs)
		return
	}
}

func TestValidateNote_TitleTooLong(t *testing.T) {
	errs := note.ValidateNote(strings.Repeat("a", 101), "Body")

	want := []string{"Title must be at most 100 characters"}
	if !cmp.Equal(want, errs.FieldErrors.Title) {
		t.Error(cmp.Diff(want, errs.FieldErrors.Title))
		return
	}
	if len(errs.FieldErrors.Content) != 0 {
		t.Errorf("got content errors %v, want none", errs.FieldErrors.Content)
		return
	}
}

func TestValidateNote_ContentTooLong(t *testing.T) {
	errs := note.ValidateNote("Hi", strings.Repeat("b", 10001))

	want := []string{"Content must be at most 10000 characters"}
	if !cmp.Equal(want, errs.FieldErrors.Content) {
		t.Error(cmp.Diff(want, errs.FieldErrors.Content))
		return
	}
}

func TestValidateNote_ViolationsCoOccur(t *testing.T) {
	errs := note.ValidateNote("", strings.Repeat("b", 10001))

	if !errs.HasErrors() {
		t.Fatalf("want errors, got none")
	}
	if len(errs.FieldErrors.Title) != 1 || len(errs.FieldErrors.Content) != 1 {
		t.Errorf("got %d title and %d content errors, want one of each",
			len(errs.FieldErrors.Title), len(errs.FieldErrors.Content))
		return
	}
}

func TestValidateNote_LengthCountsCharactersNotBytes(t *testing.T) {
	// 100 two-byte runes are within the title bound
	errs := note.ValidateNote(strings.Repeat("ä", 100), "Body")

	if errs.HasErrors() {
		t.Errorf("got errors %+v, want none for 100 multi-byte characters", errs)
		return
	}
}

func TestBuildNoteSummaries_CollatedOrder(t *testing.T) {
	env := environment.Null()
	s := note.NoteListService{Env: env, Collator: collate.New(language.English)}

	notes := []models.Note{
		{Uuid: "1", Title: "Z_Guidelines"},
		{Uuid: "2", Title: "A-Guidelines"},
		{Uuid: "3", Title: "Gateway"},
		{Uuid: "4", Title: "A_Guidelines"},
	}

	got := s.BuildNoteSummaries(notes)

	want := []string{"A_Guidelines", "A-Guidelines", "Gateway", "Z_Guidelines"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("got %q at position %d, want %q", got[i].Title, i, title)
			return
		}
	}
}
