package note_test

import (
	"note-keeper/internal/note"
	"strings"
	"testing"
)

func TestRenderEditForm_PrefillsFields(t *testing.T) {
	page, err := note.RenderEditForm(note.EditFormData{
		Username: "kody",
		NoteId:   "note-1",
		Title:    "Basic Koala Facts",
		Content:  "Koalas are herbivores.",
	})
	if err != nil {
		t.Fatalf("RenderEditForm error: %v", err)
	}

	html := string(page)
	for _, want := range []string{
		`action="/users/kody/notes/note-1/edit"`,
		`value="Basic Koala Facts"`,
		">Koalas are herbivores.</textarea>",
		`maxlength="100"`,
		`maxlength="10000"`,
		`<label for="title">`,
		`<label for="content">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered form is missing %s", want)
			return
		}
	}

	// no errors were given, so no error affordances should render
	for _, unwanted := range []string{"aria-invalid", "title-errors", "content-errors", "form-errors"} {
		if strings.Contains(html, unwanted) {
			t.Errorf("rendered form unexpectedly contains %s", unwanted)
			return
		}
	}
}

func TestRenderEditForm_WiresErrorsToFields(t *testing.T) {
	errs := note.NewActionErrors()
	errs.FieldErrors.Title = append(errs.FieldErrors.Title, "Title is required")
	errs.FieldErrors.Content = append(errs.FieldErrors.Content, "Content must be at most 10000 characters")

	page, err := note.RenderEditForm(note.EditFormData{
		Username: "kody",
		NoteId:   "note-1",
		Errors:   errs,
	})
	if err != nil {
		t.Fatalf("RenderEditForm error: %v", err)
	}

	html := string(page)
	for _, want := range []string{
		`aria-invalid="true" aria-describedby="title-errors"`,
		`aria-invalid="true" aria-describedby="content-errors"`,
		`<ul id="title-errors"`,
		`<ul id="content-errors"`,
		"Title is required",
		"Content must be at most 10000 characters",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered form is missing %s", want)
			return
		}
	}
}

func TestRenderEditForm_FormLevelErrors(t *testing.T) {
	errs := note.NewActionErrors()
	errs.FormErrors = append(errs.FormErrors, "Something about the whole submission is off")

	page, err := note.RenderEditForm(note.EditFormData{Username: "kody", NoteId: "note-1", Errors: errs})
	if err != nil {
		t.Fatalf("RenderEditForm error: %v", err)
	}

	html := string(page)
	if !strings.Contains(html, `aria-describedby="form-errors"`) {
		t.Errorf("form element is not linked to the form error list")
		return
	}
	if !strings.Contains(html, "Something about the whole submission is off") {
		t.Errorf("form error message is not rendered")
		return
	}
}

func TestRenderEditForm_SubmittingDisablesButton(t *testing.T) {
	page, err := note.RenderEditForm(note.EditFormData{
		Username:   "kody",
		NoteId:     "note-1",
		Title:      "Hi",
		Content:    "Body",
		Submitting: true,
	})
	if err != nil {
		t.Fatalf("RenderEditForm error: %v", err)
	}

	html := string(page)
	if !strings.Contains(html, `disabled aria-disabled="true"`) {
		t.Errorf("submit button is not disabled while submitting")
		return
	}
	if !strings.Contains(html, "Saving...") {
		t.Errorf("submit button does not show the pending label")
		return
	}
}

func TestRenderEditForm_EscapesUserContent(t *testing.T) {
	page, err := note.RenderEditForm(note.EditFormData{
		Username: "kody",
		NoteId:   "note-1",
		Title:    `<script>alert("x")</script>`,
		Content:  "a < b",
	})
	if err != nil {
		t.Fatalf("RenderEditForm error: %v", err)
	}

	html := string(page)
	if strings.Contains(html, `<script>alert`) {
		t.Errorf("title is rendered unescaped")
		return
	}
	if !strings.Contains(html, "a &lt; b") {
		t.Errorf("content is rendered unescaped")
		return
	}
}
