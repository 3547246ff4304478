package note

import (
	"fmt"
	"golang.org/x/text/collate"
	"note-keeper/internal/environment"
	"note-keeper/internal/models"
	"note-keeper/internal/utils"
	"time"
)

const (
	TitleMaxLength   = 100
	ContentMaxLength = 10000
)

// FieldErrors holds per-field validation messages for a note submission.
type FieldErrors struct {
	Title   []string `json:"title"`
	Content []string `json:"content"`
}

// ActionErrors is the validation result of a single note submission.
// Violations accumulate instead of short-circuiting, so a submission with
// a bad title and a bad content reports both. It is built fresh per
// request and discarded once the response is written.
type ActionErrors struct {
	FormErrors  []string    `json:"formErrors"`
	FieldErrors FieldErrors `json:"fieldErrors"`
}

// NewActionErrors returns an ActionErrors with empty (non-nil) slices so
// the JSON rendering contains [] instead of null.
func NewActionErrors() *ActionErrors {
	return &ActionErrors{
		FormErrors: []string{},
		FieldErrors: FieldErrors{
			Title:   []string{},
			Content: []string{},
		},
	}
}

func (e *ActionErrors) HasErrors() bool {
	return len(e.FormErrors) > 0 ||
		len(e.FieldErrors.Title) > 0 ||
		len(e.FieldErrors.Content) > 0
}

// ValidateNote checks the length bounds on title and content.
// Lengths are counted in characters, not bytes.
func ValidateNote(title, content string) *ActionErrors {
	errs := NewActionErrors()

	if utils.CountChars(title) <= 0 {
		errs.FieldErrors.Title = append(errs.FieldErrors.Title, "Title is required")
	}
	if utils.CountChars(title) > TitleMaxLength {
		errs.FieldErrors.Title = append(errs.FieldErrors.Title,
			fmt.Sprintf("Title must be at most %d characters", TitleMaxLength))
	}

	if utils.CountChars(content) <= 0 {
		errs.FieldErrors.Content = append(errs.FieldErrors.Content, "Content is required")
	}
	if utils.CountChars(content) > ContentMaxLength {
		errs.FieldErrors.Content = append(errs.FieldErrors.Content,
			fmt.Sprintf("Content must be at most %d characters", ContentMaxLength))
	}

	return errs
}

type Page[T any] struct {
	TotalElements int      `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
	Content       []T      `json:"content"`
	Pageable      Pageable `json:"pageable"`
}

type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// NoteSummary is the list representation of a note: enough to render an
// index entry without shipping the content body.
type NoteSummary struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	CharCount uint      `json:"charCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NoteListService struct {
	*environment.Env
	*collate.Collator
}

// summariesLister implements the interface [collate.Lister]
// which can be passed into the receiver method Sort() of [collate.Collator]
//
// Instead of Go's default pure Unicode code point ordering, [collate.Collator] is used
// to provide lexicographic order with locale-aware sorting (like filesystems do)
// for the note titles in a user's note list.
type summariesLister struct {
	summaries []NoteSummary
}

func (l summariesLister) Len() int {
	return len(l.summaries)
}

func (l summariesLister) Swap(i, j int) {
	l.summaries[i], l.summaries[j] = l.summaries[j], l.summaries[i]
}

func (l summariesLister) Bytes(i int) []byte {
	return []byte(l.summaries[i].Title)
}

// BuildNoteSummaries maps notes to their list representation and sorts
// them by title using the locale-aware collator.
func (s NoteListService) BuildNoteSummaries(notes []models.Note) []NoteSummary {
	summaries := make([]NoteSummary, 0, len(notes))
	for _, n := range notes {
		summaries = append(summaries, NoteSummary{
			Id:        n.Uuid,
			Title:     n.Title,
			CharCount: n.CharCount,
			UpdatedAt: n.UpdatedAt,
		})
	}

	s.Collator.Sort(summariesLister{summaries: summaries})

	return summaries
}
