package note

import (
	"bytes"
	_ "embed"
	"html/template"
)

//go:embed templates/edit.gohtml
var editFormTemplate string

var editTmpl = template.Must(template.New("edit").Parse(editFormTemplate))

// EditFormData carries everything the edit form needs to render: the
// field values to pre-fill, the errors of a rejected submission (if any)
// and whether a submission is currently in flight.
type EditFormData struct {
	Username   string
	NoteId     string
	Title      string
	Content    string
	Errors     *ActionErrors
	Submitting bool
}

// TitleMaxLength and ContentMaxLength expose the server-side bounds to the
// template so the client-side maxlength attributes mirror them.
func (EditFormData) TitleMaxLength() int   { return TitleMaxLength }
func (EditFormData) ContentMaxLength() int { return ContentMaxLength }

// RenderEditForm renders the note edit form pre-filled with the given
// data. It is a pure function of its input: no request state is read.
func RenderEditForm(data EditFormData) ([]byte, error) {
	if data.Errors == nil {
		data.Errors = NewActionErrors()
	}

	var buf bytes.Buffer
	if err := editTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
