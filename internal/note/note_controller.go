package note

import (
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/samborkent/uuidv7"
	"gorm.io/gorm"
	"net/http"
	"note-keeper/internal/api"
	"note-keeper/internal/environment"
	"note-keeper/internal/logging"
	"note-keeper/internal/models"
	"note-keeper/internal/utils"
	"strconv"
	"strings"
)

// Api defines HTTP endpoints for reading, listing and mutating notes.
type Api interface {
	GetNoteForEdit(c *gin.Context)
	UpdateNote(c *gin.Context)
	GetNote(c *gin.Context)
	ListNotes(c *gin.Context)
	CreateNote(c *gin.Context)
	DeleteNote(c *gin.Context)
}

// Controller handles API operations on a user's notes.
//
// @Summary Note reading and editing controller
type Controller struct {
	*environment.Env
	NoteListService
}

// ensure Controller implements Api
var _ Api = &Controller{}

const defaultPageSize = 20

// GetNoteForEdit loads the title and content of a note for editing.
// Clients accepting text/html get the rendered edit form; everyone else
// gets the raw field values as JSON.
//
// @ID getNoteForEdit
// @Summary Load a note's editable fields
// @Tags note
// @Router /users/{username}/notes/{noteId}/edit [get]
// @Param noteId path string true "Note id"
// @Success 200 {object} map[string]map[string]string "Returns note title and content"
// @Failure 400
// @Failure 404
// @Failure 500
func (nc *Controller) GetNoteForEdit(c *gin.Context) {
	ctx := c.Request.Context()

	noteId := c.Param("noteId")
	if len(noteId) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'noteId' is missing"))
		return
	}

	var note models.Note
	err := nc.FindNoteById(ctx, noteId, &note)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, api.NewErrorResponsef("no note with the id %q exists", noteId))
		return
	}
	if err != nil {
		nc.LogError(logging.GetLogType("note"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponsef("error reading note: %s", err))
		return
	}

	if acceptsHtml(c) {
		page, err := RenderEditForm(EditFormData{
			Username: c.Param("username"),
			NoteId:   noteId,
			Title:    note.Title,
			Content:  note.Content,
		})
		if err != nil {
			nc.LogError(logging.GetLogType("note"), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponsef("error rendering edit form: %s", err))
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		return
	}

	response := struct {
		Note struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		} `json:"note"`
	}{}
	response.Note.Title = note.Title
	response.Note.Content = note.Content

	c.JSON(http.StatusOK, response)
}

// UpdateNote validates a submitted edit and persists it.
// Violations of the length bounds accumulate into field errors and are
// returned with status 400 without touching the database. A valid
// submission is persisted and answered with a redirect to the note view.
//
// @ID updateNote
// @Summary Persist an edit to a note
// @Tags note
// @Router /users/{username}/notes/{noteId}/edit [post]
// @Param noteId path string true "Note id"
// @Param title formData string true "Note title"
// @Param content formData string true "Note content"
// @Success 303
// @Failure 400
// @Failure 500
func (nc *Controller) UpdateNote(c *gin.Context) {
	ctx := c.Request.Context()

	noteId := c.Param("noteId")
	if len(noteId) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("noteId param is required"))
		return
	}

	title, content, err := readNoteForm(c)
	if err != nil {
		nc.LogError(logging.GetLogType("note"), err)
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse(err.Error()))
		return
	}

	actionErrors := ValidateNote(title, content)
	if actionErrors.HasErrors() {
		nc.writeActionErrors(c, c.Param("username"), noteId, title, content, actionErrors)
		return
	}

	err = nc.UpdateNoteById(ctx, noteId, title, content, uint(utils.CountChars(content)))
	if err != nil {
		nc.LogError(logging.GetLogType("note"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponsef("error updating note: %s", err))
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%s/notes/%s", c.Param("username"), noteId))
}

// GetNote returns the full note record.
//
// @ID getNote
// @Summary Get a note by id
// @Tags note
// @Router /users/{username}/notes/{noteId} [get]
// @Param noteId path string true "Note id"
// @Success 200 {object} models.Note
// @Failure 400
// @Failure 404
// @Failure 500
func (nc *Controller) GetNote(c *gin.Context) {
	ctx := c.Request.Context()

	noteId := c.Param("noteId")
	if len(noteId) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'noteId' is missing"))
		return
	}

	var note models.Note
	err := nc.FindNoteById(ctx, noteId, &note)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, api.NewErrorResponsef("no note with the id %q exists", noteId))
		return
	}
	if err != nil {
		nc.LogError(logging.GetLogType("note"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponsef("error reading note: %s", err))
		return
	}

	c.JSON(http.StatusOK, note)
}

// ListNotes returns one page of note summaries for a user, titles sorted
// locale-aware.
//
// @ID listNotes
// @Summary List a user's notes
// @Tags note
// @Router /users/{username}/notes [get]
// @Param username path string true "Username"
// @Param pageNumber query int false "Page number, starting at 0"
// @Param pageSize query int false "Page size"
// @Success 200 {object} note.Page[note.NoteSummary]
// @Failure 400
// @Failure 500
func (nc *Controller) ListNotes(c *gin.Context) {
	ctx := c.Request.Context()

	username := c.Param("username")
	if len(username) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'username' is missing"))
		return
	}

	pageNumber, _ := strconv.Atoi(c.DefaultQuery("pageNumber", "0"))
	if pageNumber < 0 {
		pageNumber = 0
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var notes []models.Note
	if err := nc.FindNotesByOwner(ctx, username, &notes); err != nil {
		nc.LogError(logging.GetLogType("note"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponsef("error reading notes: %s", err))
		return
	}

	var matchCount int
	if err := nc.CountNotesByOwner(ctx, username, &matchCount); err != nil {
		nc.LogError(logging.GetLogType("note"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponsef("error counting notes: %s", err))
		return
	}

	summaries := nc.BuildNoteSummaries(notes)

	from := pageNumber * pageSize
	if from > len(summaries) {
		from = len(summaries)
	}
	to := from + pageSize
	if to > len(summaries) {
		to = len(summaries)
	}

	page := Page[NoteSummary]{
		TotalElements: matchCount,
		TotalPages:    utils.CalculateTotalPages(matchCount, pageSize),
		Content:       summaries[from:to],
		Pageable:      Pageable{PageNumber: pageNumber, PageSize: pageSize},
	}

	c.JSON(http.StatusOK, page)
}

// CreateNote validates a submitted note, assigns it a fresh id and
// persists it.
//
// @ID createNote
// @Summary Create a note
// @Tags note
// @Router /users/{username}/notes [post]
// @Param username path string true "Username"
// @Param title formData string true "Note title"
// @Param content formData string true "Note content"
// @Success 303
// @Failure 400
// @Failure 500
func (nc *Controller) CreateNote(c *gin.Context) {
	ctx := c.Request.Context()

	username := c.Param("username")
	if len(username) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'username' is missing"))
		return
	}

	title, content, err := readNoteForm(c)
	if err != nil {
		nc.LogError(logging.GetLogType("note"), err)
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse(err.Error()))
		return
	}

	actionErrors := ValidateNote(title, content)
	if actionErrors.HasErrors() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": api.Error, "errors": actionErrors})
		return
	}

	note := models.Note{
		Uuid:      uuidv7.New().String(),
		Owner:     username,
		Title:     title,
		Content:   content,
		CharCount: uint(utils.CountChars(content)),
	}
	if err := nc.Env.CreateNote(ctx, &note); err != nil {
		nc.LogError(logging.GetLogType("note"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponsef("error creating note: %s", err))
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%s/notes/%s", username, note.Uuid))
}

// DeleteNote removes a note.
//
// @ID deleteNote
// @Summary Delete a note by id
// @Tags note
// @Router /users/{username}/notes/{noteId} [delete]
// @Param noteId path string true "Note id"
// @Success 204
// @Failure 400
// @Failure 500
func (nc *Controller) DeleteNote(c *gin.Context) {
	ctx := c.Request.Context()

	noteId := c.Param("noteId")
	if len(noteId) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("path variable 'noteId' is missing"))
		return
	}

	if err := nc.DeleteNoteById(ctx, noteId); err != nil {
		nc.LogError(logging.GetLogType("note"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponsef("error deleting note: %s", err))
		return
	}

	c.Status(http.StatusNoContent)
}

// writeActionErrors answers a rejected submission: browsers get the form
// re-rendered with the field errors wired in, API clients get the errors
// as JSON.
func (nc *Controller) writeActionErrors(c *gin.Context, username, noteId, title, content string, actionErrors *ActionErrors) {
	if acceptsHtml(c) {
		page, err := RenderEditForm(EditFormData{
			Username: username,
			NoteId:   noteId,
			Title:    title,
			Content:  content,
			Errors:   actionErrors,
		})
		if err != nil {
			nc.LogError(logging.GetLogType("note"), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponsef("error rendering edit form: %s", err))
			return
		}
		c.Data(http.StatusBadRequest, "text/html; charset=utf-8", page)
		c.Abort()
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": api.Error, "errors": actionErrors})
}

// readNoteForm extracts the title and content fields from an url-encoded
// or multipart form body. A field that is absent, or submitted as a file
// part instead of text, is a client error.
func readNoteForm(c *gin.Context) (string, string, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return "", "", fmt.Errorf("error parsing multipart form: %s", err)
		}

		for _, field := range []string{"title", "content"} {
			if len(form.File[field]) > 0 {
				return "", "", fmt.Errorf("form field '%s' must be text", field)
			}
		}

		titleValues, ok := form.Value["title"]
		if !ok || len(titleValues) == 0 {
			return "", "", errors.New("form field 'title' is missing")
		}
		contentValues, ok := form.Value["content"]
		if !ok || len(contentValues) == 0 {
			return "", "", errors.New("form field 'content' is missing")
		}

		return titleValues[0], contentValues[0], nil
	}

	title, ok := c.GetPostForm("title")
	if !ok {
		return "", "", errors.New("form field 'title' is missing")
	}
	content, ok := c.GetPostForm("content")
	if !ok {
		return "", "", errors.New("form field 'content' is missing")
	}

	return title, content, nil
}

func acceptsHtml(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
