package database

import (
	"context"
	"gorm.io/gorm"
	"note-keeper/internal/models"
)

// Repository defines data access methods for notes and user login credentials.
//
// @Summary Interface for note storage operations
type Repository interface {

	// FindUserLoginCredentials fetches the user record with the specified username.
	//
	// Param username path string true "Username"
	FindUserLoginCredentials(ctx context.Context, username string, user *models.User) error

	// FindNoteById fetches a note by its public id.
	//
	// Param id path string true "Note id"
	FindNoteById(ctx context.Context, id string, note *models.Note) error

	// FindNotesByOwner retrieves all notes owned by the given username.
	FindNotesByOwner(ctx context.Context, owner string, notes *[]models.Note) error

	// CountNotesByOwner counts the notes owned by the given username.
	CountNotesByOwner(ctx context.Context, owner string, count *int) error

	// CreateNote inserts a new note record.
	CreateNote(ctx context.Context, note *models.Note) error

	// UpdateNoteById sets title, content and char count of the note with the given public id.
	UpdateNoteById(ctx context.Context, id string, title string, content string, charCount uint) error

	// DeleteNoteById deletes the note record with the given public id.
	DeleteNoteById(ctx context.Context, id string) error
}

// NullRepository is a no-op implementation of the Repository interface.
// Useful for testing or default wiring when no database operations are required.
type NullRepository struct{}

func (n *NullRepository) FindUserLoginCredentials(ctx context.Context, username string, user *models.User) error {
	return nil
}

func (n *NullRepository) FindNoteById(ctx context.Context, id string, note *models.Note) error {
	return nil
}

func (n *NullRepository) FindNotesByOwner(ctx context.Context, owner string, notes *[]models.Note) error {
	return nil
}

func (n *NullRepository) CountNotesByOwner(ctx context.Context, owner string, count *int) error {
	return nil
}

func (n *NullRepository) CreateNote(ctx context.Context, note *models.Note) error {
	return nil
}

func (n *NullRepository) UpdateNoteById(ctx context.Context, id string, title string, content string, charCount uint) error {
	return nil
}

func (n *NullRepository) DeleteNoteById(ctx context.Context, id string) error {
	return nil
}

// ensure NullRepository implements Repository
var _ Repository = &NullRepository{}

// GormRepository provides a GORM-based implementation of the Repository interface.
type GormRepository struct {
	*gorm.DB
}

// ensure GormRepository implements Repository
var _ Repository = &GormRepository{}

func (g *GormRepository) FindUserLoginCredentials(ctx context.Context, username string, user *models.User) error {
	return g.DB.
		WithContext(ctx).
		Model(models.User{}).
		Where("username = ?", username).
		Take(user).
		Error
}

func (g *GormRepository) FindNoteById(ctx context.Context, id string, note *models.Note) error {
	return g.DB.
		WithContext(ctx).
		Model(models.Note{}).
		Where("uuid = ?", id).
		Take(note).
		Error
}

func (g *GormRepository) FindNotesByOwner(ctx context.Context, owner string, notes *[]models.Note) error {
	return g.DB.
		WithContext(ctx).
		Where("owner = ?", owner).
		Find(notes).
		Error
}

func (g *GormRepository) CountNotesByOwner(ctx context.Context, owner string, count *int) error {
	return g.DB.
		WithContext(ctx).
		Raw("SELECT count(*) FROM notes WHERE owner = ?", owner).
		Scan(count).
		Error
}

func (g *GormRepository) CreateNote(ctx context.Context, note *models.Note) error {
	return g.DB.
		WithContext(ctx).
		Create(note).
		Error
}

func (g *GormRepository) UpdateNoteById(ctx context.Context, id string, title string, content string, charCount uint) error {
	return g.DB.
		WithContext(ctx).
		Exec("UPDATE notes SET title = ?, content = ?, char_count = ?, updated_at = now() WHERE uuid = ?",
			title, content, charCount, id).
		Error
}

func (g *GormRepository) DeleteNoteById(ctx context.Context, id string) error {
	return g.DB.
		WithContext(ctx).
		Exec("DELETE FROM notes WHERE uuid = ?", id).
		Error
}
