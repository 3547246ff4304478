package models

// Note is a single note owned by a user. The Uuid column is the public
// identifier used in routes; the numeric ID stays internal.
type Note struct {
	Model
	Uuid      string `gorm:"not null;unique" json:"id"`
	Owner     string `gorm:"not null;index" json:"owner"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"not null" json:"content"`
	CharCount uint   `gorm:"not null;default:0" json:"-"`
}
