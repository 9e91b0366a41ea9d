package model

import "time"

// Post is a text entry published by a user, optionally into a group and
// optionally carrying an image reference. CreatedAt is set once on insert and
// never touched by edits; only Text, GroupID and Image are mutable.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	GroupID   *uint     `gorm:"index" json:"group_id,omitempty"`
	Image     string    `gorm:"type:varchar(255)" json:"image,omitempty"`

	Author User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Group  *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
}
