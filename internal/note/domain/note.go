package domain

import "time"

// ColorCount is the number of card colors a note can cycle through
const ColorCount = 10

// Note is a free-form text note owned by a user
type Note struct {
	ID         string    `json:"_id" gorm:"primaryKey"`
	UserID     string    `json:"userId" gorm:"index;not null"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content"`
	ColorIndex int       `json:"colorIndex" gorm:"default:0"`
	IsPinned   bool      `json:"isPinned" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
