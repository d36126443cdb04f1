package domain

import "time"

// ContentType is the kind of link a user saved
type ContentType string

const (
	ContentTypeYouTube ContentType = "youtube"
	ContentTypeTwitter ContentType = "twitter"
)

// Content is a saved link in a user's brain
type Content struct {
	ID          string        `json:"_id" gorm:"primaryKey"`
	Title       string        `json:"title"`
	Link        string        `json:"link"`
	Type        ContentType   `json:"type" gorm:"index"`
	Description string        `json:"description,omitempty"`
	UserID      string        `json:"-" gorm:"index;not null"`
	Owner       *ContentOwner `json:"userId,omitempty" gorm:"-"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ContentOwner is the populated owner reference returned with listed content
type ContentOwner struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// ShareLink makes a user's brain readable by anyone holding the hash
type ShareLink struct {
	ID        string    `json:"_id" gorm:"primaryKey"`
	Hash      string    `json:"hash" gorm:"uniqueIndex;not null"`
	UserID    string    `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
