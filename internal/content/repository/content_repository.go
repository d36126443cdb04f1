package repository

import (
	"time"

	"brainly-backend/internal/content/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// contentRepository implements ContentRepository using GORM
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new GORM-based ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(content *domain.Content) error {
	if content.ID == "" {
		content.ID = uuid.New().String()
	}
	content.CreatedAt = time.Now()
	content.UpdatedAt = content.CreatedAt
	return r.db.Create(content).Error
}

func (r *contentRepository) FindByUserID(userID string) ([]*domain.Content, error) {
	var contents []*domain.Content
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&contents).Error
	return contents, err
}

func (r *contentRepository) FindByIDs(userID string, ids []string) ([]*domain.Content, error) {
	var contents []*domain.Content
	if len(ids) == 0 {
		return contents, nil
	}
	err := r.db.Where("user_id = ? AND id IN ?", userID, ids).Find(&contents).Error
	return contents, err
}

func (r *contentRepository) DeleteByIDAndUser(id, userID string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Content{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
