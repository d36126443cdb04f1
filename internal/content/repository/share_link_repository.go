package repository

import (
	"errors"
	"time"

	"brainly-backend/internal/content/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type shareLinkRepository struct {
	db *gorm.DB
}

// NewShareLinkRepository creates a new GORM-based ShareLinkRepository
func NewShareLinkRepository(db *gorm.DB) ShareLinkRepository {
	return &shareLinkRepository{db: db}
}

func (r *shareLinkRepository) Create(link *domain.ShareLink) error {
	link.ID = uuid.New().String()
	link.CreatedAt = time.Now()
	return r.db.Create(link).Error
}

func (r *shareLinkRepository) FindByUserID(userID string) (*domain.ShareLink, error) {
	return r.findOne("user_id = ?", userID)
}

func (r *shareLinkRepository) FindByHash(hash string) (*domain.ShareLink, error) {
	return r.findOne("hash = ?", hash)
}

func (r *shareLinkRepository) DeleteByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.ShareLink{}).Error
}

func (r *shareLinkRepository) findOne(query string, arg string) (*domain.ShareLink, error) {
	var link domain.ShareLink
	err := r.db.Where(query, arg).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}
