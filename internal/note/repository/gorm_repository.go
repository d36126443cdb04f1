package repository

import (
	"errors"
	"time"

	"brainly-backend/internal/note/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormNoteRepository implements NoteRepository using GORM
type gormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GORM-based NoteRepository
func NewGormNoteRepository(db *gorm.DB) NoteRepository {
	return &gormNoteRepository{db: db}
}

func (r *gormNoteRepository) Create(note *domain.Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	return r.db.Create(note).Error
}

func (r *gormNoteRepository) CountByUserID(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Note{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *gormNoteRepository) FindByUserID(userID string) ([]*domain.Note, error) {
	var notes []*domain.Note
	err := r.db.Where("user_id = ?", userID).
		Order("is_pinned DESC, updated_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *gormNoteRepository) FindByIDs(userID string, ids []string) ([]*domain.Note, error) {
	var notes []*domain.Note
	if len(ids) == 0 {
		return notes, nil
	}
	err := r.db.Where("user_id = ? AND id IN ?", userID, ids).Find(&notes).Error
	return notes, err
}

func (r *gormNoteRepository) FindByIDAndUser(id, userID string) (*domain.Note, error) {
	var note domain.Note
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *gormNoteRepository) Update(note *domain.Note) error {
	note.UpdatedAt = time.Now()
	return r.db.Save(note).Error
}

func (r *gormNoteRepository) DeleteByIDAndUser(id, userID string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Note{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
