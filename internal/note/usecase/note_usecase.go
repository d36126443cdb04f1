package usecase

import (
	"fmt"
	"strings"

	"brainly-backend/internal/note/domain"
	"brainly-backend/internal/note/dto"
	"brainly-backend/internal/note/repository"

	"github.com/google/uuid"
)

// noteUsecase implements NoteUsecase interface
type noteUsecase struct {
	noteRepo repository.NoteRepository
	indexer  Indexer
}

// NewNoteUsecase creates a new instance of noteUsecase
func NewNoteUsecase(noteRepo repository.NoteRepository) NoteUsecase {
	return &noteUsecase{
		noteRepo: noteRepo,
	}
}

func (u *noteUsecase) SetIndexer(indexer Indexer) {
	u.indexer = indexer
}

func (u *noteUsecase) CreateNote(userID string, req *dto.CreateNoteRequest) (*domain.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	count, err := u.noteRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}

	note := &domain.Note{
		UserID:     userID,
		Title:      title,
		Content:    req.Content,
		ColorIndex: int(count % domain.ColorCount),
	}
	if err := u.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	u.index(note)
	return note, nil
}

func (u *noteUsecase) ListNotes(userID string) ([]*domain.Note, error) {
	return u.noteRepo.FindByUserID(userID)
}

func (u *noteUsecase) UpdateNote(userID, noteID string, req *dto.UpdateNoteRequest) (*domain.Note, error) {
	note, err := u.getOwned(userID, noteID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if title := strings.TrimSpace(*req.Title); title != "" {
			note.Title = title
		}
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.IsPinned != nil {
		note.IsPinned = *req.IsPinned
	}

	if err := u.noteRepo.Update(note); err != nil {
		return nil, err
	}

	u.index(note)
	return note, nil
}

func (u *noteUsecase) DeleteNote(userID, noteID string) error {
	if _, err := uuid.Parse(noteID); err != nil {
		return ErrInvalidNoteID
	}

	deleted, err := u.noteRepo.DeleteByIDAndUser(noteID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}

	if u.indexer != nil {
		u.indexer.RemoveDocument(noteID)
	}
	return nil
}

func (u *noteUsecase) SetPinned(userID, noteID string, pinned bool) (*domain.Note, error) {
	note, err := u.getOwned(userID, noteID)
	if err != nil {
		return nil, err
	}

	note.IsPinned = pinned
	if err := u.noteRepo.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (u *noteUsecase) getOwned(userID, noteID string) (*domain.Note, error) {
	if _, err := uuid.Parse(noteID); err != nil {
		return nil, ErrInvalidNoteID
	}

	note, err := u.noteRepo.FindByIDAndUser(noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

func (u *noteUsecase) index(note *domain.Note) {
	if u.indexer == nil {
		return
	}
	u.indexer.IndexDocument(note.UserID, note.ID, IndexKind, note.Title, note.Title+"\n"+note.Content)
}
