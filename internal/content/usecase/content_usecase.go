package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	authrepo "brainly-backend/internal/auth/repository"
	"brainly-backend/internal/content/domain"
	"brainly-backend/internal/content/dto"
	"brainly-backend/internal/content/repository"

	"github.com/google/uuid"
)

const (
	shareHashLength   = 10
	shareHashAlphabet = "qwertyuiopasdfghjklzxcvbnm1234567890"
)

// contentUsecase implements ContentUsecase interface
type contentUsecase struct {
	contentRepo repository.ContentRepository
	linkRepo    repository.ShareLinkRepository
	userRepo    authrepo.UserRepository
	indexer     Indexer
}

// NewContentUsecase creates a new instance of contentUsecase
func NewContentUsecase(
	contentRepo repository.ContentRepository,
	linkRepo repository.ShareLinkRepository,
	userRepo authrepo.UserRepository,
) ContentUsecase {
	return &contentUsecase{
		contentRepo: contentRepo,
		linkRepo:    linkRepo,
		userRepo:    userRepo,
	}
}

func (u *contentUsecase) SetIndexer(indexer Indexer) {
	u.indexer = indexer
}

func (u *contentUsecase) CreateContent(userID string, req *dto.CreateContentRequest) (*domain.Content, error) {
	ownerID := userID
	if req.ShareHash != "" {
		link, err := u.linkRepo.FindByHash(req.ShareHash)
		if err != nil {
			return nil, err
		}
		if link == nil {
			return nil, ErrInvalidShareLink
		}
		ownerID = link.UserID
	}

	content := &domain.Content{
		Title:       strings.TrimSpace(req.Title),
		Link:        strings.TrimSpace(req.Link),
		Type:        domain.ContentType(req.Type),
		Description: strings.TrimSpace(req.Description),
		UserID:      ownerID,
	}
	if err := u.contentRepo.Create(content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	if u.indexer != nil {
		u.indexer.IndexDocument(ownerID, content.ID, IndexKind, content.Title, indexText(content))
	}
	return content, nil
}

func (u *contentUsecase) ListContent(userID string) ([]*domain.Content, error) {
	contents, err := u.contentRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if err := u.populateOwners(contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func (u *contentUsecase) DeleteContent(userID, contentID string) error {
	if _, err := uuid.Parse(contentID); err != nil {
		return ErrInvalidContentID
	}

	deleted, err := u.contentRepo.DeleteByIDAndUser(contentID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContentNotFound
	}

	if u.indexer != nil {
		u.indexer.RemoveDocument(contentID)
	}
	return nil
}

func (u *contentUsecase) ShareBrain(userID string, share bool) (string, error) {
	if !share {
		return "", u.linkRepo.DeleteByUserID(userID)
	}

	existing, err := u.linkRepo.FindByUserID(userID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.Hash, nil
	}

	hash, err := randomHash(shareHashLength)
	if err != nil {
		return "", err
	}
	if err := u.linkRepo.Create(&domain.ShareLink{Hash: hash, UserID: userID}); err != nil {
		return "", fmt.Errorf("failed to create share link: %w", err)
	}
	return hash, nil
}

func (u *contentUsecase) GetSharedBrain(hash string) (*dto.SharedBrainResponse, error) {
	link, err := u.linkRepo.FindByHash(hash)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrInvalidShareLink
	}

	owner, err := u.userRepo.FindByID(link.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	contents, err := u.contentRepo.FindByUserID(link.UserID)
	if err != nil {
		return nil, err
	}
	if contents == nil {
		contents = []*domain.Content{}
	}

	return &dto.SharedBrainResponse{
		Username: owner.Username,
		Content:  contents,
	}, nil
}

func (u *contentUsecase) populateOwners(contents []*domain.Content) error {
	seen := make(map[string]bool)
	var ids []string
	for _, c := range contents {
		if !seen[c.UserID] {
			seen[c.UserID] = true
			ids = append(ids, c.UserID)
		}
	}

	users, err := u.userRepo.FindByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to load content owners: %w", err)
	}
	for _, c := range contents {
		if user, ok := users[c.UserID]; ok {
			c.Owner = &domain.ContentOwner{ID: user.ID, Username: user.Username}
		}
	}
	return nil
}

func indexText(c *domain.Content) string {
	parts := []string{c.Title, c.Link}
	if c.Description != "" {
		parts = append(parts, c.Description)
	}
	return strings.Join(parts, "\n")
}

func randomHash(n int) (string, error) {
	alphabetSize := big.NewInt(int64(len(shareHashAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate share hash: %w", err)
		}
		b[i] = shareHashAlphabet[idx.Int64()]
	}
	return string(b), nil
}
