package services

import (
	"context"

	"invoice-backend/internal/apperr"
	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
)

type TagService struct {
	Repo     *repositories.TagRepository
	Invoices *repositories.InvoiceRepository
	Folders  *repositories.FolderRepository
}

func NewTagService(repo *repositories.TagRepository, invoices *repositories.InvoiceRepository, folders *repositories.FolderRepository) *TagService {
	return &TagService{Repo: repo, Invoices: invoices, Folders: folders}
}

// CreateTag creates a tag; scope defaults to "both".
func (s *TagService) CreateTag(ctx context.Context, ownerID int64, req *models.CreateTagRequest) (*models.Tag, error) {
	if req.Name == "" {
		return nil, apperr.Validation("tag name is required")
	}
	scope := req.Scope
	if scope == "" {
		scope = models.TagScopeBoth
	}
	if !scope.Valid() {
		return nil, apperr.Validation("unknown tag scope %q", req.Scope)
	}

	tag := &models.Tag{
		OwnerID: ownerID,
		Name:    req.Name,
		Color:   req.Color,
		Scope:   scope,
	}
	if err := s.Repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// GetTag returns a single owned, non-deleted tag.
func (s *TagService) GetTag(ctx context.Context, ownerID, id int64) (*models.Tag, error) {
	tag, err := s.Repo.Get(ctx, ownerID, id)
	return tag, mapRepoError(err, "")
}

// ListTags returns all of the owner's tags.
func (s *TagService) ListTags(ctx context.Context, ownerID int64) ([]*models.Tag, error) {
	return s.Repo.List(ctx, ownerID)
}

// UpdateTag applies a partial patch. Narrowing the scope does not detach
// existing references; it only constrains future attachments.
func (s *TagService) UpdateTag(ctx context.Context, ownerID, id int64, req *models.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.Repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, mapRepoError(err, "")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperr.Validation("tag name is required")
		}
		tag.Name = *req.Name
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}
	if req.Scope != nil {
		if !req.Scope.Valid() {
			return nil, apperr.Validation("unknown tag scope %q", *req.Scope)
		}
		tag.Scope = *req.Scope
	}

	if err := s.Repo.Update(ctx, tag); err != nil {
		return nil, mapRepoError(err, "")
	}
	return tag, nil
}

// DeleteTag tombstones a tag and strips its id from every invoice and
// folder of the owner, so no dangling references survive.
func (s *TagService) DeleteTag(ctx context.Context, ownerID, id int64) error {
	if _, err := s.Repo.Get(ctx, ownerID, id); err != nil {
		return mapRepoError(err, "")
	}
	if err := s.Repo.SoftDelete(ctx, ownerID, id); err != nil {
		return mapRepoError(err, "")
	}
	if err := s.Invoices.StripTag(ctx, ownerID, id); err != nil {
		return err
	}
	return s.Folders.StripTag(ctx, ownerID, id)
}
