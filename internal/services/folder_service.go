package services

import (
	"context"

	"invoice-backend/internal/apperr"
	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
)

// maxFolderDepth bounds the ancestor walk so corrupted parent links can
// never loop forever. No real folder tree comes close.
const maxFolderDepth = 32

type FolderService struct {
	Repo     *repositories.FolderRepository
	Invoices *repositories.InvoiceRepository
	Tags     *repositories.TagRepository
}

func NewFolderService(repo *repositories.FolderRepository, invoices *repositories.InvoiceRepository, tags *repositories.TagRepository) *FolderService {
	return &FolderService{Repo: repo, Invoices: invoices, Tags: tags}
}

// CreateFolder creates a folder, optionally nested under an owned parent.
func (s *FolderService) CreateFolder(ctx context.Context, ownerID int64, req *models.CreateFolderRequest) (*models.InvoiceFolder, error) {
	if req.Name == "" {
		return nil, apperr.Validation("folder name is required")
	}
	if req.ParentID != nil {
		if _, err := s.Repo.Get(ctx, ownerID, *req.ParentID); err != nil {
			return nil, mapRepoError(err, "")
		}
	}
	if err := s.validateTagsForFolder(ctx, ownerID, req.TagIDs); err != nil {
		return nil, err
	}

	folder := &models.InvoiceFolder{
		OwnerID:             ownerID,
		Name:                req.Name,
		ParentID:            req.ParentID,
		DefaultHourlyRate:   req.DefaultHourlyRate,
		DefaultCurrency:     req.DefaultCurrency,
		DefaultPaymentTerms: req.DefaultPaymentTerms,
		DefaultJobTitle:     req.DefaultJobTitle,
		NumberPrefix:        req.NumberPrefix,
		TagIDs:              req.TagIDs,
	}
	if folder.TagIDs == nil {
		folder.TagIDs = []int64{}
	}
	if err := s.Repo.Create(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// GetFolder returns a single owned, non-deleted folder.
func (s *FolderService) GetFolder(ctx context.Context, ownerID, id int64) (*models.InvoiceFolder, error) {
	folder, err := s.Repo.Get(ctx, ownerID, id)
	return folder, mapRepoError(err, "")
}

// ListFolders returns all of the owner's folders.
func (s *FolderService) ListFolders(ctx context.Context, ownerID int64) ([]*models.InvoiceFolder, error) {
	return s.Repo.List(ctx, ownerID)
}

// UpdateFolder applies a partial patch. A parent change walks the new
// ancestry to reject cycles before anything is written.
func (s *FolderService) UpdateFolder(ctx context.Context, ownerID, id int64, req *models.UpdateFolderRequest) (*models.InvoiceFolder, error) {
	folder, err := s.Repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, mapRepoError(err, "")
	}

	if folder.Locked {
		if req.Locked == nil || *req.Locked {
			return nil, apperr.Validation("folder is locked")
		}
		folder.Locked = false
	} else if req.Locked != nil {
		folder.Locked = *req.Locked
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperr.Validation("folder name is required")
		}
		folder.Name = *req.Name
	}
	if req.ClearParent {
		folder.ParentID = nil
	} else if req.ParentID != nil {
		if *req.ParentID == id {
			return nil, apperr.Validation("folder cannot be its own parent")
		}
		if _, err := s.Repo.Get(ctx, ownerID, *req.ParentID); err != nil {
			return nil, mapRepoError(err, "")
		}
		cycle, err := s.wouldCreateCycle(ctx, ownerID, id, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if cycle {
			return nil, apperr.Validation("move would create a folder cycle")
		}
		folder.ParentID = req.ParentID
	}

	if req.DefaultHourlyRate != nil {
		folder.DefaultHourlyRate = req.DefaultHourlyRate
	}
	if req.DefaultCurrency != nil {
		folder.DefaultCurrency = *req.DefaultCurrency
	}
	if req.DefaultPaymentTerms != nil {
		folder.DefaultPaymentTerms = *req.DefaultPaymentTerms
	}
	if req.DefaultJobTitle != nil {
		folder.DefaultJobTitle = *req.DefaultJobTitle
	}
	if req.NumberPrefix != nil {
		folder.NumberPrefix = *req.NumberPrefix
	}
	if req.TagIDs != nil {
		if err := s.validateTagsForFolder(ctx, ownerID, *req.TagIDs); err != nil {
			return nil, err
		}
		folder.TagIDs = *req.TagIDs
	}

	if err := s.Repo.Update(ctx, folder); err != nil {
		return nil, mapRepoError(err, "")
	}
	return folder, nil
}

// DeleteFolder tombstones a folder. Its invoices keep their reference and
// surface as unfiled until moved.
func (s *FolderService) DeleteFolder(ctx context.Context, ownerID, id int64) error {
	folder, err := s.Repo.Get(ctx, ownerID, id)
	if err != nil {
		return mapRepoError(err, "")
	}
	if folder.Locked {
		return apperr.Validation("folder is locked")
	}
	hasChildren, err := s.Repo.HasChildren(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return apperr.Validation("folder has subfolders, move or delete them first")
	}
	return mapRepoError(s.Repo.SoftDelete(ctx, ownerID, id), "")
}

// wouldCreateCycle walks up from the proposed parent looking for the folder
// being moved.
func (s *FolderService) wouldCreateCycle(ctx context.Context, ownerID, folderID, newParentID int64) (bool, error) {
	lookup := func(id int64) (*int64, bool) {
		f, err := s.Repo.Get(ctx, ownerID, id)
		if err != nil {
			return nil, false
		}
		return f.ParentID, true
	}
	return wouldCreateCycle(folderID, newParentID, lookup), nil
}

// wouldCreateCycle reports whether re-parenting folderID under newParentID
// closes a loop. The walk gives up after maxFolderDepth steps and reports a
// cycle, which fails safe on corrupted parent links.
func wouldCreateCycle(folderID, newParentID int64, parentOf func(int64) (*int64, bool)) bool {
	current := newParentID
	for depth := 0; depth < maxFolderDepth; depth++ {
		if current == folderID {
			return true
		}
		parent, ok := parentOf(current)
		if !ok || parent == nil {
			return false
		}
		current = *parent
	}
	return true
}

func (s *FolderService) validateTagsForFolder(ctx context.Context, ownerID int64, tagIDs []int64) error {
	for _, id := range tagIDs {
		tag, err := s.Tags.Get(ctx, ownerID, id)
		if err != nil {
			return mapRepoError(err, "")
		}
		if !tag.Scope.AppliesToFolder() {
			return apperr.Validation("tag %q is invoice-only and cannot be attached to a folder", tag.Name)
		}
	}
	return nil
}
