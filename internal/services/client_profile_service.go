package services

import (
	"context"

	"invoice-backend/internal/apperr"
	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
)

type ClientProfileService struct {
	Repo *repositories.ClientProfileRepository
}

func NewClientProfileService(repo *repositories.ClientProfileRepository) *ClientProfileService {
	return &ClientProfileService{Repo: repo}
}

// CreateProfile saves a client preset.
func (s *ClientProfileService) CreateProfile(ctx context.Context, ownerID int64, req *models.CreateClientProfileRequest) (*models.ClientProfile, error) {
	if req.Name == "" {
		return nil, apperr.Validation("client name is required")
	}

	profile := &models.ClientProfile{
		OwnerID:             ownerID,
		Party:               req.Party,
		DefaultCurrency:     req.DefaultCurrency,
		DefaultPaymentTerms: req.DefaultPaymentTerms,
	}
	if err := s.Repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile returns a single owned, non-deleted profile.
func (s *ClientProfileService) GetProfile(ctx context.Context, ownerID, id int64) (*models.ClientProfile, error) {
	profile, err := s.Repo.Get(ctx, ownerID, id)
	return profile, mapRepoError(err, "")
}

// ListProfiles returns all of the owner's profiles.
func (s *ClientProfileService) ListProfiles(ctx context.Context, ownerID int64) ([]*models.ClientProfile, error) {
	return s.Repo.List(ctx, ownerID)
}

// UpdateProfile applies a partial patch.
func (s *ClientProfileService) UpdateProfile(ctx context.Context, ownerID, id int64, req *models.UpdateClientProfileRequest) (*models.ClientProfile, error) {
	profile, err := s.Repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, mapRepoError(err, "")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperr.Validation("client name is required")
		}
		profile.Name = *req.Name
	}
	if req.JobTitle != nil {
		profile.JobTitle = *req.JobTitle
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.TaxID != nil {
		profile.TaxID = *req.TaxID
	}
	if req.DefaultCurrency != nil {
		profile.DefaultCurrency = *req.DefaultCurrency
	}
	if req.DefaultPaymentTerms != nil {
		profile.DefaultPaymentTerms = *req.DefaultPaymentTerms
	}

	if err := s.Repo.Update(ctx, profile); err != nil {
		return nil, mapRepoError(err, "")
	}
	return profile, nil
}

// DeleteProfile tombstones a profile.
func (s *ClientProfileService) DeleteProfile(ctx context.Context, ownerID, id int64) error {
	return mapRepoError(s.Repo.SoftDelete(ctx, ownerID, id), "")
}
