package licenseservice

import (
	"context"
	"strings"

	"assetdesk/models"
	licenserepo "assetdesk/repository/license"

	"github.com/google/uuid"
)

type LicenseService interface {
	CreateLicense(ctx context.Context, req models.CreateLicenseReq) (models.License, error)
	UpdateLicense(ctx context.Context, req models.UpdateLicenseReq) (models.License, error)
	DeleteLicense(ctx context.Context, id uuid.UUID) error
	ListLicenses(ctx context.Context) ([]models.License, error)
}

type licenseService struct {
	repo licenserepo.LicenseRepository
}

func NewLicenseService(repo licenserepo.LicenseRepository) LicenseService {
	return &licenseService{repo: repo}
}

func (s *licenseService) CreateLicense(ctx context.Context, req models.CreateLicenseReq) (models.License, error) {
	if strings.TrimSpace(req.Software) == "" {
		return models.License{}, models.ValidationError{Field: "software", Reason: "is required"}
	}
	if strings.TrimSpace(req.LicenseKey) == "" {
		return models.License{}, models.ValidationError{Field: "licenseKey", Reason: "is required"}
	}
	if req.Seats < 1 {
		req.Seats = 1
	}
	return s.repo.CreateLicense(ctx, req)
}

func (s *licenseService) UpdateLicense(ctx context.Context, req models.UpdateLicenseReq) (models.License, error) {
	if req.ID == uuid.Nil {
		return models.License{}, models.ValidationError{Field: "id", Reason: "is required"}
	}
	if req.Seats != nil && *req.Seats < 1 {
		return models.License{}, models.ValidationError{Field: "seats", Reason: "must be at least 1"}
	}
	return s.repo.UpdateLicense(ctx, req)
}

func (s *licenseService) DeleteLicense(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return models.ValidationError{Field: "id", Reason: "is required"}
	}
	return s.repo.DeleteLicense(ctx, id)
}

func (s *licenseService) ListLicenses(ctx context.Context) ([]models.License, error) {
	return s.repo.ListLicenses(ctx)
}
