package worklogservice

import (
	"context"
	"strings"

	"assetdesk/models"
	assetrepo "assetdesk/repository/asset"
	worklogrepo "assetdesk/repository/worklog"

	"github.com/google/uuid"
)

type WorklogService interface {
	AppendWorklog(ctx context.Context, req models.AppendWorklogReq) (models.WorklogEntry, error)
	ListWorklogs(ctx context.Context, assetID uuid.UUID) ([]models.WorklogEntry, error)
	ListWorklogsByTag(ctx context.Context, tag string) ([]models.WorklogEntry, error)
	ListDefectiveAssets(ctx context.Context) ([]models.DefectiveAssetRes, error)
}

type worklogService struct {
	repo   worklogrepo.WorklogRepository
	assets assetrepo.AssetRepository
}

func NewWorklogService(repo worklogrepo.WorklogRepository, assets assetrepo.AssetRepository) WorklogService {
	return &worklogService{repo: repo, assets: assets}
}

// AppendWorklog adds a maintenance note. Entries are append-only; there is no
// edit or delete path on purpose.
func (s *worklogService) AppendWorklog(ctx context.Context, req models.AppendWorklogReq) (models.WorklogEntry, error) {
	if strings.TrimSpace(req.Comment) == "" {
		return models.WorklogEntry{}, models.ValidationError{Field: "comment", Reason: "is required"}
	}
	assetID, err := uuid.Parse(req.AssetID)
	if err != nil {
		return models.WorklogEntry{}, models.ValidationError{Field: "assetId", Reason: "must be a valid id"}
	}

	var status models.WorklogStatus
	if req.Status != "" {
		status = models.WorklogStatus(req.Status)
		if !status.IsValid() {
			return models.WorklogEntry{}, models.ValidationError{Field: "status", Reason: "unknown worklog status"}
		}
	}

	// the entry must reference a real asset
	if _, err := s.assets.GetAssetByID(ctx, assetID); err != nil {
		return models.WorklogEntry{}, err
	}

	return s.repo.AppendWorklog(ctx, models.WorklogEntry{
		AssetID:    assetID,
		Comment:    req.Comment,
		Status:     status,
		Technician: req.Technician,
	})
}

func (s *worklogService) ListWorklogs(ctx context.Context, assetID uuid.UUID) ([]models.WorklogEntry, error) {
	return s.repo.ListWorklogsByAsset(ctx, assetID)
}

func (s *worklogService) ListWorklogsByTag(ctx context.Context, tag string) ([]models.WorklogEntry, error) {
	asset, err := s.assets.GetAssetByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	return s.repo.ListWorklogsByAsset(ctx, asset.ID)
}

func (s *worklogService) ListDefectiveAssets(ctx context.Context) ([]models.DefectiveAssetRes, error) {
	return s.repo.ListDefectiveAssetsWithWorklogs(ctx)
}
