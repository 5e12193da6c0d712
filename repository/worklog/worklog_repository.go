package worklog

import (
	"context"
	"fmt"

	"assetdesk/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const worklogColumns = `id, asset_id, comment, status, technician, created_at`

type WorklogRepository interface {
	AppendWorklog(ctx context.Context, entry models.WorklogEntry) (models.WorklogEntry, error)
	ListWorklogsByAsset(ctx context.Context, assetID uuid.UUID) ([]models.WorklogEntry, error)
	ListDefectiveAssetsWithWorklogs(ctx context.Context) ([]models.DefectiveAssetRes, error)
}

type PostgresWorklogRepository struct {
	DB *sqlx.DB
}

func NewWorklogRepository(db *sqlx.DB) WorklogRepository {
	return &PostgresWorklogRepository{DB: db}
}

func (r *PostgresWorklogRepository) AppendWorklog(ctx context.Context, entry models.WorklogEntry) (models.WorklogEntry, error) {
	var created models.WorklogEntry
	err := r.DB.GetContext(ctx, &created, `
		INSERT INTO maintenance_worklogs (asset_id, comment, status, technician)
		VALUES ($1, $2, $3, $4)
		RETURNING `+worklogColumns,
		entry.AssetID, entry.Comment, entry.Status, entry.Technician)
	if err != nil {
		return models.WorklogEntry{}, fmt.Errorf("failed to insert worklog: %w", err)
	}
	return created, nil
}

// ListWorklogsByAsset returns entries newest first. Display order is fixed
// here so every caller shows the same history.
func (r *PostgresWorklogRepository) ListWorklogsByAsset(ctx context.Context, assetID uuid.UUID) ([]models.WorklogEntry, error) {
	logs := []models.WorklogEntry{}
	err := r.DB.SelectContext(ctx, &logs, `
		SELECT `+worklogColumns+`
		FROM maintenance_worklogs
		WHERE asset_id = $1
		ORDER BY created_at DESC`, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch worklogs: %w", err)
	}
	return logs, nil
}

func (r *PostgresWorklogRepository) ListDefectiveAssetsWithWorklogs(ctx context.Context) ([]models.DefectiveAssetRes, error) {
	assets := []models.Asset{}
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT id, tag, asset_type, brand, model, serial_number, status,
			assigned_user, previous_user, department, position, location,
			processor, ram, storage_gb, purchase_date, remarks, created_at, updated_at
		FROM assets
		WHERE status = $1
		ORDER BY tag ASC`, models.StatusDefective)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch defective assets: %w", err)
	}

	result := make([]models.DefectiveAssetRes, 0, len(assets))
	for _, asset := range assets {
		logs, err := r.ListWorklogsByAsset(ctx, asset.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch worklogs for asset %s: %w", asset.Tag, err)
		}
		result = append(result, models.DefectiveAssetRes{Asset: asset, Worklogs: logs})
	}
	return result, nil
}
