package asset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"assetdesk/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const assetColumns = `id, tag, asset_type, brand, model, serial_number, status,
		assigned_user, previous_user, department, position, location,
		processor, ram, storage_gb, purchase_date, remarks, created_at, updated_at`

type AssetRepository interface {
	CreateAsset(ctx context.Context, tx *sqlx.Tx, asset models.Asset) (models.Asset, error)
	GetAssetByTag(ctx context.Context, tag string) (models.Asset, error)
	GetAssetByID(ctx context.Context, id uuid.UUID) (models.Asset, error)
	MaxTagSequence(ctx context.Context, tx *sqlx.Tx, prefix string, year int) (int, error)
	NextTagSequence(ctx context.Context, tx *sqlx.Tx, prefix string, year, seed int) (int, error)
	UpdateAssetStatus(ctx context.Context, tx *sqlx.Tx, tag string, expected, target models.Status, fields models.TransitionFields) (models.Asset, error)
	ListAssetsByStatus(ctx context.Context, statuses []models.Status) ([]models.Asset, error)
	ListSpareAssets(ctx context.Context) ([]models.Asset, error)
	MarkForDisposal(ctx context.Context, tags []string) (int64, error)
	UpdateAssetFields(ctx context.Context, req models.UpdateAssetReq) (models.Asset, error)
	CreateAssignment(ctx context.Context, tx *sqlx.Tx, rec models.Assignment) (models.Assignment, error)
	GetAssetTimeline(ctx context.Context, assetID uuid.UUID) ([]models.AssetTimelineEvent, error)
}

type PostgresAssetRepository struct {
	DB *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) AssetRepository {
	return &PostgresAssetRepository{DB: db}
}

func (r *PostgresAssetRepository) CreateAsset(ctx context.Context, tx *sqlx.Tx, asset models.Asset) (models.Asset, error) {
	var created models.Asset
	err := tx.GetContext(ctx, &created, `
		INSERT INTO assets (
			tag, asset_type, brand, model, serial_number, status,
			assigned_user, previous_user, department, position, location,
			processor, ram, storage_gb, purchase_date, remarks
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+assetColumns,
		asset.Tag, asset.AssetType, asset.Brand, asset.Model, asset.SerialNumber, asset.Status,
		asset.CurrentUser, asset.PreviousUser, asset.Department, asset.Position, asset.Location,
		asset.Processor, asset.RAM, asset.StorageGB, asset.PurchaseDate, asset.Remarks)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.Asset{}, models.DuplicateTagError{Tag: asset.Tag}
		}
		return models.Asset{}, fmt.Errorf("failed to insert asset: %w", err)
	}
	return created, nil
}

func (r *PostgresAssetRepository) GetAssetByTag(ctx context.Context, tag string) (models.Asset, error) {
	var asset models.Asset
	err := r.DB.GetContext(ctx, &asset, `
		SELECT `+assetColumns+` FROM assets WHERE tag = $1`, tag)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Asset{}, models.NotFoundError{Resource: "asset", Key: tag}
		}
		return models.Asset{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return asset, nil
}

func (r *PostgresAssetRepository) GetAssetByID(ctx context.Context, id uuid.UUID) (models.Asset, error) {
	var asset models.Asset
	err := r.DB.GetContext(ctx, &asset, `
		SELECT `+assetColumns+` FROM assets WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Asset{}, models.NotFoundError{Resource: "asset", Key: id.String()}
		}
		return models.Asset{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return asset, nil
}

// MaxTagSequence scans existing tags of the form prefix-year-NNN and returns
// the highest trailing sequence number, 0 when there are none. Used only to
// seed the counter row for data that predates it.
func (r *PostgresAssetRepository) MaxTagSequence(ctx context.Context, tx *sqlx.Tx, prefix string, year int) (int, error) {
	pattern := fmt.Sprintf("^%s-%d-[0-9]+$", prefix, year)
	var max int
	err := tx.GetContext(ctx, &max, `
		SELECT COALESCE(MAX(split_part(tag, '-', 3)::int), 0)
		FROM assets
		WHERE tag ~ $1`, pattern)
	if err != nil {
		return 0, fmt.Errorf("failed to scan tag sequences: %w", err)
	}
	return max, nil
}

// NextTagSequence bumps the per-(prefix, year) counter in a single statement.
// The seed keeps the counter ahead of any tags that were created before the
// counter row existed.
func (r *PostgresAssetRepository) NextTagSequence(ctx context.Context, tx *sqlx.Tx, prefix string, year, seed int) (int, error) {
	var seq int
	err := tx.GetContext(ctx, &seq, `
		INSERT INTO asset_tag_counters (prefix, year, sequence)
		VALUES ($1, $2, $3 + 1)
		ON CONFLICT (prefix, year)
		DO UPDATE SET sequence = GREATEST(asset_tag_counters.sequence, $3) + 1
		RETURNING sequence`, prefix, year, seed)
	if err != nil {
		return 0, fmt.Errorf("failed to advance tag counter: %w", err)
	}
	return seq, nil
}

// UpdateAssetStatus applies the status change conditioned on the status the
// caller last read. Zero rows means a concurrent writer got there first.
// Empty dependent fields leave the stored values untouched.
func (r *PostgresAssetRepository) UpdateAssetStatus(ctx context.Context, tx *sqlx.Tx, tag string, expected, target models.Status, fields models.TransitionFields) (models.Asset, error) {
	var updated models.Asset
	err := tx.GetContext(ctx, &updated, `
		UPDATE assets SET
			status        = $1,
			assigned_user = COALESCE(NULLIF($2, ''), assigned_user),
			previous_user = COALESCE(NULLIF($3, ''), previous_user),
			department    = COALESCE(NULLIF($4, ''), department),
			position      = COALESCE(NULLIF($5, ''), position),
			remarks       = COALESCE(NULLIF($6, ''), remarks),
			updated_at    = now()
		WHERE tag = $7 AND status = $8
		RETURNING `+assetColumns,
		target, fields.NewUser, fields.OldUser, fields.Department, fields.Position, fields.Remarks,
		tag, expected)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Asset{}, models.ConflictError{Tag: tag, Reason: fmt.Sprintf("status changed from %q concurrently", expected)}
		}
		return models.Asset{}, fmt.Errorf("failed to update asset status: %w", err)
	}
	return updated, nil
}

func (r *PostgresAssetRepository) ListAssetsByStatus(ctx context.Context, statuses []models.Status) ([]models.Asset, error) {
	assets := []models.Asset{}
	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = s.String()
	}
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT `+assetColumns+`
		FROM assets
		WHERE status = ANY($1)
		ORDER BY tag ASC`, pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
	}
	return assets, nil
}

// ListSpareAssets returns assignment candidates, biggest storage first so the
// most desirable machines surface at the top of the picker.
func (r *PostgresAssetRepository) ListSpareAssets(ctx context.Context) ([]models.Asset, error) {
	assets := []models.Asset{}
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT `+assetColumns+`
		FROM assets
		WHERE status = $1
		ORDER BY storage_gb DESC, tag ASC`, models.StatusSpare)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spare assets: %w", err)
	}
	return assets, nil
}

func (r *PostgresAssetRepository) MarkForDisposal(ctx context.Context, tags []string) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE assets SET status = $1, updated_at = now()
		WHERE tag = ANY($2)`, models.StatusDispose, pq.Array(tags))
	if err != nil {
		return 0, fmt.Errorf("failed to mark assets for disposal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch rows affected: %w", err)
	}
	return affected, nil
}

func (r *PostgresAssetRepository) UpdateAssetFields(ctx context.Context, req models.UpdateAssetReq) (models.Asset, error) {
	updateFields := []string{}
	args := []interface{}{}
	argPos := 1

	add := func(column string, value interface{}) {
		updateFields = append(updateFields, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Brand != "" {
		add("brand", req.Brand)
	}
	if req.Model != "" {
		add("model", req.Model)
	}
	if req.SerialNumber != "" {
		add("serial_number", req.SerialNumber)
	}
	if req.Department != "" {
		add("department", req.Department)
	}
	if req.Position != "" {
		add("position", req.Position)
	}
	if req.Location != "" {
		add("location", req.Location)
	}
	if req.Processor != "" {
		add("processor", req.Processor)
	}
	if req.RAM != "" {
		add("ram", req.RAM)
	}
	if req.StorageGB != nil {
		add("storage_gb", *req.StorageGB)
	}
	if req.PurchaseDate != nil {
		add("purchase_date", *req.PurchaseDate)
	}
	if req.Remarks != "" {
		add("remarks", req.Remarks)
	}

	if len(updateFields) == 0 {
		return r.GetAssetByTag(ctx, req.Tag)
	}

	updateFields = append(updateFields, "updated_at = now()")
	query := fmt.Sprintf(`UPDATE assets SET %s WHERE tag = $%d RETURNING %s`,
		strings.Join(updateFields, ", "), argPos, assetColumns)
	args = append(args, req.Tag)

	var updated models.Asset
	err := r.DB.GetContext(ctx, &updated, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Asset{}, models.NotFoundError{Resource: "asset", Key: req.Tag}
		}
		return models.Asset{}, fmt.Errorf("failed to update asset: %w", err)
	}
	return updated, nil
}

func (r *PostgresAssetRepository) CreateAssignment(ctx context.Context, tx *sqlx.Tx, rec models.Assignment) (models.Assignment, error) {
	var created models.Assignment
	err := tx.GetContext(ctx, &created, `
		INSERT INTO asset_assignments (
			asset_id, tag, asset_type, brand, model, serial_number,
			new_user, old_user, department, position, remarks, assigned_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, asset_id, tag, asset_type, brand, model, serial_number,
			new_user, old_user, department, position, remarks, assigned_by, created_at`,
		rec.AssetID, rec.Tag, rec.AssetType, rec.Brand, rec.Model, rec.SerialNumber,
		rec.NewUser, rec.OldUser, rec.Department, rec.Position, rec.Remarks, rec.AssignedBy)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("failed to insert assignment: %w", err)
	}
	return created, nil
}

func (r *PostgresAssetRepository) GetAssetTimeline(ctx context.Context, assetID uuid.UUID) ([]models.AssetTimelineEvent, error) {
	timeline := []models.AssetTimelineEvent{}

	query := `
		SELECT
			'assigned' AS event_type,
			created_at AS occurred_at,
			'Assigned to ' || new_user AS details,
			asset_id
		FROM asset_assignments
		WHERE asset_id = $1

		UNION ALL

		SELECT
			'maintenance' AS event_type,
			created_at AS occurred_at,
			comment AS details,
			asset_id
		FROM maintenance_worklogs
		WHERE asset_id = $1

		ORDER BY occurred_at ASC
	`

	err := r.DB.SelectContext(ctx, &timeline, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset timeline: %w", err)
	}
	return timeline, nil
}
