package license

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"assetdesk/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const licenseColumns = `id, software, license_key, seats, assigned_to, expiry_date, remarks, created_at, updated_at`

type LicenseRepository interface {
	CreateLicense(ctx context.Context, req models.CreateLicenseReq) (models.License, error)
	UpdateLicense(ctx context.Context, req models.UpdateLicenseReq) (models.License, error)
	DeleteLicense(ctx context.Context, id uuid.UUID) error
	ListLicenses(ctx context.Context) ([]models.License, error)
}

type PostgresLicenseRepository struct {
	DB *sqlx.DB
}

func NewLicenseRepository(db *sqlx.DB) LicenseRepository {
	return &PostgresLicenseRepository{DB: db}
}

func (r *PostgresLicenseRepository) CreateLicense(ctx context.Context, req models.CreateLicenseReq) (models.License, error) {
	var created models.License
	err := r.DB.GetContext(ctx, &created, `
		INSERT INTO licenses (software, license_key, seats, assigned_to, expiry_date, remarks)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+licenseColumns,
		req.Software, req.LicenseKey, req.Seats, req.AssignedTo, req.ExpiryDate, req.Remarks)
	if err != nil {
		return models.License{}, fmt.Errorf("failed to insert license: %w", err)
	}
	return created, nil
}

func (r *PostgresLicenseRepository) UpdateLicense(ctx context.Context, req models.UpdateLicenseReq) (models.License, error) {
	updateFields := []string{}
	args := []interface{}{}
	argPos := 1

	add := func(column string, value interface{}) {
		updateFields = append(updateFields, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Software != "" {
		add("software", req.Software)
	}
	if req.LicenseKey != "" {
		add("license_key", req.LicenseKey)
	}
	if req.Seats != nil {
		add("seats", *req.Seats)
	}
	if req.AssignedTo != "" {
		add("assigned_to", req.AssignedTo)
	}
	if req.ExpiryDate != nil {
		add("expiry_date", *req.ExpiryDate)
	}
	if req.Remarks != "" {
		add("remarks", req.Remarks)
	}

	if len(updateFields) == 0 {
		return r.getByID(ctx, req.ID)
	}

	updateFields = append(updateFields, "updated_at = now()")
	query := fmt.Sprintf(`UPDATE licenses SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(updateFields, ", "), argPos, licenseColumns)
	args = append(args, req.ID)

	var updated models.License
	err := r.DB.GetContext(ctx, &updated, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.License{}, models.NotFoundError{Resource: "license", Key: req.ID.String()}
		}
		return models.License{}, fmt.Errorf("failed to update license: %w", err)
	}
	return updated, nil
}

func (r *PostgresLicenseRepository) getByID(ctx context.Context, id uuid.UUID) (models.License, error) {
	var lic models.License
	err := r.DB.GetContext(ctx, &lic, `SELECT `+licenseColumns+` FROM licenses WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.License{}, models.NotFoundError{Resource: "license", Key: id.String()}
		}
		return models.License{}, fmt.Errorf("failed to fetch license: %w", err)
	}
	return lic, nil
}

func (r *PostgresLicenseRepository) DeleteLicense(ctx context.Context, id uuid.UUID) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM licenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete license: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to fetch rows affected: %w", err)
	}
	if affected == 0 {
		return models.NotFoundError{Resource: "license", Key: id.String()}
	}
	return nil
}

func (r *PostgresLicenseRepository) ListLicenses(ctx context.Context) ([]models.License, error) {
	licenses := []models.License{}
	err := r.DB.SelectContext(ctx, &licenses, `
		SELECT `+licenseColumns+` FROM licenses ORDER BY software ASC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch licenses: %w", err)
	}
	return licenses, nil
}
