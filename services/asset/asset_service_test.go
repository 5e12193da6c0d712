package assetservice

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"assetdesk/models"
	repo "assetdesk/repository/asset"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pqUniqueViolation = pq.Error{Code: "23505", Constraint: "assets_tag_key"}

// fixedNow pins the clock so allocated tags and age checks do not depend on
// when the suite runs.
var fixedNow = time.Date(2025, time.September, 15, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (AssetService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	svc := &assetService{
		repo: repo.NewAssetRepository(sqlxDB),
		db:   sqlxDB,
		now:  func() time.Time { return fixedNow },
	}
	return svc, mock
}

func assetRows(assets ...models.Asset) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "tag", "asset_type", "brand", "model", "serial_number", "status",
		"assigned_user", "previous_user", "department", "position", "location",
		"processor", "ram", "storage_gb", "purchase_date", "remarks", "created_at", "updated_at",
	})
	for _, a := range assets {
		rows.AddRow(a.ID, a.Tag, a.AssetType, a.Brand, a.Model, a.SerialNumber, a.Status,
			a.CurrentUser, a.PreviousUser, a.Department, a.Position, a.Location,
			a.Processor, a.RAM, a.StorageGB, a.PurchaseDate, a.Remarks, a.CreatedAt, a.UpdatedAt)
	}
	return rows
}

func expectAllocation(mock sqlmock.Sqlmock, prefix string, seed, next int) {
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(split_part`).
		WithArgs(`^` + prefix + `-2025-[0-9]+$`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(seed))
	mock.ExpectQuery(`INSERT INTO asset_tag_counters`).
		WithArgs(prefix, 2025, seed).
		WillReturnRows(sqlmock.NewRows([]string{"sequence"}).AddRow(next))
}

func TestAllocateTag(t *testing.T) {
	ctx := context.Background()

	t.Run("first laptop tag of the year", func(t *testing.T) {
		svc, mock := newTestService(t)

		mock.ExpectBegin()
		expectAllocation(mock, "LAP", 0, 1)
		mock.ExpectCommit()

		tag, err := svc.AllocateTag(ctx, "laptop")
		assert.NoError(t, err)
		assert.Equal(t, "LAP-2025-001", tag)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sequence continues past existing tags", func(t *testing.T) {
		svc, mock := newTestService(t)

		mock.ExpectBegin()
		expectAllocation(mock, "LAP", 1, 2)
		mock.ExpectCommit()

		tag, err := svc.AllocateTag(ctx, "laptop")
		assert.NoError(t, err)
		assert.Equal(t, "LAP-2025-002", tag)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("monitor gets its own series", func(t *testing.T) {
		svc, mock := newTestService(t)

		mock.ExpectBegin()
		expectAllocation(mock, "MON", 0, 1)
		mock.ExpectCommit()

		tag, err := svc.AllocateTag(ctx, "monitor")
		assert.NoError(t, err)
		assert.Equal(t, "MON-2025-001", tag)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("blank asset type rejected", func(t *testing.T) {
		svc, mock := newTestService(t)

		_, err := svc.AllocateTag(ctx, "  ")
		assert.True(t, models.IsValidation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("counter failure rolls back", func(t *testing.T) {
		svc, mock := newTestService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COALESCE\(MAX\(split_part`).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		_, err := svc.AllocateTag(ctx, "laptop")
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("intake with generated tag", func(t *testing.T) {
		svc, mock := newTestService(t)

		stored := models.Asset{ID: uuid.New(), Tag: "LAP-2025-001", AssetType: "laptop", Status: models.StatusSpare}

		mock.ExpectBegin()
		expectAllocation(mock, "LAP", 0, 1)
		mock.ExpectQuery(`INSERT INTO assets`).
			WillReturnRows(assetRows(stored))
		mock.ExpectCommit()

		created, err := svc.CreateAsset(ctx, models.CreateAssetReq{AssetType: "laptop"})
		assert.NoError(t, err)
		assert.Equal(t, "LAP-2025-001", created.Tag)
		assert.Equal(t, models.StatusSpare, created.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("generated tag collision is re-allocated", func(t *testing.T) {
		svc, mock := newTestService(t)

		stored := models.Asset{ID: uuid.New(), Tag: "LAP-2025-002", AssetType: "laptop", Status: models.StatusSpare}

		mock.ExpectBegin()
		expectAllocation(mock, "LAP", 0, 1)
		mock.ExpectQuery(`INSERT INTO assets`).
			WillReturnError(&pqUniqueViolation)
		mock.ExpectRollback()

		mock.ExpectBegin()
		expectAllocation(mock, "LAP", 1, 2)
		mock.ExpectQuery(`INSERT INTO assets`).
			WillReturnRows(assetRows(stored))
		mock.ExpectCommit()

		created, err := svc.CreateAsset(ctx, models.CreateAssetReq{AssetType: "laptop"})
		assert.NoError(t, err)
		assert.Equal(t, "LAP-2025-002", created.Tag)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("caller supplied duplicate tag is a hard error", func(t *testing.T) {
		svc, mock := newTestService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO assets`).
			WillReturnError(&pqUniqueViolation)
		mock.ExpectRollback()

		_, err := svc.CreateAsset(ctx, models.CreateAssetReq{AssetType: "laptop", Tag: "LAP-2025-001"})
		assert.True(t, models.IsDuplicateTag(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("old purchase date forces dispose", func(t *testing.T) {
		svc, mock := newTestService(t)

		purchase := time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)
		stored := models.Asset{ID: uuid.New(), Tag: "LAP-2025-001", AssetType: "laptop", Status: models.StatusDispose, PurchaseDate: &purchase}

		mock.ExpectBegin()
		expectAllocation(mock, "LAP", 0, 1)
		mock.ExpectQuery(`INSERT INTO assets`).
			WillReturnRows(assetRows(stored))
		mock.ExpectCommit()

		created, err := svc.CreateAsset(ctx, models.CreateAssetReq{
			AssetType:    "laptop",
			Status:       "spare",
			PurchaseDate: &purchase,
		})
		assert.NoError(t, err)
		assert.Equal(t, models.StatusDispose, created.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("purchase one day under five years keeps requested status", func(t *testing.T) {
		svc, mock := newTestService(t)

		purchase := fixedNow.AddDate(-5, 0, 1)
		stored := models.Asset{ID: uuid.New(), Tag: "LAP-2025-001", AssetType: "laptop", Status: models.StatusSpare, PurchaseDate: &purchase}

		mock.ExpectBegin()
		expectAllocation(mock, "LAP", 0, 1)
		mock.ExpectQuery(`INSERT INTO assets`).
			WillReturnRows(assetRows(stored))
		mock.ExpectCommit()

		created, err := svc.CreateAsset(ctx, models.CreateAssetReq{
			AssetType:    "laptop",
			Status:       "spare",
			PurchaseDate: &purchase,
		})
		assert.NoError(t, err)
		assert.Equal(t, models.StatusSpare, created.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown asset type rejected before any write", func(t *testing.T) {
		svc, mock := newTestService(t)

		_, err := svc.CreateAsset(ctx, models.CreateAssetReq{AssetType: "toaster"})
		assert.True(t, models.IsValidation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransitionStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("illegal workflow target rejected without touching the store", func(t *testing.T) {
		svc, mock := newTestService(t)

		_, err := svc.TransitionStatus(ctx, models.TransitionStatusReq{
			Tag:      "LAP-2025-001",
			Status:   "spare",
			Workflow: "disposal",
		})
		assert.True(t, models.IsInvalidTransition(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maintenance flags defective", func(t *testing.T) {
		svc, mock := newTestService(t)

		current := models.Asset{ID: uuid.New(), Tag: "LAP-2025-001", Status: models.StatusDeployed}
		updated := current
		updated.Status = models.StatusDefective

		mock.ExpectQuery(`SELECT (.+) FROM assets WHERE tag = \$1`).
			WithArgs("LAP-2025-001").
			WillReturnRows(assetRows(current))
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE assets SET`).
			WithArgs(models.StatusDefective, "", "", "", "", "", "LAP-2025-001", models.StatusDeployed).
			WillReturnRows(assetRows(updated))
		mock.ExpectCommit()

		got, err := svc.TransitionStatus(ctx, models.TransitionStatusReq{
			Tag:      "LAP-2025-001",
			Status:   "defective",
			Workflow: "maintenance",
		})
		assert.NoError(t, err)
		assert.Equal(t, models.StatusDefective, got.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("assignment derives previous user from current holder", func(t *testing.T) {
		svc, mock := newTestService(t)

		current := models.Asset{ID: uuid.New(), Tag: "LAP-2025-001", Status: models.StatusDeployed, CurrentUser: "alex"}
		updated := current
		updated.CurrentUser = "sam"
		updated.PreviousUser = "alex"
		updated.Status = models.StatusLend

		mock.ExpectQuery(`SELECT (.+) FROM assets WHERE tag = \$1`).
			WithArgs("LAP-2025-001").
			WillReturnRows(assetRows(current))
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE assets SET`).
			WithArgs(models.StatusLend, "sam", "alex", "", "", "", "LAP-2025-001", models.StatusDeployed).
			WillReturnRows(assetRows(updated))
		mock.ExpectCommit()

		got, err := svc.TransitionStatus(ctx, models.TransitionStatusReq{
			Tag:      "LAP-2025-001",
			Status:   "lend",
			Workflow: "assignment",
			Fields:   models.TransitionFields{NewUser: "sam"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "alex", got.PreviousUser)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("assignment without new user rejected", func(t *testing.T) {
		svc, mock := newTestService(t)

		current := models.Asset{ID: uuid.New(), Tag: "LAP-2025-001", Status: models.StatusSpare}
		mock.ExpectQuery(`SELECT (.+) FROM assets WHERE tag = \$1`).
			WithArgs("LAP-2025-001").
			WillReturnRows(assetRows(current))

		_, err := svc.TransitionStatus(ctx, models.TransitionStatusReq{
			Tag:      "LAP-2025-001",
			Status:   "deployed",
			Workflow: "assignment",
		})
		assert.True(t, models.IsValidation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent transition surfaces a conflict", func(t *testing.T) {
		svc, mock := newTestService(t)

		current := models.Asset{ID: uuid.New(), Tag: "LAP-2025-001", Status: models.StatusDeployed}
		mock.ExpectQuery(`SELECT (.+) FROM assets WHERE tag = \$1`).
			WithArgs("LAP-2025-001").
			WillReturnRows(assetRows(current))
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE assets SET`).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := svc.TransitionStatus(ctx, models.TransitionStatusReq{
			Tag:      "LAP-2025-001",
			Status:   "defective",
			Workflow: "maintenance",
		})
		assert.True(t, models.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListAssetsByView(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown view rejected", func(t *testing.T) {
		svc, mock := newTestService(t)

		_, err := svc.ListAssetsByView(ctx, models.View("dashboard"))
		assert.True(t, models.IsValidation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("assigned view queries deployed and lend", func(t *testing.T) {
		svc, mock := newTestService(t)

		a := models.Asset{ID: uuid.New(), Tag: "LAP-2025-001", Status: models.StatusDeployed}
		mock.ExpectQuery(`WHERE status = ANY\(\$1\)`).
			WillReturnRows(assetRows(a))

		got, err := svc.ListAssetsByView(ctx, models.ViewAssigned)
		assert.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, models.StatusDeployed, got[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAssignAsset(t *testing.T) {
	ctx := context.Background()
	assignedBy := uuid.New()

	req := models.AssignAssetReq{
		Tag:        "LAP-2025-001",
		NewUser:    "sam",
		Department: "engineering",
		Position:   "developer",
	}

	assignmentRows := func(rec models.Assignment) *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "asset_id", "tag", "asset_type", "brand", "model", "serial_number",
			"new_user", "old_user", "department", "position", "remarks", "assigned_by", "created_at",
		}).AddRow(rec.ID, rec.AssetID, rec.Tag, rec.AssetType, rec.Brand, rec.Model, rec.SerialNumber,
			rec.NewUser, rec.OldUser, rec.Department, rec.Position, rec.Remarks, rec.AssignedBy, rec.CreatedAt)
	}

	t.Run("assignment record and status flip commit together", func(t *testing.T) {
		svc, mock := newTestService(t)

		spare := models.Asset{ID: uuid.New(), Tag: "LAP-2025-001", AssetType: "laptop", Status: models.StatusSpare, CurrentUser: "alex"}
		deployed := spare
		deployed.Status = models.StatusDeployed
		deployed.CurrentUser = "sam"
		deployed.PreviousUser = "alex"

		rec := models.Assignment{
			ID: uuid.New(), AssetID: spare.ID, Tag: spare.Tag, AssetType: "laptop",
			NewUser: "sam", OldUser: "alex", Department: "engineering", Position: "developer",
			AssignedBy: assignedBy, CreatedAt: time.Now(),
		}

		mock.ExpectQuery(`SELECT (.+) FROM assets WHERE tag = \$1`).
			WithArgs("LAP-2025-001").
			WillReturnRows(assetRows(spare))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO asset_assignments`).
			WillReturnRows(assignmentRows(rec))
		mock.ExpectQuery(`UPDATE assets SET`).
			WithArgs(models.StatusDeployed, "sam", "alex", "engineering", "developer", "", "LAP-2025-001", models.StatusSpare).
			WillReturnRows(assetRows(deployed))
		mock.ExpectCommit()

		res, err := svc.AssignAsset(ctx, req, assignedBy)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusDeployed, res.Asset.Status)
		assert.Equal(t, "sam", res.Assignment.NewUser)
		assert.Equal(t, "alex", res.Assignment.OldUser)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("losing the spare race rolls the assignment back", func(t *testing.T) {
		svc, mock := newTestService(t)

		spare := models.Asset{ID: uuid.New(), Tag: "LAP-2025-001", AssetType: "laptop", Status: models.StatusSpare}
		rec := models.Assignment{ID: uuid.New(), AssetID: spare.ID, Tag: spare.Tag, NewUser: "sam", AssignedBy: assignedBy}

		mock.ExpectQuery(`SELECT (.+) FROM assets WHERE tag = \$1`).
			WithArgs("LAP-2025-001").
			WillReturnRows(assetRows(spare))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO asset_assignments`).
			WillReturnRows(assignmentRows(rec))
		mock.ExpectQuery(`UPDATE assets SET`).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := svc.AssignAsset(ctx, req, assignedBy)
		assert.True(t, models.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non spare asset rejected before the transaction", func(t *testing.T) {
		svc, mock := newTestService(t)

		deployed := models.Asset{ID: uuid.New(), Tag: "LAP-2025-001", Status: models.StatusDeployed}
		mock.ExpectQuery(`SELECT (.+) FROM assets WHERE tag = \$1`).
			WithArgs("LAP-2025-001").
			WillReturnRows(assetRows(deployed))

		_, err := svc.AssignAsset(ctx, req, assignedBy)
		assert.True(t, models.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		svc, mock := newTestService(t)

		_, err := svc.AssignAsset(ctx, models.AssignAssetReq{Tag: "LAP-2025-001"}, assignedBy)
		assert.True(t, models.IsValidation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkForDisposal(t *testing.T) {
	ctx := context.Background()

	t.Run("empty batch rejected", func(t *testing.T) {
		svc, mock := newTestService(t)

		_, err := svc.MarkForDisposal(ctx, models.BulkDisposalReq{})
		assert.True(t, models.IsValidation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports rows actually updated", func(t *testing.T) {
		svc, mock := newTestService(t)

		mock.ExpectExec(`UPDATE assets SET status = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 2))

		affected, err := svc.MarkForDisposal(ctx, models.BulkDisposalReq{Tags: []string{"LAP-2025-001", "LAP-2025-002", "LAP-2025-404"}})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateAssetValidation(t *testing.T) {
	ctx := context.Background()
	svc, mock := newTestService(t)

	future := fixedNow.AddDate(0, 0, 1)
	_, err := svc.UpdateAsset(ctx, models.UpdateAssetReq{Tag: "LAP-2025-001", PurchaseDate: &future})
	assert.True(t, models.IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagPrefix(t *testing.T) {
	tests := []struct {
		assetType string
		prefix    string
	}{
		{"laptop", "LAP"},
		{"Laptop", "LAP"},
		{"monitor", "MON"},
		{"desktop", "DES"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.prefix, tagPrefix(tc.assetType))
	}
}
