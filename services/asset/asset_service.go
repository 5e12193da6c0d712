package assetservice

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"assetdesk/models"
	repo "assetdesk/repository/asset"
	"assetdesk/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// createRetries bounds how often CreateAsset re-allocates after losing a tag
// race. The counter makes collisions rare; this only covers tags supplied by
// the caller racing an allocation.
const createRetries = 3

type AssetService interface {
	AllocateTag(ctx context.Context, assetType string) (string, error)
	CreateAsset(ctx context.Context, req models.CreateAssetReq) (models.Asset, error)
	GetAsset(ctx context.Context, tag string) (models.Asset, error)
	TransitionStatus(ctx context.Context, req models.TransitionStatusReq) (models.Asset, error)
	ListAssetsByView(ctx context.Context, view models.View) ([]models.Asset, error)
	ListSpareAssets(ctx context.Context) ([]models.Asset, error)
	AssignAsset(ctx context.Context, req models.AssignAssetReq, assignedBy uuid.UUID) (models.AssignAssetRes, error)
	MarkForDisposal(ctx context.Context, req models.BulkDisposalReq) (int64, error)
	UpdateAsset(ctx context.Context, req models.UpdateAssetReq) (models.Asset, error)
	GetAssetTimeline(ctx context.Context, tag string) ([]models.AssetTimelineEvent, error)
}

type assetService struct {
	repo repo.AssetRepository
	db   *sqlx.DB
	now  func() time.Time
}

func NewAssetService(r repo.AssetRepository, db *sqlx.DB) AssetService {
	return &assetService{repo: r, db: db, now: time.Now}
}

// tagPrefix derives the three-letter tag prefix from an asset type, e.g.
// "Laptop" -> "LAP".
func tagPrefix(assetType string) string {
	letters := []rune{}
	for _, r := range assetType {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
		if len(letters) == 3 {
			break
		}
	}
	return string(letters)
}

func formatTag(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

// AllocateTag hands out the next tag for an asset type. The per-(prefix,
// year) counter row is advanced atomically, so two concurrent calls can never
// observe the same sequence; the scan only seeds the counter for tags that
// predate it.
func (s *assetService) AllocateTag(ctx context.Context, assetType string) (tag string, err error) {
	if strings.TrimSpace(assetType) == "" {
		return "", models.ValidationError{Field: "assetType", Reason: "is required"}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	tag, err = s.allocateTagTx(ctx, tx, assetType)
	return tag, err
}

func (s *assetService) allocateTagTx(ctx context.Context, tx *sqlx.Tx, assetType string) (string, error) {
	prefix := tagPrefix(assetType)
	year := s.now().Year()

	seed, err := s.repo.MaxTagSequence(ctx, tx, prefix, year)
	if err != nil {
		return "", fmt.Errorf("failed to seed tag counter: %w", err)
	}
	seq, err := s.repo.NextTagSequence(ctx, tx, prefix, year, seed)
	if err != nil {
		return "", fmt.Errorf("failed to allocate tag: %w", err)
	}
	return formatTag(prefix, year, seq), nil
}

// CreateAsset performs intake. A purchase date five or more calendar years
// old overrides whatever status was requested and forces dispose; the rule
// fires only here, existing assets are never re-evaluated.
func (s *assetService) CreateAsset(ctx context.Context, req models.CreateAssetReq) (models.Asset, error) {
	if err := utils.AssetValidityCheck(req); err != nil {
		return models.Asset{}, err
	}

	status := models.StatusSpare
	if req.Status != "" {
		parsed, ok := models.ParseStatus(req.Status)
		if !ok {
			return models.Asset{}, models.ValidationError{Field: "status", Reason: "unknown status"}
		}
		if !models.WorkflowIntake.CanTransitionTo(parsed) {
			return models.Asset{}, models.InvalidTransitionError{Workflow: models.WorkflowIntake, Target: parsed}
		}
		status = parsed
	}

	if req.PurchaseDate != nil && models.ForcesDisposal(*req.PurchaseDate, s.now()) {
		zap.L().Info("asset past disposal age, forcing dispose",
			zap.String("asset_type", req.AssetType),
			zap.Time("purchase_date", *req.PurchaseDate))
		status = models.StatusDispose
	}

	allocate := req.Tag == ""
	var created models.Asset
	var err error
	for attempt := 0; attempt < createRetries; attempt++ {
		created, err = s.createAssetOnce(ctx, req, status, allocate)
		if err == nil {
			return created, nil
		}
		// a caller-supplied tag that collides is a hard error; only
		// re-allocate generated tags
		if !allocate || !models.IsDuplicateTag(err) {
			return models.Asset{}, err
		}
		zap.L().Warn("tag collision during intake, re-allocating", zap.Error(err))
	}
	return models.Asset{}, err
}

func (s *assetService) createAssetOnce(ctx context.Context, req models.CreateAssetReq, status models.Status, allocate bool) (created models.Asset, err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Asset{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	tag := req.Tag
	if allocate {
		tag, err = s.allocateTagTx(ctx, tx, req.AssetType)
		if err != nil {
			return models.Asset{}, err
		}
	}

	created, err = s.repo.CreateAsset(ctx, tx, models.Asset{
		Tag:          tag,
		AssetType:    req.AssetType,
		Brand:        req.Brand,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Status:       status,
		CurrentUser:  req.CurrentUser,
		PreviousUser: req.PreviousUser,
		Department:   req.Department,
		Position:     req.Position,
		Location:     req.Location,
		Processor:    req.Processor,
		RAM:          req.RAM,
		StorageGB:    req.StorageGB,
		PurchaseDate: req.PurchaseDate,
		Remarks:      req.Remarks,
	})
	return created, err
}

func (s *assetService) GetAsset(ctx context.Context, tag string) (models.Asset, error) {
	if strings.TrimSpace(tag) == "" {
		return models.Asset{}, models.ValidationError{Field: "assetTag", Reason: "is required"}
	}
	return s.repo.GetAssetByTag(ctx, tag)
}

// TransitionStatus validates the transition against the calling workflow and
// applies it with a compare-and-swap on the status the asset had when read.
// A concurrent transition on the same tag makes the slower caller lose with
// a ConflictError instead of silently overwriting.
func (s *assetService) TransitionStatus(ctx context.Context, req models.TransitionStatusReq) (updated models.Asset, err error) {
	if strings.TrimSpace(req.Tag) == "" {
		return models.Asset{}, models.ValidationError{Field: "assetTag", Reason: "is required"}
	}
	target, ok := models.ParseStatus(req.Status)
	if !ok {
		return models.Asset{}, models.ValidationError{Field: "status", Reason: "unknown status"}
	}
	workflow, ok := models.ParseWorkflow(req.Workflow)
	if !ok {
		return models.Asset{}, models.ValidationError{Field: "workflow", Reason: "unknown workflow"}
	}
	if !workflow.CanTransitionTo(target) {
		return models.Asset{}, models.InvalidTransitionError{Workflow: workflow, Target: target}
	}

	asset, err := s.repo.GetAssetByTag(ctx, req.Tag)
	if err != nil {
		return models.Asset{}, err
	}

	fields := req.Fields
	if workflow == models.WorkflowAssignment {
		if strings.TrimSpace(fields.NewUser) == "" {
			return models.Asset{}, models.ValidationError{Field: "newUser", Reason: "is required for assignment"}
		}
		if fields.OldUser == "" {
			fields.OldUser = asset.CurrentUser
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Asset{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	updated, err = s.repo.UpdateAssetStatus(ctx, tx, req.Tag, asset.Status, target, fields)
	return updated, err
}

func (s *assetService) ListAssetsByView(ctx context.Context, view models.View) ([]models.Asset, error) {
	if !view.IsValid() {
		return nil, models.ValidationError{Field: "view", Reason: "unknown view"}
	}
	return s.repo.ListAssetsByStatus(ctx, view.Statuses())
}

func (s *assetService) ListSpareAssets(ctx context.Context) ([]models.Asset, error) {
	return s.repo.ListSpareAssets(ctx)
}

// AssignAsset creates the assignment record and flips the asset to deployed
// inside one transaction: either both effects commit or neither does. Losing
// the spare-status race rolls the assignment record back too.
func (s *assetService) AssignAsset(ctx context.Context, req models.AssignAssetReq, assignedBy uuid.UUID) (res models.AssignAssetRes, err error) {
	if strings.TrimSpace(req.Tag) == "" {
		return models.AssignAssetRes{}, models.ValidationError{Field: "assetTag", Reason: "is required"}
	}
	if strings.TrimSpace(req.NewUser) == "" {
		return models.AssignAssetRes{}, models.ValidationError{Field: "newUser", Reason: "is required"}
	}
	if strings.TrimSpace(req.Department) == "" {
		return models.AssignAssetRes{}, models.ValidationError{Field: "department", Reason: "is required"}
	}
	if strings.TrimSpace(req.Position) == "" {
		return models.AssignAssetRes{}, models.ValidationError{Field: "position", Reason: "is required"}
	}

	asset, err := s.repo.GetAssetByTag(ctx, req.Tag)
	if err != nil {
		return models.AssignAssetRes{}, err
	}
	if asset.Status != models.StatusSpare {
		return models.AssignAssetRes{}, models.ConflictError{Tag: req.Tag, Reason: fmt.Sprintf("asset is %q, not spare", asset.Status)}
	}

	oldUser := req.OldUser
	if oldUser == "" {
		oldUser = asset.CurrentUser
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.AssignAssetRes{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	assignment, err := s.repo.CreateAssignment(ctx, tx, models.Assignment{
		AssetID:      asset.ID,
		Tag:          asset.Tag,
		AssetType:    asset.AssetType,
		Brand:        asset.Brand,
		Model:        asset.Model,
		SerialNumber: asset.SerialNumber,
		NewUser:      req.NewUser,
		OldUser:      oldUser,
		Department:   req.Department,
		Position:     req.Position,
		Remarks:      req.Remarks,
		AssignedBy:   assignedBy,
	})
	if err != nil {
		return models.AssignAssetRes{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	updated, err := s.repo.UpdateAssetStatus(ctx, tx, req.Tag, models.StatusSpare, models.StatusDeployed, models.TransitionFields{
		NewUser:    req.NewUser,
		OldUser:    oldUser,
		Department: req.Department,
		Position:   req.Position,
		Remarks:    req.Remarks,
	})
	if err != nil {
		return models.AssignAssetRes{}, err
	}

	return models.AssignAssetRes{Asset: updated, Assignment: assignment}, nil
}

func (s *assetService) MarkForDisposal(ctx context.Context, req models.BulkDisposalReq) (int64, error) {
	if len(req.Tags) == 0 {
		return 0, models.ValidationError{Field: "assetTags", Reason: "at least one tag is required"}
	}
	return s.repo.MarkForDisposal(ctx, req.Tags)
}

func (s *assetService) UpdateAsset(ctx context.Context, req models.UpdateAssetReq) (models.Asset, error) {
	if strings.TrimSpace(req.Tag) == "" {
		return models.Asset{}, models.ValidationError{Field: "assetTag", Reason: "is required"}
	}
	if req.PurchaseDate != nil && req.PurchaseDate.After(s.now()) {
		return models.Asset{}, models.ValidationError{Field: "purchaseDate", Reason: "cannot be in the future"}
	}
	return s.repo.UpdateAssetFields(ctx, req)
}

func (s *assetService) GetAssetTimeline(ctx context.Context, tag string) ([]models.AssetTimelineEvent, error) {
	asset, err := s.repo.GetAssetByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAssetTimeline(ctx, asset.ID)
}
