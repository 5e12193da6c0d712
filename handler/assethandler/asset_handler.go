package assethandler

import (
	"context"
	"net/http"

	"assetdesk/models"
	"assetdesk/providers"
	"assetdesk/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=asset_handler.go -destination=mock_asset_service.go -package=assethandler

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

type AssetHandler struct {
	Service        AssetService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewAssetHandler(service AssetService, auth providers.AuthMiddlewareService) *AssetHandler {
	return &AssetHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

func (h *AssetHandler) NextAssetTag(w http.ResponseWriter, r *http.Request) {
	var req models.AllocateTagReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "asset type is required")
		return
	}

	tag, err := h.Service.AllocateTag(r.Context(), req.AssetType)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to generate asset tag")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"assetTag": tag})
}

func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset input")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	asset, err := h.Service.CreateAsset(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to create asset")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, asset)
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	asset, err := h.Service.GetAsset(r.Context(), tag)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to fetch asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.TransitionStatusReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid transition input")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	asset, err := h.Service.TransitionStatus(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to update asset status")
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	view := models.ViewInventory
	if raw := r.URL.Query().Get("view"); raw != "" {
		parsed, ok := models.ParseView(raw)
		if !ok {
			utils.RespondError(w, http.StatusBadRequest, models.ValidationError{Field: "view", Reason: "unknown view"}, "unknown view")
			return
		}
		view = parsed
	}

	assets, err := h.Service.ListAssetsByView(r.Context(), view)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to fetch assets")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": assets})
}

func (h *AssetHandler) ListSpareAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.Service.ListSpareAssets(r.Context())
	if err != nil {
		utils.RespondDomainError(w, err, "failed to fetch spare assets")
		return
	}
	utils.RespondJSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) AssignAsset(w http.ResponseWriter, r *http.Request) {
	userIDStr, _, err := h.AuthMiddleware.GetUserAndRolesFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	assignedBy, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}

	var req models.AssignAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid assignment input")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	res, err := h.Service.AssignAsset(r.Context(), req, assignedBy)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to assign asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, res)
}

func (h *AssetHandler) MarkForDisposal(w http.ResponseWriter, r *http.Request) {
	var req models.BulkDisposalReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid disposal input")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "no asset tags provided")
		return
	}

	count, err := h.Service.MarkForDisposal(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to update disposal status")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Assets marked for disposal",
		"modifiedCount": count,
	})
}

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset input")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	asset, err := h.Service.UpdateAsset(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to update asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) GetAssetTimeline(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		utils.RespondError(w, http.StatusBadRequest, models.ValidationError{Field: "tag", Reason: "is required"}, "tag is required")
		return
	}

	timeline, err := h.Service.GetAssetTimeline(r.Context(), tag)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to fetch asset timeline")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": timeline})
}
