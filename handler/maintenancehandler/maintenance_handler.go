package maintenancehandler

import (
	"context"
	"net/http"

	"assetdesk/models"
	"assetdesk/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=maintenance_handler.go -destination=mock_worklog_service.go -package=maintenancehandler

type WorklogService interface {
	AppendWorklog(ctx context.Context, req models.AppendWorklogReq) (models.WorklogEntry, error)
	ListWorklogs(ctx context.Context, assetID uuid.UUID) ([]models.WorklogEntry, error)
	ListWorklogsByTag(ctx context.Context, tag string) ([]models.WorklogEntry, error)
	ListDefectiveAssets(ctx context.Context) ([]models.DefectiveAssetRes, error)
}

type MaintenanceHandler struct {
	Service WorklogService
}

func NewMaintenanceHandler(service WorklogService) *MaintenanceHandler {
	return &MaintenanceHandler{Service: service}
}

func (h *MaintenanceHandler) AppendWorklog(w http.ResponseWriter, r *http.Request) {
	var req models.AppendWorklogReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid worklog input")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "assetId and comment are required")
		return
	}

	entry, err := h.Service.AppendWorklog(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to add worklog")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Worklog added successfully",
		"data":    entry,
	})
}

func (h *MaintenanceHandler) ListWorklogs(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("assetId")
	tag := r.URL.Query().Get("tag")

	var logs []models.WorklogEntry
	var err error
	switch {
	case rawID != "":
		assetID, parseErr := uuid.Parse(rawID)
		if parseErr != nil {
			utils.RespondError(w, http.StatusBadRequest, parseErr, "assetId must be a valid id")
			return
		}
		logs, err = h.Service.ListWorklogs(r.Context(), assetID)
	case tag != "":
		logs, err = h.Service.ListWorklogsByTag(r.Context(), tag)
	default:
		utils.RespondError(w, http.StatusBadRequest, models.ValidationError{Field: "assetId", Reason: "is required"}, "assetId is required")
		return
	}

	if err != nil {
		utils.RespondDomainError(w, err, "failed to fetch worklogs")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": logs})
}

func (h *MaintenanceHandler) ListDefectiveAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.Service.ListDefectiveAssets(r.Context())
	if err != nil {
		utils.RespondDomainError(w, err, "failed to fetch defective assets")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": assets})
}
