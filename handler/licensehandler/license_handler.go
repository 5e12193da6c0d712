package licensehandler

import (
	"context"
	"net/http"

	"assetdesk/models"
	"assetdesk/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type LicenseService interface {
	CreateLicense(ctx context.Context, req models.CreateLicenseReq) (models.License, error)
	UpdateLicense(ctx context.Context, req models.UpdateLicenseReq) (models.License, error)
	DeleteLicense(ctx context.Context, id uuid.UUID) error
	ListLicenses(ctx context.Context) ([]models.License, error)
}

type LicenseHandler struct {
	Service LicenseService
}

func NewLicenseHandler(service LicenseService) *LicenseHandler {
	return &LicenseHandler{Service: service}
}

func (h *LicenseHandler) CreateLicense(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLicenseReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid license input")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	lic, err := h.Service.CreateLicense(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to create license")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, lic)
}

func (h *LicenseHandler) UpdateLicense(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateLicenseReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid license input")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	lic, err := h.Service.UpdateLicense(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to update license")
		return
	}
	utils.RespondJSON(w, http.StatusOK, lic)
}

func (h *LicenseHandler) DeleteLicense(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "id must be a valid license id")
		return
	}

	if err := h.Service.DeleteLicense(r.Context(), id); err != nil {
		utils.RespondDomainError(w, err, "failed to delete license")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "License deleted"})
}

func (h *LicenseHandler) ListLicenses(w http.ResponseWriter, r *http.Request) {
	licenses, err := h.Service.ListLicenses(r.Context())
	if err != nil {
		utils.RespondDomainError(w, err, "failed to fetch licenses")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": licenses})
}
