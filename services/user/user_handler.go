package userservice

import (
	"net/http"

	"assetdesk/providers"
	"assetdesk/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type UserHandler struct {
	Service        UserService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewUserHandler(service UserService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *UserHandler {
	return &UserHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid registration input")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	userID, err := h.Service.Register(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to register user")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"userId": userID.String()})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid login input")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	res, err := h.Service.Login(r.Context(), req)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "invalid credentials")
		return
	}
	utils.RespondJSON(w, http.StatusOK, res)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userIDStr, _, err := h.AuthMiddleware.GetUserAndRolesFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("malformed user id"), "unauthorized user")
		return
	}

	profile, err := h.Service.GetProfile(r.Context(), userID)
	if err != nil {
		utils.RespondDomainError(w, err, "failed to fetch profile")
		return
	}
	utils.RespondJSON(w, http.StatusOK, profile)
}
