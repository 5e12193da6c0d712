package utils

import (
	"encoding/json"
	"net/http"

	"assetdesk/models"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		zap.L().Error(message, zap.Error(err))
	}
	details := ""
	if err != nil {
		details = err.Error()
	}
	RespondJSON(w, statusCode, errorResponse{Error: message, Details: details})
}

// RespondDomainError maps a typed domain error to its HTTP status. Anything
// unrecognized is treated as a store failure.
func RespondDomainError(w http.ResponseWriter, err error, message string) {
	switch {
	case models.IsValidation(err):
		RespondError(w, http.StatusBadRequest, err, message)
	case models.IsNotFound(err):
		RespondError(w, http.StatusNotFound, err, message)
	case models.IsInvalidTransition(err):
		RespondError(w, http.StatusUnprocessableEntity, err, message)
	case models.IsConflict(err), models.IsDuplicateTag(err):
		RespondError(w, http.StatusConflict, err, message)
	default:
		RespondError(w, http.StatusInternalServerError, err, message)
	}
}

// zap logger
var Logger *zap.Logger

func InitLogger() {
	var err error
	Logger, err = zap.NewDevelopment()
	if err != nil {
		panic("Failed to initialize zap logger: " + err.Error())
	}
	zap.ReplaceGlobals(Logger)
}

func SyncLogger() {
	if Logger != nil {
		Logger.Sync()
	}
}
