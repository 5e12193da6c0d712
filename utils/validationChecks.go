package utils

import (
	"strings"
	"time"

	"assetdesk/models"
)

func IsAssetTypeValid(assetType string) bool {
	switch strings.ToLower(assetType) {
	case "laptop", "monitor", "desktop":
		return true
	}
	return false
}

func IsLocationValid(location string) bool {
	switch strings.ToLower(location) {
	case "", "primex", "j&l", "pasig wh", "cdo", "cebu", "davao", "buildchem", "disruptive":
		return true
	}
	return false
}

func AssetValidityCheck(req models.CreateAssetReq) error {
	if strings.TrimSpace(req.AssetType) == "" {
		return models.ValidationError{Field: "assetType", Reason: "is required"}
	}
	if !IsAssetTypeValid(req.AssetType) {
		return models.ValidationError{Field: "assetType", Reason: "unknown asset type"}
	}
	if !IsLocationValid(req.Location) {
		return models.ValidationError{Field: "location", Reason: "unknown location"}
	}
	if req.PurchaseDate != nil && req.PurchaseDate.After(time.Now()) {
		return models.ValidationError{Field: "purchaseDate", Reason: "cannot be in the future"}
	}
	if req.Status != "" {
		if _, ok := models.ParseStatus(req.Status); !ok {
			return models.ValidationError{Field: "status", Reason: "unknown status"}
		}
	}
	return nil
}
