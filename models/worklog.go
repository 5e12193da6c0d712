package models

import (
	"time"

	"github.com/google/uuid"
)

// WorklogStatus is the optional progress marker on a maintenance entry. It is
// independent of the asset's own lifecycle status.
type WorklogStatus string

const (
	WorklogPending    WorklogStatus = "pending"
	WorklogInProgress WorklogStatus = "in_progress"
	WorklogCompleted  WorklogStatus = "completed"
)

func (s WorklogStatus) IsValid() bool {
	switch s {
	case WorklogPending, WorklogInProgress, WorklogCompleted:
		return true
	}
	return false
}

// WorklogEntry is one maintenance note on an asset. Entries are append-only:
// created once, never edited or deleted.
type WorklogEntry struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	AssetID    uuid.UUID     `json:"assetId" db:"asset_id"`
	Comment    string        `json:"comment" db:"comment"`
	Status     WorklogStatus `json:"status,omitempty" db:"status"`
	Technician string        `json:"technician,omitempty" db:"technician"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
}

// AppendWorklogReq adds a maintenance note to an asset.
type AppendWorklogReq struct {
	AssetID    string `json:"assetId" validate:"required"`
	Comment    string `json:"comment" validate:"required"`
	Status     string `json:"status,omitempty"`
	Technician string `json:"technician,omitempty"`
}

// DefectiveAssetRes is a defective asset together with its repair history,
// newest entry first.
type DefectiveAssetRes struct {
	Asset    Asset          `json:"asset"`
	Worklogs []WorklogEntry `json:"worklogs"`
}
