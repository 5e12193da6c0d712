package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Asset is one tracked physical inventory unit. Tag, AssetType and CreatedAt
// are immutable once the record exists.
type Asset struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Tag          string     `json:"assetTag" db:"tag"`
	AssetType    string     `json:"assetType" db:"asset_type"`
	Brand        string     `json:"brand" db:"brand"`
	Model        string     `json:"model" db:"model"`
	SerialNumber string     `json:"serialNumber" db:"serial_number"`
	Status       Status     `json:"status" db:"status"`
	CurrentUser  string     `json:"currentUser" db:"assigned_user"`
	PreviousUser string     `json:"previousUser" db:"previous_user"`
	Department   string     `json:"department" db:"department"`
	Position     string     `json:"position" db:"position"`
	Location     string     `json:"location" db:"location"`
	Processor    string     `json:"processor" db:"processor"`
	RAM          string     `json:"ram" db:"ram"`
	StorageGB    int        `json:"storageGb" db:"storage_gb"`
	PurchaseDate *time.Time `json:"purchaseDate,omitempty" db:"purchase_date"`
	Remarks      string     `json:"remarks" db:"remarks"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// AssetAge is the calendar difference between a purchase date and now.
// It is derived on demand, never stored.
type AssetAge struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

func (a AssetAge) String() string {
	return fmt.Sprintf("%dy %dm %dd", a.Years, a.Months, a.Days)
}

// AgeAt computes the calendar year/month/day difference from purchaseDate to
// now, borrowing days from the previous month and months from the previous
// year the way a person would count it.
func AgeAt(purchaseDate, now time.Time) AssetAge {
	years := now.Year() - purchaseDate.Year()
	months := int(now.Month()) - int(purchaseDate.Month())
	days := now.Day() - purchaseDate.Day()

	if days < 0 {
		months--
		// days in the month preceding `now`
		days += time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, now.Location()).Day()
	}
	if months < 0 {
		years--
		months += 12
	}
	return AssetAge{Years: years, Months: months, Days: days}
}

// disposalAgeYears is the age at which intake force-disposes an asset.
const disposalAgeYears = 5

// ForcesDisposal reports whether an asset purchased on purchaseDate must be
// created straight into dispose. Evaluated once at intake, never afterwards.
func ForcesDisposal(purchaseDate, now time.Time) bool {
	return AgeAt(purchaseDate, now).Years >= disposalAgeYears
}

// Assignment is the record produced when a spare asset is handed to a user.
// It snapshots the asset's descriptive fields at assignment time.
type Assignment struct {
	ID           uuid.UUID `json:"id" db:"id"`
	AssetID      uuid.UUID `json:"assetId" db:"asset_id"`
	Tag          string    `json:"assetTag" db:"tag"`
	AssetType    string    `json:"assetType" db:"asset_type"`
	Brand        string    `json:"brand" db:"brand"`
	Model        string    `json:"model" db:"model"`
	SerialNumber string    `json:"serialNumber" db:"serial_number"`
	NewUser      string    `json:"newUser" db:"new_user"`
	OldUser      string    `json:"oldUser" db:"old_user"`
	Department   string    `json:"department" db:"department"`
	Position     string    `json:"position" db:"position"`
	Remarks      string    `json:"remarks" db:"remarks"`
	AssignedBy   uuid.UUID `json:"assignedBy" db:"assigned_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// TransitionFields are the dependent writes that ride along with a status
// change. Empty strings leave the stored value untouched.
type TransitionFields struct {
	NewUser    string `json:"newUser,omitempty"`
	OldUser    string `json:"oldUser,omitempty"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	Remarks    string `json:"remarks,omitempty"`
}

// AllocateTagReq asks for the next free tag for an asset type.
type AllocateTagReq struct {
	AssetType string `json:"assetType" validate:"required"`
}

// CreateAssetReq is the intake payload. Tag may be left empty, in which case
// the allocator picks the next one for AssetType.
type CreateAssetReq struct {
	Tag          string     `json:"assetTag,omitempty"`
	AssetType    string     `json:"assetType" validate:"required"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	SerialNumber string     `json:"serialNumber"`
	Status       string     `json:"status,omitempty"`
	CurrentUser  string     `json:"currentUser,omitempty"`
	PreviousUser string     `json:"previousUser,omitempty"`
	Department   string     `json:"department,omitempty"`
	Position     string     `json:"position,omitempty"`
	Location     string     `json:"location,omitempty"`
	Processor    string     `json:"processor,omitempty"`
	RAM          string     `json:"ram,omitempty"`
	StorageGB    int        `json:"storageGb,omitempty"`
	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`
	Remarks      string     `json:"remarks,omitempty"`
}

// TransitionStatusReq moves an asset to a new status on behalf of a workflow.
type TransitionStatusReq struct {
	Tag      string           `json:"assetTag" validate:"required"`
	Status   string           `json:"status" validate:"required"`
	Workflow string           `json:"workflow" validate:"required"`
	Fields   TransitionFields `json:"fields"`
}

// AssignAssetReq deploys a spare asset to a user.
type AssignAssetReq struct {
	Tag        string `json:"assetTag" validate:"required"`
	NewUser    string `json:"newUser" validate:"required"`
	OldUser    string `json:"oldUser,omitempty"`
	Department string `json:"department" validate:"required"`
	Position   string `json:"position" validate:"required"`
	Remarks    string `json:"remarks,omitempty"`
}

// AssignAssetRes carries both effects of a successful assignment.
type AssignAssetRes struct {
	Asset      Asset      `json:"asset"`
	Assignment Assignment `json:"assignment"`
}

// BulkDisposalReq marks a batch of assets for disposal in one write.
type BulkDisposalReq struct {
	Tags []string `json:"assetTags" validate:"required,min=1"`
}

// UpdateAssetReq patches descriptive fields of an existing asset. Status is
// deliberately absent: status changes go through TransitionStatus.
type UpdateAssetReq struct {
	Tag          string     `json:"assetTag" validate:"required"`
	Brand        string     `json:"brand,omitempty"`
	Model        string     `json:"model,omitempty"`
	SerialNumber string     `json:"serialNumber,omitempty"`
	Department   string     `json:"department,omitempty"`
	Position     string     `json:"position,omitempty"`
	Location     string     `json:"location,omitempty"`
	Processor    string     `json:"processor,omitempty"`
	RAM          string     `json:"ram,omitempty"`
	StorageGB    *int       `json:"storageGb,omitempty"`
	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`
	Remarks      string     `json:"remarks,omitempty"`
}

// AssetTimelineEvent is one row of an asset's combined history: assignments
// and maintenance entries merged by time.
type AssetTimelineEvent struct {
	EventType  string    `json:"event_type" db:"event_type"`
	OccurredAt time.Time `json:"occurred_at" db:"occurred_at"`
	Details    string    `json:"details,omitempty" db:"details"`
	AssetID    uuid.UUID `json:"asset_id" db:"asset_id"`
}
