package models

import (
	"time"

	"github.com/google/uuid"
)

// License is one software license record.
type License struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Software   string     `json:"software" db:"software"`
	LicenseKey string     `json:"licenseKey" db:"license_key"`
	Seats      int        `json:"seats" db:"seats"`
	AssignedTo string     `json:"assignedTo" db:"assigned_to"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty" db:"expiry_date"`
	Remarks    string     `json:"remarks" db:"remarks"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
}

type CreateLicenseReq struct {
	Software   string     `json:"software" validate:"required"`
	LicenseKey string     `json:"licenseKey" validate:"required"`
	Seats      int        `json:"seats" validate:"omitempty,gte=1"`
	AssignedTo string     `json:"assignedTo,omitempty"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	Remarks    string     `json:"remarks,omitempty"`
}

type UpdateLicenseReq struct {
	ID         uuid.UUID  `json:"id" validate:"required"`
	Software   string     `json:"software,omitempty"`
	LicenseKey string     `json:"licenseKey,omitempty"`
	Seats      *int       `json:"seats,omitempty"`
	AssignedTo string     `json:"assignedTo,omitempty"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	Remarks    string     `json:"remarks,omitempty"`
}
