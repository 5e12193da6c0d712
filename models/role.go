package models

type Role string

const (
	AdminRole        Role = "admin"
	AssetManagerRole Role = "asset_manager"
	ViewerRole       Role = "viewer"
)

func (r Role) IsValid() bool {
	switch r {
	case AdminRole, AssetManagerRole, ViewerRole:
		return true
	}
	return false
}
