package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

func IsValidGender(value string) bool {
	switch value {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// BabyProfile anchors every care-event record for authorization: a record
// is reachable only through a profile owned by the requesting user.
type BabyProfile struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"not null;index;uniqueIndex:uidx_owner_name" json:"-"`
	Name                string    `gorm:"not null;uniqueIndex:uidx_owner_name" json:"name"`
	DateOfBirth         time.Time `gorm:"not null" json:"dateOfBirth"`
	Gender              string    `json:"gender,omitempty"`
	WeightKG            *float64  `json:"weight,omitempty"`
	HeightCM            *float64  `json:"height,omitempty"`
	HeadCircumferenceCM *float64  `json:"headCircumference,omitempty"`
	Photo               string    `json:"-"`
	Notes               string    `json:"notes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
