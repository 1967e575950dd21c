package services

import (
	"errors"

	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

var (
	ErrBabyNotFound = errors.New("baby profile not found")
	ErrNotOwned     = errors.New("record belongs to another account")
)

type OwnershipBabyRepository interface {
	FindByID(babyID uint) (models.BabyProfile, error)
	ListIDsByUser(userID uint) ([]uint, error)
}

// OwnershipPolicy answers "may this user touch this baby's records".
// Existence is always decided before ownership so probing another tenant's
// IDs yields the same 404 as probing random ones only when the row is
// absent, and a 403 when it exists but is foreign.
type OwnershipPolicy struct {
	babies OwnershipBabyRepository
}

func NewOwnershipPolicy(babies OwnershipBabyRepository) *OwnershipPolicy {
	return &OwnershipPolicy{babies: babies}
}

// ResolveOwnedBaby loads the profile and verifies it belongs to userID.
func (policy *OwnershipPolicy) ResolveOwnedBaby(userID uint, babyID uint) (models.BabyProfile, error) {
	baby, err := policy.babies.FindByID(babyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.BabyProfile{}, ErrBabyNotFound
	}
	if err != nil {
		return models.BabyProfile{}, err
	}
	if baby.UserID != userID {
		return models.BabyProfile{}, ErrNotOwned
	}
	return baby, nil
}

// OwnedBabyIDs returns every profile ID the user may read. An empty set is
// valid and simply makes every record query match nothing.
func (policy *OwnershipPolicy) OwnedBabyIDs(userID uint) ([]uint, error) {
	return policy.babies.ListIDsByUser(userID)
}

// CheckRecordAccess applies the existence-before-ownership ordering to an
// already-loaded record's baby.
func (policy *OwnershipPolicy) CheckRecordAccess(userID uint, babyID uint) error {
	baby, err := policy.babies.FindByID(babyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Orphaned record; treat as foreign rather than leaking it.
		return ErrNotOwned
	}
	if err != nil {
		return err
	}
	if baby.UserID != userID {
		return ErrNotOwned
	}
	return nil
}
