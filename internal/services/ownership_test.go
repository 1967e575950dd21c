package services

import (
	"errors"
	"testing"

	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type fakeBabyRepository struct {
	babies map[uint]models.BabyProfile
}

func (repo *fakeBabyRepository) FindByID(babyID uint) (models.BabyProfile, error) {
	baby, ok := repo.babies[babyID]
	if !ok {
		return models.BabyProfile{}, gorm.ErrRecordNotFound
	}
	return baby, nil
}

func (repo *fakeBabyRepository) ListIDsByUser(userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	for id, baby := range repo.babies {
		if baby.UserID == userID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func newTestOwnershipPolicy() *OwnershipPolicy {
	return NewOwnershipPolicy(&fakeBabyRepository{babies: map[uint]models.BabyProfile{
		1: {ID: 1, UserID: 10, Name: "Luna"},
		2: {ID: 2, UserID: 20, Name: "Milo"},
	}})
}

func TestResolveOwnedBaby_ExistenceBeforeOwnership(t *testing.T) {
	policy := newTestOwnershipPolicy()

	if _, err := policy.ResolveOwnedBaby(10, 99); !errors.Is(err, ErrBabyNotFound) {
		t.Fatalf("expected ErrBabyNotFound for a missing profile, got %v", err)
	}
	if _, err := policy.ResolveOwnedBaby(10, 2); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("expected ErrNotOwned for a foreign profile, got %v", err)
	}

	baby, err := policy.ResolveOwnedBaby(10, 1)
	if err != nil {
		t.Fatalf("expected owned profile resolved, got %v", err)
	}
	if baby.Name != "Luna" {
		t.Fatalf("expected Luna, got %q", baby.Name)
	}
}

func TestCheckRecordAccess_OrphanedRecordTreatedAsForeign(t *testing.T) {
	policy := newTestOwnershipPolicy()

	if err := policy.CheckRecordAccess(10, 1); err != nil {
		t.Fatalf("expected owned record accessible, got %v", err)
	}
	if err := policy.CheckRecordAccess(10, 2); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("expected ErrNotOwned, got %v", err)
	}
	// A record pointing at a vanished profile must not leak its existence.
	if err := policy.CheckRecordAccess(10, 99); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("expected ErrNotOwned for an orphaned record, got %v", err)
	}
}

func TestOwnedBabyIDs_EmptySetIsValid(t *testing.T) {
	policy := newTestOwnershipPolicy()

	ids, err := policy.OwnedBabyIDs(30)
	if err != nil {
		t.Fatalf("OwnedBabyIDs() error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no owned babies, got %v", ids)
	}
}
