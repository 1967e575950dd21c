package db

import (
	"time"

	"gorm.io/gorm"
)

type Repositories struct {
	Users         *UserRepository
	Babies        *BabyRepository
	Feedings      *FeedingRepository
	Sleeps        *SleepRepository
	Diapers       *DiaperRepository
	Baths         *BathRepository
	Checkups      *CheckupRepository
	Growth        *GrowthRepository
	Allergies     *AllergyRepository
	Vaccinations  *VaccinationRepository
	Milestones    *MilestoneRepository
	Settings      *SettingsRepository
	Notifications *NotificationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Babies:        NewBabyRepository(database),
		Feedings:      NewFeedingRepository(database),
		Sleeps:        NewSleepRepository(database),
		Diapers:       NewDiaperRepository(database),
		Baths:         NewBathRepository(database),
		Checkups:      NewCheckupRepository(database),
		Growth:        NewGrowthRepository(database),
		Allergies:     NewAllergyRepository(database),
		Vaccinations:  NewVaccinationRepository(database),
		Milestones:    NewMilestoneRepository(database),
		Settings:      NewSettingsRepository(database),
		Notifications: NewNotificationRepository(database),
	}
}

// RecordFilter is the lenient listing filter shared by every event-log
// repository. BabyIDs is always the caller's owned set (possibly narrowed
// to one baby); zero values mean "no constraint".
type RecordFilter struct {
	BabyIDs  []uint
	From     *time.Time
	To       *time.Time
	Category string
	Limit    int
}

// applyRecordFilter constrains a query to the filter's owned babies and
// time window, ordered newest first on timeColumn. The category clause is
// added by each repository because the column name differs per resource.
func applyRecordFilter(query *gorm.DB, filter RecordFilter, timeColumn string) *gorm.DB {
	query = query.Where("baby_id IN ?", filter.BabyIDs)
	if filter.From != nil {
		query = query.Where(timeColumn+" >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where(timeColumn+" <= ?", *filter.To)
	}
	query = query.Order(timeColumn + " DESC, id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	return query
}
