package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	eventModel "aicommunity_backend/internals/features/events/events/model"
	regModel "aicommunity_backend/internals/features/events/registrations/model"
	userModel "aicommunity_backend/internals/features/users/user/model"
)

// Change classification. "negative" is part of the public contract but the
// aggregation below never produces it; do not invent a negative-growth rule
// without product sign-off.
const (
	ChangePositive = "positive"
	ChangeNeutral  = "neutral"
	ChangeNegative = "negative"
)

type Stat struct {
	Name       string `json:"name"`
	Value      int64  `json:"value"`
	Change     string `json:"change"`
	ChangeType string `json:"change_type"`
}

// GrowthPercent formats monthly/total as a one-decimal percentage string.
// A zero total yields "0.0%".
func GrowthPercent(total, monthly int64) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(monthly)/float64(total)*100)
}

// ClassifyChange marks any nonzero monthly count as positive.
func ClassifyChange(monthly int64) string {
	if monthly > 0 {
		return ChangePositive
	}
	return ChangeNeutral
}

func BuildStat(name string, total, monthly int64) Stat {
	return Stat{
		Name:       name,
		Value:      total,
		Change:     GrowthPercent(total, monthly),
		ChangeType: ClassifyChange(monthly),
	}
}

func countSince(db *gorm.DB, mdl any, createdCol string, since time.Time) (int64, error) {
	var n int64
	err := db.Model(mdl).Where(createdCol+" >= ?", since).Count(&n).Error
	return n, err
}

func countAll(db *gorm.DB, mdl any) (int64, error) {
	var n int64
	err := db.Model(mdl).Count(&n).Error
	return n, err
}

// Collect runs the independent count queries and assembles the dashboard
// stats. No caching; every call recomputes.
func Collect(db *gorm.DB) ([]Stat, error) {
	since := time.Now().AddDate(0, 0, -30)

	type source struct {
		name       string
		mdl        any
		createdCol string
	}
	sources := []source{
		{"Total Users", &userModel.UserModel{}, "user_created_at"},
		{"Total Events", &eventModel.EventModel{}, "event_created_at"},
		{"Total Registrations", &regModel.RegistrationModel{}, "registration_created_at"},
	}

	stats := make([]Stat, 0, len(sources))
	for _, s := range sources {
		total, err := countAll(db, s.mdl)
		if err != nil {
			return nil, err
		}
		monthly, err := countSince(db, s.mdl, s.createdCol, since)
		if err != nil {
			return nil, err
		}
		stats = append(stats, BuildStat(s.name, total, monthly))
	}
	return stats, nil
}
