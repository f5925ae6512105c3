package events

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"aicommunity_backend/internals/features/events/events/model"
	helper "aicommunity_backend/internals/helpers"

	"gorm.io/gorm"
)

type EventSeed struct {
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Location             string  `json:"location"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	Capacity             *int    `json:"capacity"`
	RegistrationDeadline *string `json:"registration_deadline"`
	IsPublished          bool    `json:"is_published"`
}

// SeedEventsFromJSON loads demo events. Rows are matched on title and
// skipped when present.
func SeedEventsFromJSON(db *gorm.DB, filePath string) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[SEED] cannot read %s: %v", filePath, err)
		return
	}

	var inputs []EventSeed
	if err := json.Unmarshal(raw, &inputs); err != nil {
		log.Printf("[SEED] cannot decode %s: %v", filePath, err)
		return
	}

	for _, data := range inputs {
		var existing model.EventModel
		if err := db.Where("event_title = ?", data.Title).First(&existing).Error; err == nil {
			continue
		}

		start, err := time.Parse(time.RFC3339, data.StartTime)
		if err != nil {
			log.Printf("[SEED] event '%s': bad start_time: %v", data.Title, err)
			continue
		}
		end, err := time.Parse(time.RFC3339, data.EndTime)
		if err != nil {
			log.Printf("[SEED] event '%s': bad end_time: %v", data.Title, err)
			continue
		}

		var deadline *time.Time
		if data.RegistrationDeadline != nil {
			d, err := time.Parse(time.RFC3339, *data.RegistrationDeadline)
			if err != nil {
				log.Printf("[SEED] event '%s': bad registration_deadline: %v", data.Title, err)
				continue
			}
			deadline = &d
		}

		slug, err := helper.GenerateUniqueSlug(db, helper.SlugOptions{
			Table:      "events",
			SlugColumn: "event_slug",
		}, data.Title)
		if err != nil {
			log.Printf("[SEED] event '%s': slug: %v", data.Title, err)
			continue
		}

		event := model.EventModel{
			EventTitle:                data.Title,
			EventSlug:                 slug,
			EventDescription:          data.Description,
			EventLocation:             data.Location,
			EventStartTime:            start,
			EventEndTime:              end,
			EventCapacity:             data.Capacity,
			EventRegistrationDeadline: deadline,
			EventIsPublished:          data.IsPublished,
		}
		if err := db.Create(&event).Error; err != nil {
			log.Printf("[SEED] failed to insert event '%s': %v", data.Title, err)
		}
	}
}
