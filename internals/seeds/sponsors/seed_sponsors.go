package sponsors

import (
	"encoding/json"
	"log"
	"os"

	"aicommunity_backend/internals/features/content/sponsors/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SponsorSeed struct {
	Name        string            `json:"name"`
	Tier        string            `json:"tier"`
	Description *string           `json:"description"`
	Links       map[string]string `json:"links"`
}

// SeedSponsorsFromJSON loads demo sponsors, matched on name.
func SeedSponsorsFromJSON(db *gorm.DB, filePath string) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[SEED] cannot read %s: %v", filePath, err)
		return
	}

	var inputs []SponsorSeed
	if err := json.Unmarshal(raw, &inputs); err != nil {
		log.Printf("[SEED] cannot decode %s: %v", filePath, err)
		return
	}

	for _, data := range inputs {
		var existing model.SponsorModel
		if err := db.Where("sponsor_name = ?", data.Name).First(&existing).Error; err == nil {
			continue
		}

		sponsor := model.SponsorModel{
			SponsorName:        data.Name,
			SponsorTier:        data.Tier,
			SponsorDescription: data.Description,
			SponsorIsActive:    true,
		}
		if len(data.Links) > 0 {
			if raw, err := json.Marshal(data.Links); err == nil {
				sponsor.SponsorLinks = datatypes.JSON(raw)
			}
		}
		if err := db.Create(&sponsor).Error; err != nil {
			log.Printf("[SEED] failed to insert sponsor '%s': %v", data.Name, err)
		}
	}
}
