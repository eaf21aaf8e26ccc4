package contents

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	eventModel "paisleygames_backend/internals/features/contents/events/model"
)

type EventSeed struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	EventDate   string   `json:"event_date"`
	EventTime   string   `json:"event_time"`
	Location    string   `json:"location"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

func SeedEventsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading event seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed file: %v", err)
		return
	}

	var inputs []EventSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing eventModel.EventModel
		if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
			continue
		}

		ev := eventModel.EventModel{
			Name:        data.Name,
			Description: data.Description,
			Image:       data.Image,
			EventDate:   data.EventDate,
			EventTime:   data.EventTime,
			Location:    data.Location,
			Lat:         eventModel.FallbackLat,
			Lng:         eventModel.FallbackLng,
		}
		if data.Lat != nil {
			ev.Lat = *data.Lat
		}
		if data.Lng != nil {
			ev.Lng = *data.Lng
		}

		if err := db.Create(&ev).Error; err != nil {
			log.Printf("❌ Failed to insert event '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Seeded event '%s'.", data.Name)
	}
}
