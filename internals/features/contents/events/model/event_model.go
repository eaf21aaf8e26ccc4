package model

// Fallback map center (Paisley) used when an event has no usable coordinates.
const (
	FallbackLat = 55.8456
	FallbackLng = -4.4239
)

type EventModel struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:name;size:255;unique;not null" json:"name"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	Image       string  `gorm:"column:image;type:text" json:"image"`
	EventDate   string  `gorm:"column:event_date;size:100" json:"event_date"`
	EventTime   string  `gorm:"column:event_time;size:100" json:"event_time"`
	Location    string  `gorm:"column:location;size:255" json:"location"`
	Lat         float64 `gorm:"column:lat" json:"lat"`
	Lng         float64 `gorm:"column:lng" json:"lng"`
}

// TableName sets the table name for EventModel
func (EventModel) TableName() string {
	return "events"
}
