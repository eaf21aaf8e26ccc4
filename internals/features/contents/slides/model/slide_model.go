package model

type SlideModel struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title      string `gorm:"column:title;size:255;not null" json:"title"`
	Subtitle   string `gorm:"column:subtitle;size:255" json:"subtitle"`
	ButtonText string `gorm:"column:button_text;size:100" json:"button_text"`
	// Action is the view token the hero button navigates to (e.g. "Events").
	Action string `gorm:"column:action;size:50" json:"action"`
	Image  string `gorm:"column:image;type:text" json:"image"`
}

// TableName sets the table name for SlideModel
func (SlideModel) TableName() string {
	return "slides"
}
