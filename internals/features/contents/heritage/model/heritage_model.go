package model

type HeritageModel struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"column:title;size:255;not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Image       string `gorm:"column:image;type:text" json:"image"`
}

// TableName sets the table name for HeritageModel
func (HeritageModel) TableName() string {
	return "heritage"
}
