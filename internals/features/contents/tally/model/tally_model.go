package model

// MedalTallyModel is a read-only leaderboard aggregate. There is no write
// path: rows are maintained outside the application.
type MedalTallyModel struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	TeamName string `gorm:"column:team_name;size:255;not null" json:"team_name"`
	Gold     int    `gorm:"column:gold" json:"gold"`
	Silver   int    `gorm:"column:silver" json:"silver"`
	Bronze   int    `gorm:"column:bronze" json:"bronze"`
	Total    int    `gorm:"column:total" json:"total"`
}

func (MedalTallyModel) TableName() string {
	return "medal_tally"
}
