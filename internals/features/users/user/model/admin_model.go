package model

// AdminModel is a separate credentials table, not a role flag on users.
type AdminModel struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"column:username;size:255;unique;not null" json:"username"`
	Password string `gorm:"column:password;size:255;not null" json:"-"`
}

func (AdminModel) TableName() string {
	return "admins"
}
