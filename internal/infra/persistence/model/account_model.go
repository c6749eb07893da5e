package model

// AccountModel mirrors the 'users' table. The service runs with at most one
// row here; bootstrap refuses to create a second.
type AccountModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"column:username;type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"column:hashed_password;type:varchar(255);not null"`
	Deleted      bool   `gorm:"column:del_tag;default:false"`
	CreatedAt    string `gorm:"column:create_time;type:varchar(32)"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}
