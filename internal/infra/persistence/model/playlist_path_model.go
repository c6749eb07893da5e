package model

// PlaylistPathModel mirrors the 'tab_path' table. Paths are deliberately not
// unique; lookups take the first match by ID order.
type PlaylistPathModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Path string `gorm:"column:path;type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlaylistPathModel) TableName() string {
	return "tab_path"
}
