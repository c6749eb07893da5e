// Package model contains the GORM persistence models mirroring the database tables.
package model

// ChannelModel mirrors the 'tabs' table. Timestamps are stored as formatted
// strings to match the existing on-disk data.
type ChannelModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	GroupTitle string `gorm:"column:group_title;type:varchar(255)"`
	TvgID      string `gorm:"column:tvg_id;type:varchar(255)"`
	TvgLogo    string `gorm:"column:tvg_logo;type:varchar(1024)"`
	TvgName    string `gorm:"column:tvg_name;type:varchar(255)"`
	TvgURL     string `gorm:"column:tvg_url;type:varchar(2048)"`
	CreatedAt  string `gorm:"column:create_time;type:varchar(32)"`
	UpdatedAt  string `gorm:"column:update_time;type:varchar(32)"`
	Deleted    bool   `gorm:"column:del_tag;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (ChannelModel) TableName() string {
	return "tabs"
}
