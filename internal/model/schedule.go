package model

// BusinessHours is the open window of one site for one weekday (0 = Monday).
// Times are local clock times formatted as HH:MM:SS.
type BusinessHours struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	SiteID     int64  `gorm:"not null;index"`
	Weekday    int    `gorm:"not null"`
	OpenLocal  string `gorm:"size:16;not null"`
	CloseLocal string `gorm:"size:16;not null"`
}

func (BusinessHours) TableName() string { return "business_hours" }

// SiteTimezone maps a site to its IANA zone name.
type SiteTimezone struct {
	SiteID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Timezone string `gorm:"size:64;not null"`
}

func (SiteTimezone) TableName() string { return "site_timezones" }
