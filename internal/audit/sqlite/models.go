package sqlite

// runRow is the sync_runs table. Notices and mutations are JSON arrays.
type runRow struct {
	ID              string `gorm:"primaryKey;size:36"`
	Path            string `gorm:"index;not null"`
	ContextDate     string `gorm:"size:10"`
	Strategy        string `gorm:"size:16"`
	Trigger         string `gorm:"size:16"`
	Changed         bool
	DocumentChanged bool
	AuthFailed      bool
	EditCount       int
	Mutations       string `gorm:"type:text"`
	Notices         string `gorm:"type:text"`
	Error           string `gorm:"type:text"`
	CreatedAt       int64  `gorm:"index;autoCreateTime:false"`
}

func (runRow) TableName() string {
	return "sync_runs"
}
