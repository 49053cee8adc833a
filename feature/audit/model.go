package audit

import "time"

// SyncRecord is one persisted sync run.
type SyncRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StoreID    string    `gorm:"size:64;index" json:"store_id"`
	Filename   string    `gorm:"size:255" json:"filename"`
	Mode       string    `gorm:"size:32" json:"mode"`
	Identifier string    `gorm:"size:16" json:"identifier"`
	Status     string    `gorm:"size:32" json:"status"`
	TotalRows  int       `json:"total_rows"`
	Applied    int       `json:"applied"`
	Missing    int       `json:"missing"`
	Duplicates int       `json:"duplicates"`
	Detail     string    `gorm:"size:1024" json:"detail,omitempty"`
	RayID      string    `gorm:"size:64" json:"ray_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName pins the table name regardless of GORM's pluralization rules.
func (SyncRecord) TableName() string {
	return "sync_records"
}
