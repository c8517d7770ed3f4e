package store

import (
	"time"

	"gorm.io/datatypes"
)

// ScanModel database representation of a Scan
type ScanModel struct {
	ID        string    `gorm:"primaryKey"`
	Subnet    string    `gorm:"index"`
	Completed time.Time `gorm:"index"`
	Devices   datatypes.JSON
}

// TableName implements gorm's tabler interface
func (ScanModel) TableName() string {
	return "scans"
}
