package store

import (
	"encoding/json"
	"errors"

	"github.com/robgonnella/netsweep/internal/device"
	"github.com/robgonnella/netsweep/internal/exception"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteDatabase opens and migrates the sqlite database at dbFile
func NewSqliteDatabase(dbFile string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&ScanModel{}); err != nil {
		return nil, err
	}

	return db, nil
}

// NewSqliteRepo returns a new sqlite scan repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// SaveScan creates or replaces a scan
func (r *SqliteRepo) SaveScan(scan *Scan) error {
	if scan.ID == "" {
		return errors.New("scan id cannot be empty")
	}

	model, err := scanToModel(scan)

	if err != nil {
		return err
	}

	return r.db.Save(model).Error
}

// GetScan returns a scan from the db
func (r *SqliteRepo) GetScan(id string) (*Scan, error) {
	if id == "" {
		return nil, errors.New("scan id cannot be empty")
	}

	model := ScanModel{}

	if result := r.db.First(&model, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return modelToScan(&model)
}

// GetAllScans returns all scans in db, newest first
func (r *SqliteRepo) GetAllScans() ([]*Scan, error) {
	models := []ScanModel{}

	if result := r.db.Order("completed desc").Find(&models); result.Error != nil {
		return nil, result.Error
	}

	scans := []*Scan{}

	for i := range models {
		s, err := modelToScan(&models[i])

		if err != nil {
			return nil, err
		}

		scans = append(scans, s)
	}

	return scans, nil
}

// LatestScan returns the most recently completed scan
func (r *SqliteRepo) LatestScan() (*Scan, error) {
	model := ScanModel{}

	if result := r.db.Order("completed desc").First(&model); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return modelToScan(&model)
}

// helpers
func modelToScan(model *ScanModel) (*Scan, error) {
	records := []*device.Record{}

	if len(model.Devices) > 0 {
		if err := json.Unmarshal([]byte(model.Devices), &records); err != nil {
			return nil, err
		}
	}

	return &Scan{
		ID:        model.ID,
		Subnet:    model.Subnet,
		Completed: model.Completed,
		Records:   records,
	}, nil
}

func scanToModel(scan *Scan) (*ScanModel, error) {
	records := scan.Records

	if records == nil {
		records = []*device.Record{}
	}

	devicesBytes, err := json.Marshal(records)

	if err != nil {
		return nil, err
	}

	return &ScanModel{
		ID:        scan.ID,
		Subnet:    scan.Subnet,
		Completed: scan.Completed,
		Devices:   datatypes.JSON(devicesBytes),
	}, nil
}
