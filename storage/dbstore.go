package storage

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRecord is the single table behind DBStore.
type kvRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (kvRecord) TableName() string { return "kv_records" }

// DBStore persists the key space in one sqlite table via gorm. Every Set
// rewrites the full value for the key, matching the whole-document model
// of the original storefront's storage.
type DBStore struct {
	db *gorm.DB
}

// OpenDB opens (or creates) the sqlite file at source and migrates the
// kv table.
func OpenDB(source string) (*DBStore, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, err
	}
	return &DBStore{db: db}, nil
}

func (s *DBStore) Get(key string) (string, bool, error) {
	var rec kvRecord
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

func (s *DBStore) Set(key, value string) error {
	rec := kvRecord{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (s *DBStore) Remove(key string) error {
	return s.db.Delete(&kvRecord{}, "key = ?", key).Error
}
