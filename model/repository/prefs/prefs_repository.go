package prefs

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "github.com/oticaisis/storefront/model/entity"
)

// PrefsRepository reads and writes durable key-value preferences.
type PrefsRepository struct {
	db *gorm.DB
}

func NewPrefsRepository(db *gorm.DB) (*PrefsRepository, error) {
	if err := db.AutoMigrate(&entity.PrefEntry{}); err != nil {
		return nil, err
	}
	return &PrefsRepository{db: db}, nil
}

// Get returns the stored value and whether the key exists.
func (r *PrefsRepository) Get(key string) (string, bool) {
	var entry entity.PrefEntry
	err := r.db.First(&entry, "pref_key = ?", key).Error
	if err != nil {
		return "", false
	}
	return entry.Value, true
}

// Set upserts a preference. Writes go to durable storage immediately.
func (r *PrefsRepository) Set(key, value string) error {
	entry := entity.PrefEntry{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"pref_value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete removes a preference. Missing keys are not an error.
func (r *PrefsRepository) Delete(key string) error {
	err := r.db.Delete(&entity.PrefEntry{}, "pref_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
