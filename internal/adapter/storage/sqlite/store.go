// Package sqlite persists preferences in a local SQLite database through gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/flight-board/airport-flight-board/internal/domain"
)

// preferenceRowID is the primary key of the single preference row.
const preferenceRowID = 1

// PreferenceRecord is the device's preference row.
type PreferenceRecord struct {
	ID              uint   `gorm:"primaryKey"`
	SelectedAirport string `gorm:"size:3;not null"`
	TemperatureUnit string `gorm:"size:16;not null"`
	UpdatedAt       time.Time
}

// TableName overrides the gorm default.
func (PreferenceRecord) TableName() string { return "preferences" }

// FavoriteRecord is one favorite airport; Position keeps insertion order.
type FavoriteRecord struct {
	IATA     string `gorm:"primaryKey;size:3"`
	Position int    `gorm:"not null;index"`
}

// TableName overrides the gorm default.
func (FavoriteRecord) TableName() string { return "favorite_airports" }

// Store is a domain.PreferenceStore backed by SQLite.
type Store struct {
	db *gorm.DB
}

var _ domain.PreferenceStore = (*Store)(nil)

// Open opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// a single connection keeps ":memory:" databases shared across calls
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return New(db)
}

// New wraps an open gorm handle and migrates the schema.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&PreferenceRecord{}, &FavoriteRecord{}); err != nil {
		return nil, fmt.Errorf("migrate preferences: %w", err)
	}
	return &Store{db: db}, nil
}

// Load implements domain.PreferenceStore.Load.
func (s *Store) Load(ctx context.Context) (domain.Preferences, error) {
	db := s.db.WithContext(ctx)

	var rec PreferenceRecord
	if err := db.First(&rec, preferenceRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Preferences{}, domain.ErrPreferencesNotFound
		}
		return domain.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}

	var favs []FavoriteRecord
	if err := db.Order("position asc").Find(&favs).Error; err != nil {
		return domain.Preferences{}, fmt.Errorf("load favorites: %w", err)
	}

	prefs := domain.Preferences{
		SelectedAirport: rec.SelectedAirport,
		Favorites:       make([]string, 0, len(favs)),
		TemperatureUnit: domain.TemperatureUnit(rec.TemperatureUnit),
	}
	for _, f := range favs {
		prefs.Favorites = append(prefs.Favorites, f.IATA)
	}
	return prefs, nil
}

// Save implements domain.PreferenceStore.Save. The row and the favorite set
// are replaced in one transaction.
func (s *Store) Save(ctx context.Context, prefs domain.Preferences) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := PreferenceRecord{
			ID:              preferenceRowID,
			SelectedAirport: prefs.SelectedAirport,
			TemperatureUnit: string(prefs.TemperatureUnit),
		}
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}

		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&FavoriteRecord{}).Error; err != nil {
			return err
		}
		if len(prefs.Favorites) == 0 {
			return nil
		}

		favs := make([]FavoriteRecord, 0, len(prefs.Favorites))
		for i, code := range prefs.Favorites {
			favs = append(favs, FavoriteRecord{IATA: code, Position: i})
		}
		return tx.Create(&favs).Error
	})
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
