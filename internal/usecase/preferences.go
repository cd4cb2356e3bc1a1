package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/flight-board/airport-flight-board/internal/catalog"
	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/logger"
	"github.com/flight-board/airport-flight-board/internal/metrics"
)

// PreferenceUseCase manages the persisted selected airport, favorites and
// temperature unit. Every mutation is written through the store before it
// becomes visible.
type PreferenceUseCase interface {
	// Get returns the current preferences.
	Get() domain.Preferences

	// SelectedAirport resolves the selected airport against the catalog.
	SelectedAirport() (domain.Airport, error)

	// SelectAirport changes the selected airport. The code must exist in
	// the catalog.
	SelectAirport(ctx context.Context, iata string) (domain.Preferences, error)

	// ToggleFavorite adds the airport to the favorites, or removes it when
	// already present.
	ToggleFavorite(ctx context.Context, iata string) (domain.Preferences, error)

	// IsFavorite reports whether the airport is a favorite.
	IsFavorite(iata string) bool

	// FavoriteAirports resolves the favorites against the catalog, in the
	// order they were added. Codes missing from the catalog are skipped.
	FavoriteAirports() []domain.Airport

	// SetTemperatureUnit changes the display unit.
	SetTemperatureUnit(ctx context.Context, unit domain.TemperatureUnit) (domain.Preferences, error)

	// ToggleTemperatureUnit switches between celsius and fahrenheit.
	ToggleTemperatureUnit(ctx context.Context) (domain.Preferences, error)
}

type preferenceUseCase struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	store   domain.PreferenceStore
	current domain.Preferences
	metrics *metrics.Registry
	logger  *logger.Logger
}

var _ PreferenceUseCase = (*preferenceUseCase)(nil)

// PreferenceConfig contains optional collaborators of the preference use case.
type PreferenceConfig struct {
	Metrics *metrics.Registry
	Logger  *logger.Logger
}

// NewPreferenceUseCase loads the saved preferences from store. A store
// with nothing saved yields the defaults: the catalog's default airport,
// selected and as the only favorite, and celsius.
func NewPreferenceUseCase(ctx context.Context, cat *catalog.Catalog, store domain.PreferenceStore, config *PreferenceConfig) (PreferenceUseCase, error) {
	uc := &preferenceUseCase{
		catalog: cat,
		store:   store,
		logger:  logger.Nop(),
	}
	if config != nil {
		uc.metrics = config.Metrics
		if config.Logger != nil {
			uc.logger = config.Logger
		}
	}
	uc.logger = uc.logger.WithComponent("preferences")

	defaults := domain.DefaultPreferences(cat.DefaultAirport().IATA)
	prefs, err := store.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrPreferencesNotFound):
		prefs = defaults
		uc.logger.Info().Str("airport", prefs.SelectedAirport).Msg("no saved preferences, using defaults")
	case err != nil:
		return nil, fmt.Errorf("%w: load: %v", domain.ErrPreferencesUnavailable, err)
	}

	uc.current = sanitize(prefs, defaults, cat)
	return uc, nil
}

// sanitize repairs values a store may hold from an older catalog or a
// hand-edited file.
func sanitize(p, defaults domain.Preferences, cat *catalog.Catalog) domain.Preferences {
	out := p.Clone()
	if _, ok := cat.Lookup(out.SelectedAirport); !ok {
		out.SelectedAirport = defaults.SelectedAirport
	}
	out.SelectedAirport = domain.NormalizeIATA(out.SelectedAirport)
	if !out.TemperatureUnit.IsValid() {
		out.TemperatureUnit = defaults.TemperatureUnit
	}
	if out.Favorites == nil {
		out.Favorites = []string{}
	}
	return out
}

// Get implements PreferenceUseCase.Get.
func (uc *preferenceUseCase) Get() domain.Preferences {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current.Clone()
}

// SelectedAirport implements PreferenceUseCase.SelectedAirport.
func (uc *preferenceUseCase) SelectedAirport() (domain.Airport, error) {
	code := uc.Get().SelectedAirport
	a, ok := uc.catalog.Lookup(code)
	if !ok {
		return domain.Airport{}, fmt.Errorf("%w: %q", domain.ErrAirportNotFound, code)
	}
	return a, nil
}

// SelectAirport implements PreferenceUseCase.SelectAirport.
func (uc *preferenceUseCase) SelectAirport(ctx context.Context, iata string) (domain.Preferences, error) {
	a, ok := uc.catalog.Lookup(iata)
	if !ok {
		return domain.Preferences{}, fmt.Errorf("%w: %q", domain.ErrAirportNotFound, iata)
	}
	return uc.update(ctx, func(p domain.Preferences) domain.Preferences {
		p.SelectedAirport = a.IATA
		return p
	})
}

// ToggleFavorite implements PreferenceUseCase.ToggleFavorite.
func (uc *preferenceUseCase) ToggleFavorite(ctx context.Context, iata string) (domain.Preferences, error) {
	a, ok := uc.catalog.Lookup(iata)
	if !ok {
		return domain.Preferences{}, fmt.Errorf("%w: %q", domain.ErrAirportNotFound, iata)
	}
	return uc.update(ctx, func(p domain.Preferences) domain.Preferences {
		return p.WithFavoriteToggled(a.IATA)
	})
}

// IsFavorite implements PreferenceUseCase.IsFavorite.
func (uc *preferenceUseCase) IsFavorite(iata string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current.IsFavorite(iata)
}

// FavoriteAirports implements PreferenceUseCase.FavoriteAirports.
func (uc *preferenceUseCase) FavoriteAirports() []domain.Airport {
	favorites := uc.Get().Favorites
	out := make([]domain.Airport, 0, len(favorites))
	for _, code := range favorites {
		if a, ok := uc.catalog.Lookup(code); ok {
			out = append(out, a)
		}
	}
	return out
}

// SetTemperatureUnit implements PreferenceUseCase.SetTemperatureUnit.
func (uc *preferenceUseCase) SetTemperatureUnit(ctx context.Context, unit domain.TemperatureUnit) (domain.Preferences, error) {
	if !unit.IsValid() {
		return domain.Preferences{}, fmt.Errorf("%w: %q", domain.ErrInvalidTemperatureUnit, unit)
	}
	return uc.update(ctx, func(p domain.Preferences) domain.Preferences {
		p.TemperatureUnit = unit
		return p
	})
}

// ToggleTemperatureUnit implements PreferenceUseCase.ToggleTemperatureUnit.
func (uc *preferenceUseCase) ToggleTemperatureUnit(ctx context.Context) (domain.Preferences, error) {
	return uc.update(ctx, func(p domain.Preferences) domain.Preferences {
		p.TemperatureUnit = p.TemperatureUnit.Toggle()
		return p
	})
}

// update applies fn to a copy of the current preferences, saves the result
// and only then commits it in memory.
func (uc *preferenceUseCase) update(ctx context.Context, fn func(domain.Preferences) domain.Preferences) (domain.Preferences, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := fn(uc.current.Clone())
	err := uc.store.Save(ctx, next)
	uc.metrics.PreferenceWrite(err)
	if err != nil {
		uc.logger.Error().Err(err).Msg("failed to save preferences")
		return domain.Preferences{}, fmt.Errorf("%w: save: %v", domain.ErrPreferencesUnavailable, err)
	}

	uc.current = next
	return next.Clone(), nil
}
