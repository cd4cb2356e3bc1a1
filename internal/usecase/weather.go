package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/flight-board/airport-flight-board/internal/catalog"
	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/cache"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/logger"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/timeutil"
	"github.com/flight-board/airport-flight-board/internal/metrics"
)

// DefaultWeatherCacheTTL is how long a reading is reused per airport.
const DefaultWeatherCacheTTL = 10 * time.Minute

// WeatherUseCase serves current conditions for catalog airports.
type WeatherUseCase interface {
	// ForAirport returns the reading of a catalog airport.
	ForAirport(ctx context.Context, iata string) (domain.Weather, error)

	// Current returns the reading at the airport's coordinates. Live
	// failures degrade to the last live reading, then to a synthetic one;
	// both are marked non-authoritative.
	Current(ctx context.Context, airport domain.Airport) (domain.Weather, error)
}

// WeatherConfig contains configuration options for the weather use case.
type WeatherConfig struct {
	CacheTTL time.Duration
	Clock    timeutil.Clock
	Metrics  *metrics.Registry
	Logger   *logger.Logger
}

type weatherUseCase struct {
	catalog   *catalog.Catalog
	live      domain.WeatherProvider
	fallback  domain.WeatherProvider
	// readings holds live readings only; synthetic ones never stand in
	// for a live reading.
	readings  *cache.TTLCache[domain.Weather]
	synthetic *cache.TTLCache[domain.Weather]
	group     singleflight.Group
	metrics   *metrics.Registry
	logger    *logger.Logger
}

var _ WeatherUseCase = (*weatherUseCase)(nil)

// NewWeatherUseCase creates a WeatherUseCase. live may be nil, in which case
// every reading comes from fallback. If config is nil, default values are used.
func NewWeatherUseCase(cat *catalog.Catalog, live, fallback domain.WeatherProvider, config *WeatherConfig) WeatherUseCase {
	cfg := WeatherConfig{
		CacheTTL: DefaultWeatherCacheTTL,
		Clock:    timeutil.NewRealClock(),
		Logger:   logger.Nop(),
	}
	if config != nil {
		if config.CacheTTL > 0 {
			cfg.CacheTTL = config.CacheTTL
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		if config.Logger != nil {
			cfg.Logger = config.Logger
		}
		cfg.Metrics = config.Metrics
	}

	return &weatherUseCase{
		catalog:   cat,
		live:      live,
		fallback:  fallback,
		readings:  cache.NewTTLCache[domain.Weather](cfg.CacheTTL, cfg.Clock),
		synthetic: cache.NewTTLCache[domain.Weather](cfg.CacheTTL, cfg.Clock),
		metrics:   cfg.Metrics,
		logger:    cfg.Logger.WithComponent("weather"),
	}
}

// ForAirport implements WeatherUseCase.ForAirport.
func (uc *weatherUseCase) ForAirport(ctx context.Context, iata string) (domain.Weather, error) {
	airport, ok := uc.catalog.Lookup(iata)
	if !ok {
		return domain.Weather{}, fmt.Errorf("%w: %q", domain.ErrAirportNotFound, iata)
	}
	return uc.Current(ctx, airport)
}

// Current implements WeatherUseCase.Current.
func (uc *weatherUseCase) Current(ctx context.Context, airport domain.Airport) (domain.Weather, error) {
	key := weatherKey(airport)

	if w, ok := uc.cached(key); ok {
		uc.metrics.CacheHit(metrics.CacheWeather)
		uc.metrics.WeatherServed(string(w.Source))
		return w, nil
	}
	uc.metrics.CacheMiss(metrics.CacheWeather)

	// The shared refresh outlives any single caller; each caller still
	// honours its own cancellation.
	shared := context.WithoutCancel(ctx)
	ch := uc.group.DoChan(key, func() (any, error) {
		return uc.refresh(shared, airport)
	})

	select {
	case <-ctx.Done():
		return domain.Weather{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.Weather{}, res.Err
		}
		w := res.Val.(domain.Weather)
		uc.metrics.WeatherServed(string(w.Source))
		return w, nil
	}
}

// cached returns a fresh live reading, or a fresh synthetic one when there is
// no live provider to ask.
func (uc *weatherUseCase) cached(key string) (domain.Weather, bool) {
	if entry, ok := uc.readings.GetFresh(key); ok {
		return entry.Value, true
	}
	if uc.live == nil {
		if entry, ok := uc.synthetic.GetFresh(key); ok {
			return entry.Value, true
		}
	}
	return domain.Weather{}, false
}

func (uc *weatherUseCase) refresh(ctx context.Context, airport domain.Airport) (domain.Weather, error) {
	key := weatherKey(airport)

	if uc.live != nil {
		w, err := uc.live.Current(ctx, airport.Latitude, airport.Longitude)
		if err == nil {
			w.Source = domain.WeatherSourceLive
			w.Authoritative = true
			uc.readings.Set(key, w)
			return w, nil
		}

		uc.logger.Warn().
			Err(err).
			Str("provider", uc.live.Name()).
			Str("airport", airport.IATA).
			Msg("live weather failed, falling back")

		// The last live reading keeps its original timestamp so the next
		// request asks the live provider again.
		if previous, ok := uc.readings.Get(key); ok {
			w := previous.Value
			w.Source = domain.WeatherSourceStale
			w.Authoritative = false
			return w, nil
		}
	}

	if entry, ok := uc.synthetic.GetFresh(key); ok {
		return entry.Value, nil
	}

	if uc.fallback == nil {
		return domain.Weather{}, fmt.Errorf("%w: no fallback for %s", domain.ErrWeatherUnavailable, airport.IATA)
	}

	w, err := uc.fallback.Current(ctx, airport.Latitude, airport.Longitude)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("%w: %s: %v", domain.ErrWeatherUnavailable, uc.fallback.Name(), err)
	}
	w.Source = domain.WeatherSourceSynthetic
	w.Authoritative = false
	uc.synthetic.Set(key, w)

	uc.logger.Debug().Str("airport", airport.IATA).Msg("synthetic weather reading")
	return w, nil
}

// weatherKey identifies an airport coordinate.
func weatherKey(a domain.Airport) string {
	return fmt.Sprintf("%s-%.4f-%.4f", domain.NormalizeIATA(a.IATA), a.Latitude, a.Longitude)
}
