package flightgen

import (
	"sync"
	"time"

	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/cache"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/logger"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/timeutil"
	"github.com/flight-board/airport-flight-board/internal/metrics"
)

// DefaultCacheTTL is how long a generated board is reused.
const DefaultCacheTTL = 30 * time.Minute

// Config contains configuration options for the engine.
type Config struct {
	CacheTTL time.Duration
	Clock    timeutil.Clock
	Metrics  *metrics.Registry
	Logger   *logger.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CacheTTL: DefaultCacheTTL,
		Clock:    timeutil.NewRealClock(),
		Logger:   logger.Nop(),
	}
}

// Engine serves flight boards, generating a batch on first request for a
// key and reusing it until it is CacheTTL old. The engine never validates
// the airport against the catalog and never fails.
type Engine struct {
	mu      sync.Mutex
	gen     *Generator
	batches *cache.TTLCache[domain.FlightBatch]
	clock   timeutil.Clock
	metrics *metrics.Registry
	logger  *logger.Logger
}

// NewEngine creates an Engine. If config is nil, default values are used.
func NewEngine(gen *Generator, config *Config) *Engine {
	cfg := DefaultConfig()
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

	return &Engine{
		gen:     gen,
		batches: cache.NewTTLCache[domain.FlightBatch](cfg.CacheTTL, cfg.Clock),
		clock:   cfg.Clock,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

// GetFlights returns the board of airport for the given board type.
func (e *Engine) GetFlights(airport domain.Airport, board domain.BoardType) []domain.Flight {
	return e.GetBatch(airport, board).Flights
}

// GetBatch returns the cached batch for (airport, board), regenerating it
// when absent or expired. The returned batch is a deep copy of the cached one.
func (e *Engine) GetBatch(airport domain.Airport, board domain.BoardType) domain.FlightBatch {
	key := domain.BatchKey(airport.IATA, board)

	e.mu.Lock()
	defer e.mu.Unlock()

	if entry, ok := e.batches.GetFresh(key); ok {
		e.metrics.CacheHit(metrics.CacheFlights)
		e.logger.Debug().Str("key", key).Time("generated_at", entry.Value.GeneratedAt).Msg("flight batch cache hit")
		return copyBatch(entry.Value)
	}
	e.metrics.CacheMiss(metrics.CacheFlights)

	now := e.clock.Now()
	batch := domain.FlightBatch{
		AirportIATA: domain.NormalizeIATA(airport.IATA),
		BoardType:   board,
		Flights:     e.gen.Generate(airport, board, now),
		GeneratedAt: now,
	}
	e.batches.Set(key, batch)
	e.metrics.BatchGenerated(string(board))

	e.logger.Debug().
		Str("key", key).
		Int("flights", len(batch.Flights)).
		Msg("flight batch generated")

	return copyBatch(batch)
}

// GetFlightByID scans every cached batch, in key order, for the flight.
func (e *Engine) GetFlightByID(id string) (domain.Flight, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var (
		found domain.Flight
		ok    bool
	)
	e.batches.Range(func(_ string, entry cache.Entry[domain.FlightBatch]) bool {
		for _, f := range entry.Value.Flights {
			if f.ID == id {
				found, ok = f.Clone(), true
				return false
			}
		}
		return true
	})
	return found, ok
}

// ClearCache drops every cached batch.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.batches.Flush()
	e.logger.Debug().Msg("flight batch cache cleared")
}

// CachedBatches returns the number of cached batches, fresh or not.
func (e *Engine) CachedBatches() int {
	return e.batches.Len()
}

func copyBatch(b domain.FlightBatch) domain.FlightBatch {
	if b.Flights == nil {
		return b
	}
	flights := make([]domain.Flight, len(b.Flights))
	for i, f := range b.Flights {
		flights[i] = f.Clone()
	}
	b.Flights = flights
	return b
}
