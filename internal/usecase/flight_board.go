package usecase

import (
	"fmt"

	"github.com/flight-board/airport-flight-board/internal/catalog"
	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/flightgen"
)

// FlightBoardUseCase serves generated boards for catalog airports.
type FlightBoardUseCase interface {
	// GetBoard returns the board of the airport. The airport must exist in
	// the catalog; the board type must be valid.
	GetBoard(iata string, board domain.BoardType) (domain.FlightBatch, error)

	// GetFlight returns a flight from any cached board.
	GetFlight(id string) (domain.Flight, error)

	// Statuses returns the display metadata of every flight status.
	Statuses() []domain.StatusInfo

	// Reset drops every cached board.
	Reset()
}

type flightBoardUseCase struct {
	catalog *catalog.Catalog
	engine  *flightgen.Engine
}

var _ FlightBoardUseCase = (*flightBoardUseCase)(nil)

// NewFlightBoardUseCase creates a FlightBoardUseCase.
func NewFlightBoardUseCase(cat *catalog.Catalog, engine *flightgen.Engine) FlightBoardUseCase {
	return &flightBoardUseCase{catalog: cat, engine: engine}
}

// GetBoard implements FlightBoardUseCase.GetBoard.
func (uc *flightBoardUseCase) GetBoard(iata string, board domain.BoardType) (domain.FlightBatch, error) {
	if !board.IsValid() {
		return domain.FlightBatch{}, fmt.Errorf("%w: %q", domain.ErrInvalidBoardType, board)
	}

	airport, ok := uc.catalog.Lookup(iata)
	if !ok {
		return domain.FlightBatch{}, fmt.Errorf("%w: %q", domain.ErrAirportNotFound, iata)
	}

	return uc.engine.GetBatch(airport, board), nil
}

// GetFlight implements FlightBoardUseCase.GetFlight.
func (uc *flightBoardUseCase) GetFlight(id string) (domain.Flight, error) {
	f, ok := uc.engine.GetFlightByID(id)
	if !ok {
		return domain.Flight{}, fmt.Errorf("%w: %q", domain.ErrFlightNotFound, id)
	}
	return f, nil
}

// Statuses implements FlightBoardUseCase.Statuses.
func (uc *flightBoardUseCase) Statuses() []domain.StatusInfo {
	return domain.FlightStatuses()
}

// Reset implements FlightBoardUseCase.Reset.
func (uc *flightBoardUseCase) Reset() {
	uc.engine.ClearCache()
}
