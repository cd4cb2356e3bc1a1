package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-board/airport-flight-board/internal/adapter/http/response"
	"github.com/flight-board/airport-flight-board/internal/catalog"
	"github.com/flight-board/airport-flight-board/internal/domain"
	"github.com/flight-board/airport-flight-board/internal/flightgen"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/randutil"
	"github.com/flight-board/airport-flight-board/internal/infrastructure/timeutil"
	"github.com/flight-board/airport-flight-board/internal/usecase"
)

type handlerFixture struct {
	e        *echo.Echo
	store    *domain.MockPreferenceStore
	live     *domain.MockWeatherProvider
	fallback *domain.MockWeatherProvider
}

// setupTestHandler wires the real use cases over the default catalog with a
// fixed clock, a seeded generator and mocked store and weather providers.
func setupTestHandler(t *testing.T) handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	clock := timeutil.NewMockClockFromString("2025-12-15T10:00:00Z")
	cat := catalog.Default()

	store := domain.NewMockPreferenceStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(domain.Preferences{}, domain.ErrPreferencesNotFound)

	live := domain.NewMockWeatherProvider(ctrl)
	fallback := domain.NewMockWeatherProvider(ctrl)
	live.EXPECT().Name().Return("open-meteo").AnyTimes()
	fallback.EXPECT().Name().Return("synthetic").AnyTimes()

	gen := flightgen.NewGenerator(cat.All(), cat.Airlines(), randutil.NewSeeded(7), flightgen.DefaultBatchSize)
	engine := flightgen.NewEngine(gen, &flightgen.Config{Clock: clock})

	prefs, err := usecase.NewPreferenceUseCase(context.Background(), cat, store, nil)
	require.NoError(t, err)

	h := NewBoardHandler(
		usecase.NewAirportSearchUseCase(cat, clock),
		usecase.NewFlightBoardUseCase(cat, engine),
		usecase.NewWeatherUseCase(cat, live, fallback, &usecase.WeatherConfig{Clock: clock}),
		prefs,
		clock,
	)

	e := echo.New()
	RegisterRoutes(e, h)
	return handlerFixture{e: e, store: store, live: live, fallback: fallback}
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool                  `json:"success"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
}

// decodeData asserts a successful envelope and decodes its payload.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.True(t, env.Success, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

// decodeError asserts a failed envelope and returns its error detail.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	return *env.Error
}

// =====================================================
// System
// =====================================================

func TestHealth(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body response.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Time.Equal(time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC)))
}

// =====================================================
// Airports
// =====================================================

func TestSearchAirports_ExactCodeFirst(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/search?q=sgn", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body AirportSearchDTO
	decodeData(t, rec, &body)
	assert.Equal(t, "sgn", body.Query)
	require.NotEmpty(t, body.Results)
	assert.Equal(t, "SGN", body.Results[0].IATA)
	assert.Equal(t, 100, body.Results[0].MatchScore)
	assert.Equal(t, len(body.Results), body.Total)
}

func TestSearchAirports_CityMatchesBothAirports(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/search?q=Tokyo", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body AirportSearchDTO
	decodeData(t, rec, &body)

	codes := make([]string, 0, len(body.Results))
	for _, r := range body.Results {
		codes = append(codes, r.IATA)
	}
	assert.Contains(t, codes, "NRT")
	assert.Contains(t, codes, "HND")
}

func TestSearchAirports_EmptyQuery(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/search?q=%20%20", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results":[]`)
}

func TestSearchAirports_QueryTooLong(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/search?q="+strings.Repeat("a", 65), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "q")
}

func TestListAirports(t *testing.T) {
	f := setupTestHandler(t)

	t.Run("all airports", func(t *testing.T) {
		rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body AirportListDTO
		decodeData(t, rec, &body)
		assert.Equal(t, len(catalog.Default().All()), body.Total)
	})

	t.Run("by country ignoring case", func(t *testing.T) {
		rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports?country=vietnam", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body AirportListDTO
		decodeData(t, rec, &body)
		require.NotEmpty(t, body.Airports)
		for _, a := range body.Airports {
			assert.Equal(t, "Vietnam", a.Country)
		}
	})

	t.Run("unknown country", func(t *testing.T) {
		rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports?country=Atlantis", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"airports":[]`)
	})
}

func TestGetAirport(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/sgn", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body AirportInfoDTO
	decodeData(t, rec, &body)
	assert.Equal(t, "SGN", body.Airport.IATA)
	assert.True(t, body.IsFavorite)
	assert.Equal(t, "17:00", body.LocalTime.FormattedTime)
	assert.Equal(t, "GMT+7", body.LocalTime.Offset)
	assert.Equal(t, "Asia/Ho_Chi_Minh", body.LocalTime.Timezone)
}

func TestGetAirport_Errors(t *testing.T) {
	f := setupTestHandler(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "unknown code", path: "/api/v1/airports/XXX", wantStatus: http.StatusNotFound, wantCode: response.CodeNotFound},
		{name: "too short", path: "/api/v1/airports/SG", wantStatus: http.StatusBadRequest, wantCode: response.CodeValidationError},
		{name: "digits", path: "/api/v1/airports/S9N", wantStatus: http.StatusBadRequest, wantCode: response.CodeValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := makeRequest(f.e, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

// =====================================================
// Flights
// =====================================================

func TestGetAirportBoard(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/sgn/flights?type=arrival", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body BoardDTO
	decodeData(t, rec, &body)
	assert.Equal(t, "SGN", body.Airport.IATA)
	assert.Equal(t, "arrival", body.BoardType)
	assert.Equal(t, flightgen.DefaultBatchSize, body.Total)

	for i, fl := range body.Flights {
		assert.Equal(t, "SGN", fl.Arrival.Airport.IATA)
		assert.NotEqual(t, "SGN", fl.Departure.Airport.IATA)
		assert.NotNil(t, fl.Codeshares)
		if i > 0 {
			assert.False(t, fl.Arrival.Scheduled.Before(body.Flights[i-1].Arrival.Scheduled), "board must be sorted")
		}
	}
}

func TestGetAirportBoard_DefaultsToDepartures(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/HAN/flights", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body BoardDTO
	decodeData(t, rec, &body)
	assert.Equal(t, "departure", body.BoardType)
	for _, fl := range body.Flights {
		assert.Equal(t, "HAN", fl.Departure.Airport.IATA)
	}
}

func TestGetAirportBoard_IsCached(t *testing.T) {
	f := setupTestHandler(t)

	first := makeRequest(f.e, http.MethodGet, "/api/v1/airports/SGN/flights", nil)
	second := makeRequest(f.e, http.MethodGet, "/api/v1/airports/SGN/flights", nil)

	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestGetAirportBoard_Errors(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/SGN/flights?type=cargo", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "type")

	rec = makeRequest(f.e, http.MethodGet, "/api/v1/airports/ZZZ/flights", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFlight(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/SGN/flights", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var board BoardDTO
	decodeData(t, rec, &board)
	require.NotEmpty(t, board.Flights)
	want := board.Flights[3]

	rec = makeRequest(f.e, http.MethodGet, "/api/v1/flights/"+want.ID, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got FlightDTO
	decodeData(t, rec, &got)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.FlightNumber, got.FlightNumber)
	assert.Equal(t, want.Status, got.Status)
}

func TestGetFlight_NotCached(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/flights/SGN-departure-0", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.CodeNotFound, decodeError(t, rec).Code)
}

func TestResetBoards(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/SGN/flights", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, http.StatusOK, makeRequest(f.e, http.MethodGet, "/api/v1/flights/SGN-departure-0", nil).Code)

	rec = makeRequest(f.e, http.MethodDelete, "/api/v1/flights/cache", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = makeRequest(f.e, http.MethodGet, "/api/v1/flights/SGN-departure-0", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFlightStatuses(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/flight-statuses", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body StatusListDTO
	decodeData(t, rec, &body)
	require.Len(t, body.Statuses, len(domain.FlightStatuses()))
	for _, s := range body.Statuses {
		assert.NotEmpty(t, s.Label)
		assert.NotEmpty(t, s.Color)
		assert.NotEmpty(t, s.BgColor)
	}
}

func TestGetSelectedBoard_FollowsPreference(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/board", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var board BoardDTO
	decodeData(t, rec, &board)
	assert.Equal(t, "SGN", board.Airport.IATA)

	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	rec = makeRequest(f.e, http.MethodPut, "/api/v1/preferences/selected-airport", SelectAirportRequest{IATA: "nrt"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = makeRequest(f.e, http.MethodGet, "/api/v1/board?type=arrival", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &board)
	assert.Equal(t, "NRT", board.Airport.IATA)
	assert.Equal(t, "arrival", board.BoardType)
}

// =====================================================
// Weather
// =====================================================

func TestGetAirportWeather(t *testing.T) {
	f := setupTestHandler(t)
	f.live.EXPECT().Current(gomock.Any(), 10.8188, 106.6520).Return(domain.Weather{
		TemperatureC:    30,
		Condition:       "Rainy",
		ConditionCode:   domain.ConditionRainy,
		WindSpeedKph:    11.2,
		HumidityPercent: 74,
	}, nil).Times(1)

	t.Run("saved unit", func(t *testing.T) {
		rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/sgn/weather", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body WeatherDTO
		decodeData(t, rec, &body)
		assert.Equal(t, "SGN", body.Airport)
		assert.Equal(t, 30.0, body.Temperature)
		assert.Equal(t, "celsius", body.TemperatureUnit)
		assert.Equal(t, "30°C", body.TemperatureFormatted)
		assert.Equal(t, "live", body.Source)
		assert.True(t, body.Authoritative)
	})

	t.Run("requested unit from cache", func(t *testing.T) {
		rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/SGN/weather?unit=fahrenheit", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body WeatherDTO
		decodeData(t, rec, &body)
		assert.Equal(t, 86.0, body.Temperature)
		assert.Equal(t, "86°F", body.TemperatureFormatted)
		assert.Equal(t, 30.0, body.TemperatureCelsius)
	})
}

func TestGetAirportWeather_FallsBackToSynthetic(t *testing.T) {
	f := setupTestHandler(t)
	f.live.EXPECT().Current(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Weather{}, domain.NewWeatherProviderError("open-meteo", http.StatusBadGateway, errors.New("bad gateway")))
	f.fallback.EXPECT().Current(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Weather{TemperatureC: 27, Condition: "Cloudy", ConditionCode: domain.ConditionCloudy}, nil)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/HAN/weather", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body WeatherDTO
	decodeData(t, rec, &body)
	assert.Equal(t, "synthetic", body.Source)
	assert.False(t, body.Authoritative)
}

func TestGetAirportWeather_Errors(t *testing.T) {
	t.Run("invalid unit", func(t *testing.T) {
		f := setupTestHandler(t)
		rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/SGN/weather?unit=kelvin", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Details, "unit")
	})

	t.Run("unknown airport", func(t *testing.T) {
		f := setupTestHandler(t)
		rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/QQQ/weather", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("every provider failed", func(t *testing.T) {
		f := setupTestHandler(t)
		f.live.EXPECT().Current(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Weather{}, errors.New("down"))
		f.fallback.EXPECT().Current(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Weather{}, errors.New("down"))

		rec := makeRequest(f.e, http.MethodGet, "/api/v1/airports/SGN/weather", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, response.CodeServiceUnavailable, decodeError(t, rec).Code)
	})
}

// =====================================================
// Preferences
// =====================================================

func TestGetPreferences_Defaults(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodGet, "/api/v1/preferences", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body PreferencesDTO
	decodeData(t, rec, &body)
	assert.Equal(t, "SGN", body.SelectedAirport)
	assert.Equal(t, []string{"SGN"}, body.Favorites)
	assert.Equal(t, "celsius", body.TemperatureUnit)
}

func TestSelectAirport(t *testing.T) {
	f := setupTestHandler(t)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p domain.Preferences) error {
		assert.Equal(t, "LAX", p.SelectedAirport)
		return nil
	})

	rec := makeRequest(f.e, http.MethodPut, "/api/v1/preferences/selected-airport", SelectAirportRequest{IATA: " lax "})

	require.Equal(t, http.StatusOK, rec.Code)
	var body PreferencesDTO
	decodeData(t, rec, &body)
	assert.Equal(t, "LAX", body.SelectedAirport)
}

func TestSelectAirport_Errors(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		f := setupTestHandler(t)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/selected-airport", strings.NewReader("{invalid"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, response.CodeInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("missing code", func(t *testing.T) {
		f := setupTestHandler(t)
		rec := makeRequest(f.e, http.MethodPut, "/api/v1/preferences/selected-airport", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "iata is required", decodeError(t, rec).Details["iata"])
	})

	t.Run("unknown airport", func(t *testing.T) {
		f := setupTestHandler(t)
		rec := makeRequest(f.e, http.MethodPut, "/api/v1/preferences/selected-airport", SelectAirportRequest{IATA: "XYZ"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure keeps previous selection", func(t *testing.T) {
		f := setupTestHandler(t)
		f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		rec := makeRequest(f.e, http.MethodPut, "/api/v1/preferences/selected-airport", SelectAirportRequest{IATA: "NRT"})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		rec = makeRequest(f.e, http.MethodGet, "/api/v1/preferences", nil)
		var body PreferencesDTO
		decodeData(t, rec, &body)
		assert.Equal(t, "SGN", body.SelectedAirport)
	})
}

func TestToggleFavorite(t *testing.T) {
	f := setupTestHandler(t)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	rec := makeRequest(f.e, http.MethodPost, "/api/v1/preferences/favorites/nrt/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body FavoriteToggleDTO
	decodeData(t, rec, &body)
	assert.Equal(t, "NRT", body.IATA)
	assert.True(t, body.IsFavorite)
	assert.Equal(t, []string{"SGN", "NRT"}, body.Preferences.Favorites)

	rec = makeRequest(f.e, http.MethodGet, "/api/v1/preferences/favorites", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var favorites AirportListDTO
	decodeData(t, rec, &favorites)
	require.Equal(t, 2, favorites.Total)
	assert.Equal(t, "SGN", favorites.Airports[0].IATA)
	assert.Equal(t, "NRT", favorites.Airports[1].IATA)

	rec = makeRequest(f.e, http.MethodPost, "/api/v1/preferences/favorites/SGN/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &body)
	assert.False(t, body.IsFavorite)
	assert.Equal(t, []string{"NRT"}, body.Preferences.Favorites)

	rec = makeRequest(f.e, http.MethodGet, "/api/v1/airports/SGN", nil)
	var info AirportInfoDTO
	decodeData(t, rec, &info)
	assert.False(t, info.IsFavorite)
}

func TestToggleFavorite_UnknownAirport(t *testing.T) {
	f := setupTestHandler(t)

	rec := makeRequest(f.e, http.MethodPost, "/api/v1/preferences/favorites/XYZ/toggle", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetTemperatureUnit(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantUnit   string
	}{
		{name: "fahrenheit", body: TemperatureUnitRequest{Unit: "fahrenheit"}, wantStatus: http.StatusOK, wantUnit: "fahrenheit"},
		{name: "case insensitive", body: TemperatureUnitRequest{Unit: "Celsius"}, wantStatus: http.StatusOK, wantUnit: "celsius"},
		{name: "kelvin", body: TemperatureUnitRequest{Unit: "kelvin"}, wantStatus: http.StatusBadRequest},
		{name: "missing", body: map[string]string{}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTestHandler(t)
			if tt.wantStatus == http.StatusOK {
				f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			}

			rec := makeRequest(f.e, http.MethodPut, "/api/v1/preferences/temperature-unit", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, decodeError(t, rec).Details, "unit")
				return
			}
			var body PreferencesDTO
			decodeData(t, rec, &body)
			assert.Equal(t, tt.wantUnit, body.TemperatureUnit)
		})
	}
}

func TestToggleTemperatureUnit(t *testing.T) {
	f := setupTestHandler(t)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	rec := makeRequest(f.e, http.MethodPost, "/api/v1/preferences/temperature-unit/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body PreferencesDTO
	decodeData(t, rec, &body)
	assert.Equal(t, "fahrenheit", body.TemperatureUnit)

	rec = makeRequest(f.e, http.MethodPost, "/api/v1/preferences/temperature-unit/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &body)
	assert.Equal(t, "celsius", body.TemperatureUnit)
}

// =====================================================
// Error mapping
// =====================================================

func TestHandleError(t *testing.T) {
	h := &BoardHandler{}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "airport not found", err: domain.ErrAirportNotFound, wantStatus: http.StatusNotFound, wantCode: response.CodeNotFound},
		{name: "flight not found", err: domain.ErrFlightNotFound, wantStatus: http.StatusNotFound, wantCode: response.CodeNotFound},
		{name: "invalid board type", err: domain.ErrInvalidBoardType, wantStatus: http.StatusBadRequest, wantCode: response.CodeValidationError},
		{name: "invalid unit", err: domain.ErrInvalidTemperatureUnit, wantStatus: http.StatusBadRequest, wantCode: response.CodeValidationError},
		{name: "weather unavailable", err: domain.ErrWeatherUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: response.CodeServiceUnavailable},
		{name: "preferences unavailable", err: domain.ErrPreferencesUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: response.CodeServiceUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout, wantCode: response.CodeTimeout},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: response.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.handleError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}
