package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-board/airport-flight-board/internal/catalog"
	"github.com/flight-board/airport-flight-board/internal/domain"
)

func newPreferenceFixture(t *testing.T, saved *domain.Preferences) (PreferenceUseCase, *domain.MockPreferenceStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := domain.NewMockPreferenceStore(ctrl)

	if saved == nil {
		store.EXPECT().Load(gomock.Any()).Return(domain.Preferences{}, domain.ErrPreferencesNotFound)
	} else {
		store.EXPECT().Load(gomock.Any()).Return(*saved, nil)
	}

	uc, err := NewPreferenceUseCase(context.Background(), catalog.Default(), store, nil)
	require.NoError(t, err)
	return uc, store
}

func TestPreferences_Defaults(t *testing.T) {
	uc, _ := newPreferenceFixture(t, nil)

	p := uc.Get()
	assert.Equal(t, "SGN", p.SelectedAirport)
	assert.Equal(t, []string{"SGN"}, p.Favorites)
	assert.Equal(t, domain.Celsius, p.TemperatureUnit)

	a, err := uc.SelectedAirport()
	require.NoError(t, err)
	assert.Equal(t, "Ho Chi Minh City", a.City)
}

func TestPreferences_LoadsSavedState(t *testing.T) {
	saved := domain.Preferences{
		SelectedAirport: "lax",
		Favorites:       []string{"LAX", "NRT"},
		TemperatureUnit: domain.Fahrenheit,
	}
	uc, _ := newPreferenceFixture(t, &saved)

	p := uc.Get()
	assert.Equal(t, "LAX", p.SelectedAirport)
	assert.Equal(t, []string{"LAX", "NRT"}, p.Favorites)
	assert.Equal(t, domain.Fahrenheit, p.TemperatureUnit)
}

func TestPreferences_SanitizesSavedState(t *testing.T) {
	saved := domain.Preferences{SelectedAirport: "XXX", TemperatureUnit: "kelvin"}
	uc, _ := newPreferenceFixture(t, &saved)

	p := uc.Get()
	assert.Equal(t, "SGN", p.SelectedAirport)
	assert.Equal(t, domain.Celsius, p.TemperatureUnit)
	assert.NotNil(t, p.Favorites)
}

func TestPreferences_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := domain.NewMockPreferenceStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(domain.Preferences{}, errors.New("corrupt file"))

	_, err := NewPreferenceUseCase(context.Background(), catalog.Default(), store, nil)
	assert.True(t, errors.Is(err, domain.ErrPreferencesUnavailable))
}

func TestPreferences_SelectAirport(t *testing.T) {
	uc, store := newPreferenceFixture(t, nil)
	ctx := context.Background()

	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p domain.Preferences) error {
		assert.Equal(t, "HAN", p.SelectedAirport)
		return nil
	})

	p, err := uc.SelectAirport(ctx, "han")
	require.NoError(t, err)
	assert.Equal(t, "HAN", p.SelectedAirport)
	assert.Equal(t, "HAN", uc.Get().SelectedAirport)

	_, err = uc.SelectAirport(ctx, "QQQ")
	assert.True(t, errors.Is(err, domain.ErrAirportNotFound))
}

func TestPreferences_ToggleFavorite(t *testing.T) {
	uc, store := newPreferenceFixture(t, nil)
	ctx := context.Background()
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	p, err := uc.ToggleFavorite(ctx, "nrt")
	require.NoError(t, err)
	assert.Equal(t, []string{"SGN", "NRT"}, p.Favorites)
	assert.True(t, uc.IsFavorite("NRT"))

	_, err = uc.ToggleFavorite(ctx, "LAX")
	require.NoError(t, err)

	p, err = uc.ToggleFavorite(ctx, "SGN")
	require.NoError(t, err)
	assert.Equal(t, []string{"NRT", "LAX"}, p.Favorites)
	assert.False(t, uc.IsFavorite("sgn"))

	favorites := uc.FavoriteAirports()
	require.Len(t, favorites, 2)
	assert.Equal(t, "Tokyo", favorites[0].City)
	assert.Equal(t, "Los Angeles", favorites[1].City)

	_, err = uc.ToggleFavorite(ctx, "QQQ")
	assert.True(t, errors.Is(err, domain.ErrAirportNotFound))
}

func TestPreferences_FavoriteAirportsSkipsUnknownCodes(t *testing.T) {
	saved := domain.Preferences{SelectedAirport: "SGN", Favorites: []string{"OLD", "HAN"}, TemperatureUnit: domain.Celsius}
	uc, _ := newPreferenceFixture(t, &saved)

	favorites := uc.FavoriteAirports()
	require.Len(t, favorites, 1)
	assert.Equal(t, "HAN", favorites[0].IATA)
}

func TestPreferences_TemperatureUnit(t *testing.T) {
	uc, store := newPreferenceFixture(t, nil)
	ctx := context.Background()
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	p, err := uc.SetTemperatureUnit(ctx, domain.Fahrenheit)
	require.NoError(t, err)
	assert.Equal(t, domain.Fahrenheit, p.TemperatureUnit)

	p, err = uc.ToggleTemperatureUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Celsius, p.TemperatureUnit)

	_, err = uc.SetTemperatureUnit(ctx, "kelvin")
	assert.True(t, errors.Is(err, domain.ErrInvalidTemperatureUnit))
}

func TestPreferences_FailedSaveDoesNotCommit(t *testing.T) {
	uc, store := newPreferenceFixture(t, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("read-only filesystem"))

	_, err := uc.SelectAirport(context.Background(), "LAX")

	assert.True(t, errors.Is(err, domain.ErrPreferencesUnavailable))
	assert.Equal(t, "SGN", uc.Get().SelectedAirport)
}

func TestPreferences_GetReturnsCopy(t *testing.T) {
	uc, _ := newPreferenceFixture(t, nil)

	p := uc.Get()
	p.Favorites[0] = "XXX"

	assert.Equal(t, []string{"SGN"}, uc.Get().Favorites)
}
