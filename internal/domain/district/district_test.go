package district

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByCity_KnownCities(t *testing.T) {
	t.Parallel()

	seoul := ByCity("Seoul")
	require.Len(t, seoul, 6)
	assert.Equal(t, "강남구", seoul[0].Name)
	assert.InDelta(t, 37.5173, seoul[0].Center.Lat, 1e-9)

	busan := ByCity("Busan")
	require.Len(t, busan, 2)
	assert.Equal(t, "해운대구", busan[0].Name)
}

func TestByCity_UnknownCityReturnsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ByCity("Atlantis"))
}

func TestCities(t *testing.T) {
	t.Parallel()

	cities := Cities()
	assert.ElementsMatch(t, []string{"Seoul", "Busan"}, cities)
}

func TestTable_EveryDistrictHasValidCenter(t *testing.T) {
	t.Parallel()

	for _, city := range Cities() {
		for _, d := range ByCity(city) {
			assert.NotEmpty(t, d.Name)
			assert.NotZero(t, d.Center.Lat, "%s/%s center lat", city, d.Name)
			assert.NotZero(t, d.Center.Lng, "%s/%s center lng", city, d.Name)
		}
	}
}

//Personal.AI order the ending
