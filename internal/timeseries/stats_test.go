package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

func TestDerive(t *testing.T) {
	points := []models.NormalizedPoint{
		{Timestamp: 1, Price: 100.0},
		{Timestamp: 2, Price: 103.333},
	}
	latest := &models.RawSample{Open: "102.5", High: "104.1", Low: "99.8", Close: "103.333"}

	st := Derive(points, latest)
	assert.Equal(t, 103.333, st.CurrentPrice)
	assert.Equal(t, 3.33, st.Change)
	assert.Equal(t, 3.33, st.PercentChange)
	assert.Equal(t, 104.1, st.High)
	assert.Equal(t, 99.8, st.Low)
	assert.Equal(t, 102.5, st.Open)
}

func TestDerive_SinglePointHasZeroChange(t *testing.T) {
	points := []models.NormalizedPoint{{Timestamp: 1, Price: 42.0}}

	st := Derive(points, nil)
	assert.Equal(t, 42.0, st.CurrentPrice)
	assert.Zero(t, st.Change)
	assert.Zero(t, st.PercentChange)
	// OHLC defaults to the current price without a raw sample
	assert.Equal(t, 42.0, st.High)
	assert.Equal(t, 42.0, st.Low)
	assert.Equal(t, 42.0, st.Open)
}

func TestDerive_UnparseableFieldsFallBackIndividually(t *testing.T) {
	points := []models.NormalizedPoint{
		{Timestamp: 1, Price: 10.0},
		{Timestamp: 2, Price: 12.0},
	}
	latest := &models.RawSample{Open: "", High: "12.5", Low: "n/a"}

	st := Derive(points, latest)
	assert.Equal(t, 12.5, st.High) // parseable field kept
	assert.Equal(t, 12.0, st.Low)  // fallback to current price
	assert.Equal(t, 12.0, st.Open)
}

func TestDerive_NegativeChange(t *testing.T) {
	points := []models.NormalizedPoint{
		{Timestamp: 1, Price: 200.0},
		{Timestamp: 2, Price: 150.0},
	}

	st := Derive(points, nil)
	assert.Equal(t, -50.0, st.Change)
	assert.Equal(t, -25.0, st.PercentChange)
}

func TestDerive_Empty(t *testing.T) {
	st := Derive(nil, nil)
	assert.Zero(t, st.CurrentPrice)
	assert.Zero(t, st.Change)
}

func TestDerive_ZeroFirstPrice(t *testing.T) {
	points := []models.NormalizedPoint{
		{Timestamp: 1, Price: 0},
		{Timestamp: 2, Price: 5.0},
	}

	st := Derive(points, nil)
	assert.Zero(t, st.Change)
	assert.Zero(t, st.PercentChange)
}
