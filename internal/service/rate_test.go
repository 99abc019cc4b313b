package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BilalArshad6074/Smart-Parking/internal/service"
)

func TestRateEngine_Rate(t *testing.T) {
	engine := service.NewRateEngine(15.0, 5.0, 0.7)

	tests := []struct {
		name     string
		total    int
		occupied int
		want     float64
	}{
		{name: "empty facility has no surge and no division error", total: 0, occupied: 0, want: 15.0},
		{name: "low occupancy", total: 10, occupied: 3, want: 15.0},
		{name: "threshold is strict, 0.7 exactly gets no surge", total: 10, occupied: 7, want: 15.0},
		{name: "above threshold gets surge", total: 10, occupied: 8, want: 20.0},
		{name: "full facility", total: 4, occupied: 4, want: 20.0},
		{name: "single occupied slot", total: 1, occupied: 1, want: 20.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Rate(tt.total, tt.occupied))
		})
	}
}

func TestRateEngine_Rate_Deterministic(t *testing.T) {
	engine := service.NewRateEngine(15.0, 5.0, 0.7)
	first := engine.Rate(10, 8)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, engine.Rate(10, 8))
	}
}

func TestRateEngine_CustomRates(t *testing.T) {
	engine := service.NewRateEngine(10.0, 2.5, 0.5)
	assert.Equal(t, 10.0, engine.Rate(4, 2))
	assert.Equal(t, 12.5, engine.Rate(4, 3))
}
