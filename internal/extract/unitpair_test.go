package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

func TestParseUnitPair(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		fallback UnitFallback
		want     entity.UnitPair
	}{
		{"full pair", "0.0320 (0.813)", FallbackZero, entity.UnitPair{US: 0.0320, Metric: 0.813}},
		{"pair with spacing", "4.6  (6.8)", FallbackZero, entity.UnitPair{US: 4.6, Metric: 6.8}},
		{"bare number zero fallback", "9.88", FallbackZero, entity.UnitPair{US: 9.88, Metric: 0}},
		{"bare number divide fallback", "0.150", FallbackDivide254, entity.UnitPair{US: 0.150, Metric: 0.150 / 25.4}},
		{"garbage", "n/a", FallbackZero, entity.ZeroUnitPair},
		{"garbage divide fallback", "---", FallbackDivide254, entity.ZeroUnitPair},
		{"empty", "", FallbackZero, entity.ZeroUnitPair},
		{"trailing text ignored", "0.115 (2.92) typ", FallbackZero, entity.UnitPair{US: 0.115, Metric: 2.92}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseUnitPair(tt.token, tt.fallback)
			assert.InDelta(t, tt.want.US, got.US, 1e-9)
			assert.InDelta(t, tt.want.Metric, got.Metric, 1e-9)
		})
	}
}
