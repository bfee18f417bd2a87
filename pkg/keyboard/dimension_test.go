package keyboard

import "testing"

func TestDimensionResolve(t *testing.T) {
	tests := map[string]struct {
		dim      Dimension
		base     int
		fallback int
		want     int
	}{
		"absent uses fallback": {
			dim: Dimension{}, base: 100, fallback: 32, want: 32,
		},
		"absolute pixels": {
			dim: Pixels(48), base: 100, fallback: 32, want: 48,
		},
		"fraction of base": {
			dim: Fraction(0.10), base: 320, fallback: 32, want: 32,
		},
		"fraction rounds": {
			dim: Fraction(0.125), base: 100, fallback: 0, want: 13,
		},
		"fraction of zero base": {
			dim: Fraction(0.5), base: 0, fallback: 7, want: 0,
		},
		"unknown kind uses fallback": {
			dim: Dimension{Kind: DimensionKind(99), Value: 12}, base: 100, fallback: 5, want: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.dim.Resolve(tt.base, tt.fallback); got != tt.want {
				t.Errorf("Resolve(%d, %d) = %d, want %d", tt.base, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestHeightTierMultiplier(t *testing.T) {
	tests := map[string]struct {
		tier HeightTier
		want float64
	}{
		"small":   {HeightSmall, 1.0},
		"medium":  {HeightMedium, 1.2},
		"large":   {HeightLarge, 1.4},
		"unknown": {HeightTier(42), 1.0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.tier.Multiplier(); got != tt.want {
				t.Errorf("Multiplier() = %v, want %v", got, tt.want)
			}
		})
	}
}
