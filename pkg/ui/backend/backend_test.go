package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odvcencio/marquee/pkg/errors"
	"github.com/odvcencio/marquee/pkg/ui/theme"
)

func TestValidateRefreshRate(t *testing.T) {
	tests := []struct {
		fps     int
		wantErr bool
	}{
		{0, false},
		{30, false},
		{MaxRefreshRate, false},
		{-1, true},
		{MaxRefreshRate + 1, true},
	}
	for _, tt := range tests {
		err := ValidateRefreshRate(tt.fps)
		if tt.wantErr {
			assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid), "fps=%d", tt.fps)
		} else {
			assert.NoError(t, err, "fps=%d", tt.fps)
		}
	}
}

func TestStyleEffects(t *testing.T) {
	s := DefaultStyle().With(theme.EffectBold).With(theme.EffectReverse)
	assert.True(t, s.Effect.Has(theme.EffectBold|theme.EffectReverse))

	s = s.Without(theme.EffectBold)
	assert.False(t, s.Effect.Has(theme.EffectBold))
	assert.True(t, s.Effect.Has(theme.EffectReverse))

	pair := theme.ColorPair{Front: theme.ColorRed, Back: theme.ColorBlack}
	assert.Equal(t, pair, s.WithPair(pair).Pair)
	assert.Equal(t, theme.ColorDefault, DefaultStyle().Pair.Front)
}
