package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		input   string
		want    Channel
		wantErr bool
	}{
		{"dine-in", ChannelDineIn, false},
		{" Dine-In ", ChannelDineIn, false},
		{"dinein", ChannelDineIn, false},
		{"DINE_IN", ChannelDineIn, false},
		{"online", ChannelOnline, false},
		{"Online", ChannelOnline, false},
		{"delivery", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChannel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidChannel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionalChannel(t *testing.T) {
	c, err := ParseOptionalChannel("  ")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = ParseOptionalChannel("online")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, ChannelOnline, *c)

	_, err = ParseOptionalChannel("kiosk")
	assert.ErrorIs(t, err, ErrInvalidChannel)
}

func TestTargetChannels(t *testing.T) {
	assert.Equal(t, []Channel{ChannelDineIn, ChannelOnline}, TargetChannels(nil))
	online := ChannelOnline
	assert.Equal(t, []Channel{ChannelOnline}, TargetChannels(&online))
}

func TestChannelScopeAllows(t *testing.T) {
	assert.True(t, ChannelScopeAll.Allows(ChannelDineIn))
	assert.True(t, ChannelScopeAll.Allows(ChannelOnline))
	assert.True(t, ChannelScopeDineIn.Allows(ChannelDineIn))
	assert.False(t, ChannelScopeDineIn.Allows(ChannelOnline))
	assert.False(t, ChannelScopeOnline.Allows(ChannelDineIn))

	s, err := ParseChannelScope("")
	require.NoError(t, err)
	assert.Equal(t, ChannelScopeAll, s)
	s, err = ParseChannelScope("Dine In")
	require.NoError(t, err)
	assert.Equal(t, ChannelScopeDineIn, s)
}

func TestVisibility(t *testing.T) {
	v := DefaultVisibility()
	assert.True(t, v.For(ChannelDineIn))
	assert.True(t, v.For(ChannelOnline))

	v = v.With(ChannelOnline, false)
	assert.True(t, v.For(ChannelDineIn))
	assert.False(t, v.For(ChannelOnline))
	assert.True(t, v.Any())
	assert.False(t, v.With(ChannelDineIn, false).Any())
}

func TestOverlayState(t *testing.T) {
	s, err := ParseOverlayState("Removed")
	require.NoError(t, err)
	assert.Equal(t, OverlayRemoved, s)
	assert.False(t, s.IsSoft())
	assert.True(t, SoftState(true).IsSoft())
	assert.Equal(t, OverlaySoftOff, SoftState(false))

	_, err = ParseOverlayState("hidden")
	assert.ErrorIs(t, err, ErrInvalidOverlayState)
}
