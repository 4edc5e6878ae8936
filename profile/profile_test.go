package profile

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, o := range Opts {
		got, err := Parse(string(o))
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	got, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, None, got)

	_, err = Parse("heap")
	assert.Error(t, err)
}

func TestNewProfiler(t *testing.T) {
	none := None.NewProfiler(zerolog.Nop())
	assert.Nil(t, none.Starter)
	none.Start()
	none.Stop()

	gio := Gio.NewProfiler(zerolog.Nop())
	assert.NotNil(t, gio.Recorder)
	assert.NotNil(t, CPU.NewProfiler(zerolog.Nop()).Starter)
}
