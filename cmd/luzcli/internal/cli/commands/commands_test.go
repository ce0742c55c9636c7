package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEngineWithoutConfigFileUsesBuiltinDefaults(t *testing.T) {
	g := &GlobalConfig{}
	e, err := g.loadEngine()
	require.NoError(t, err)
	assert.Equal(t, 0, e.GetCoatCount())
}

func TestLoadEngineMissingFileErrors(t *testing.T) {
	g := &GlobalConfig{Config: "/nonexistent/path/to/config"}
	_, err := g.loadEngine()
	assert.Error(t, err)
}

func TestMixCmdRunProducesNoError(t *testing.T) {
	g := &GlobalConfig{}
	cmd := &MixCmd{Levels: []float64{}}
	assert.NoError(t, cmd.Run(g))
}

func TestInfoCmdRunProducesNoError(t *testing.T) {
	g := &GlobalConfig{}
	cmd := &InfoCmd{}
	assert.NoError(t, cmd.Run(g))
}

func TestSeparateCmdWithZeroCoatsProducesNoError(t *testing.T) {
	g := &GlobalConfig{}
	cmd := &SeparateCmd{R: 0.5, G: 0.5, B: 0.5}
	assert.NoError(t, cmd.Run(g))
}

func TestFormatFloatsJoinsWithSpace(t *testing.T) {
	assert.Equal(t, "0.0000 1.0000", formatFloats([]float32{0, 1}))
}
