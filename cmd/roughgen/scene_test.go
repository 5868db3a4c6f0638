package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rough-gfx/rough"
)

const sampleScene = `
width = 400
height = 300
background = "white"

[options]
roughness = 1.5
stroke = "black"
seed = 42

[[shape]]
kind = "rectangle"
x = 10
y = 10
width = 100
height = 50

[[shape]]
kind = "circle"
x = 200
y = 100
diameter = 80

[shape.options]
fill = "#ff0000"
fill_style = "cross-hatch"

[[shape]]
kind = "path"
d = "M10 200 L100 200 L55 250 Z"
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScene(t *testing.T) {
	s, err := loadScene(writeScene(t, sampleScene))
	require.NoError(t, err)
	assert.Equal(t, 400.0, s.Width)
	assert.Equal(t, 300.0, s.Height)
	require.Len(t, s.Shapes, 3)
	assert.Equal(t, "rectangle", s.Shapes[0].Kind)
	require.NotNil(t, s.Options.Roughness)
	assert.Equal(t, 1.5, *s.Options.Roughness)
}

func TestLoadSceneDefaultsSize(t *testing.T) {
	s, err := loadScene(writeScene(t, `[[shape]]
kind = "line"
x = 0
y = 0
x2 = 10
y2 = 10
`))
	require.NoError(t, err)
	assert.Equal(t, 800.0, s.Width)
	assert.Equal(t, 600.0, s.Height)
}

func TestSceneDrawables(t *testing.T) {
	s, err := loadScene(writeScene(t, sampleScene))
	require.NoError(t, err)

	base := rough.NewOptions()
	require.NoError(t, s.Options.apply(base))
	assert.Equal(t, 1.5, base.Roughness)
	assert.Equal(t, uint64(42), base.Seed)

	gen := rough.NewGenerator(base)
	for i := range s.Shapes {
		d, err := s.Shapes[i].drawable(gen, base)
		require.NoError(t, err, "shape %d", i)
		assert.NotEmpty(t, d.Sets, "shape %d", i)
	}

	// The circle's per-shape fill override produces a fill set.
	circle, err := s.Shapes[1].drawable(gen, base)
	require.NoError(t, err)
	require.Len(t, circle.Sets, 2)
	assert.Equal(t, rough.FillSketch, circle.Sets[0].Kind)
}

func TestShapeUnknownKind(t *testing.T) {
	gen := rough.NewGenerator(nil)
	sh := sceneShape{Kind: "hexagram"}
	_, err := sh.drawable(gen, rough.NewOptions())
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("steelblue")
	require.NoError(t, err)
	assert.Equal(t, colorOf(0x46, 0x82, 0xb4), colorOf4(c))

	c, err = parseColor("#1a2b3c")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}, c)

	c, err = parseColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	c, err = parseColor("none")
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = parseColor("not-a-color")
	assert.Error(t, err)
}

func colorOf(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func colorOf4(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func TestParseFillStyle(t *testing.T) {
	style, err := parseFillStyle("dots")
	require.NoError(t, err)
	assert.Equal(t, rough.FillDots, style)

	_, err = parseFillStyle("plaid")
	assert.Error(t, err)
}
