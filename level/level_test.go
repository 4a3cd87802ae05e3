package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gscroll/geom"
)

func TestDefaultLevel(t *testing.T) {
	lvl := Default()

	assert.Equal(t, "docks", lvl.Name)
	assert.Equal(t, 670.0, lvl.World.GroundY())
	require.NotEmpty(t, lvl.Platforms)
	assert.Equal(t, lvl.World.GroundY(), lvl.Platforms[0].Y, "first platform is the ground")
	assert.Len(t, lvl.Enemies, 4)
	assert.Equal(t, 479.0, lvl.Player.Start.Y)
	assert.Equal(t, 19.0, lvl.Player.JumpForce)
}

func TestParseKeepsDefaultsForOmittedSections(t *testing.T) {
	lvl, err := Parse([]byte(`
name: tiny
platforms:
  - {x: 0, y: 670, w: 500, h: 50}
finish: {x: 400, y: 600, w: 20, h: 70}
`))
	require.NoError(t, err)

	assert.Equal(t, 1280.0, lvl.World.ViewportWidth)
	assert.Equal(t, 6.0, lvl.Player.Speed)
	assert.Equal(t, []geom.Rect{{X: 0, Y: 670, W: 500, H: 50}}, lvl.Platforms)
	assert.Empty(t, lvl.Enemies)
}

func TestParseAllowsNoPlatforms(t *testing.T) {
	lvl, err := Parse([]byte("name: void\n"))
	require.NoError(t, err)
	assert.Empty(t, lvl.Platforms)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"inverted patrol": `
enemies:
  - box: {x: 10, y: 10, w: 10, h: 10}
    start_x: 50
    end_x: 20
`,
		"zero viewport": `
world: {viewport_width: 0, viewport_height: 720}
`,
		"negative platform": `
platforms:
  - {x: 0, y: 0, w: -1, h: 5}
`,
		"empty player": `
player:
  start: {x: 0, y: 0, w: 0, h: 0}
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("platforms: [oops"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\n"), 0o644))

	lvl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file", lvl.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
