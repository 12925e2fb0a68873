package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cannons/internal/config"
	"cannons/internal/raster"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, debug = "", false
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("320X200")
	require.NoError(t, err)
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)

	for _, bad := range []string{"320", "0x10", "ax10", ""} {
		_, _, err := parseSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseRect(t *testing.T) {
	vp, err := parseRect("50, 40, 10, 20")
	require.NoError(t, err)
	assert.Equal(t, raster.Rect{XMin: 10, YMin: 20, XMax: 50, YMax: 40}, vp)

	_, err = parseRect("1,2,3")
	assert.EqualError(t, err, `clip "1,2,3": want x0,y0,x1,y1`)
	_, err = parseRect("1,2,3,x")
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tri.wkt")
	require.NoError(t, os.WriteFile(src, []byte("POLYGON ((0 0, 10 0, 5 8, 0 0))\nPOINT (5 3)\n"), 0o644))
	out := filepath.Join(dir, "tri.png")

	stdout, err := run(t, "render", src, "-o", out, "--algo", "midpoint-aa", "--size", "64x48", "--scale", "2", "--clip", "0,0,40,40")
	require.NoError(t, err)
	assert.Equal(t, "wrote "+out+"\n", stdout)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 96, img.Bounds().Dy())

	_, err = run(t, "render", src, "-o", out, "--algo", "wu")
	assert.ErrorContains(t, err, `unknown line algorithm "wu"`)

	_, err = run(t, "render", filepath.Join(dir, "nope.shp"))
	assert.EqualError(t, err, "unsupported file type: .shp")
}

func TestSnapshot(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Width, cfg.Game.Height = 200, 150
	cfg.Game.CannonInset = 30
	cfg.Game.HillRadius = 30
	cfg.Render.Colors.Sky = config.MustColor("black")
	out := filepath.Join(t.TempDir(), "frame.png")

	require.NoError(t, snapshot(cfg, time.Unix(0, 0), snapshotOptions{out: out, ticks: 5, scale: 1}))
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 201, img.Bounds().Dx())
	assert.Equal(t, 151, img.Bounds().Dy())

	_, _, _, a := img.At(100, 20).RGBA()
	assert.Equal(t, uint32(0xffff), a, "opaque sky")
}

func TestConfigCommand(t *testing.T) {
	stdout, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[game]")
	assert.Contains(t, stdout, "fire_interval_ms = 1000")

	p := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(p, []byte("[game]\ntick_rate = 0\n"), 0o644))
	_, err = run(t, "config", "--config", p)
	assert.ErrorContains(t, err, "game.tick_rate")
}

func TestDebugLogError(t *testing.T) {
	orig := debugLog
	t.Cleanup(func() { debugLog = orig })
	debugLog = filepath.Join(t.TempDir(), "missing", "debug.log")

	_, err := run(t, "--debug")
	assert.ErrorContains(t, err, "debug log:")
}
