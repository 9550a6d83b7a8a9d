package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"seehuhn.de/go/badge"
	"seehuhn.de/go/badge/progress"
)

// testApp wires an App backed by an in-memory database.
func testApp(t *testing.T) *App {
	t.Helper()
	db, err := progress.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &App{
		Store:  progress.NewSQLiteStore(db),
		Config: badge.DefaultConfig(),
		Log:    zap.NewNop(),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- check / uncheck ---

func TestCheckCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "check", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Code + Techniek: Gebruik alleen efficiënte scripts")
	assert.Contains(t, out, "level 1/3")

	checked, err := app.Store.Get(context.Background(), progress.Key{Item: 0, Category: 1})
	require.NoError(t, err)
	assert.True(t, checked)
}

func TestUncheckCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "check", "3", "5")
	require.NoError(t, err)
	out, err := executeCmd(t, app, "uncheck", "3", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "level 0/3")

	checked, err := app.Store.Get(context.Background(), progress.Key{Item: 2, Category: 4})
	require.NoError(t, err)
	assert.False(t, checked)
}

func TestCheckCmd_Invalid(t *testing.T) {
	app := testApp(t)

	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"not_a_number", []string{"check", "x", "1"}, "invalid item"},
		{"bad_category", []string{"check", "1", "y"}, "invalid category"},
		{"item_range", []string{"check", "4", "1"}, "out of range"},
		{"category_range", []string{"check", "1", "6"}, "out of range"},
		{"zero", []string{"check", "0", "1"}, "out of range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := executeCmd(t, app, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}

	_, err := executeCmd(t, app, "check", "1")
	assert.Error(t, err, "missing argument accepted")
}

func TestCheckCmd_AllDone(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	for c := range 5 {
		for i := range 3 {
			if c == 4 && i == 2 {
				continue
			}
			require.NoError(t, app.Store.Set(ctx, progress.Key{Item: i, Category: c}, true))
		}
	}

	out, err := executeCmd(t, app, "check", "3", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "All items done!")
}

// --- status ---

func TestStatusCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "check", "2", "1")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)

	assert.Contains(t, out, "1. Content + UX")
	assert.Contains(t, out, "[x] 2 Heldere navigatie & formulieren")
	assert.Contains(t, out, "[ ] 1 Minimaliseer niet-essentiële content")
	assert.Contains(t, out, "5. Typografie + Kleur")
	assert.Contains(t, out, "0 of 5 categories complete")
	assert.Equal(t, 5+15+1, strings.Count(out, "\n"))
}

// --- reset ---

func TestResetCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "check", "1", "1")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	checked, err := app.Store.Get(context.Background(), progress.Key{})
	require.NoError(t, err)
	assert.True(t, checked, "reset without --yes cleared the store")

	out, err := executeCmd(t, app, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Checklist cleared.")

	checked, err = app.Store.Get(context.Background(), progress.Key{})
	require.NoError(t, err)
	assert.False(t, checked)
}

// --- render ---

func TestRenderCmd_SVGToStdout(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "render", "--seed", "7", "--focus", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Equal(t, 15, strings.Count(out, `<g id="slice-`))
	assert.Contains(t, out, `rotate(-108 300 300)`)

	again, err := executeCmd(t, app, "render", "--seed", "7", "--focus", "2")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed gave different output")
}

func TestRenderCmd_NoiseTexture(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "render", "--texture", "noise", "--seed", "3")
	require.NoError(t, err)
	again, err := executeCmd(t, app, "render", "--texture", "noise", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	_, err = executeCmd(t, app, "render", "--texture", "plaid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown texture")
}

func TestRenderCmd_Files(t *testing.T) {
	app := testApp(t)
	dir := t.TempDir()

	cases := []struct {
		name   string
		args   []string
		file   string
		prefix string
	}{
		{"svg", nil, "badge.svg", "<svg "},
		{"png", nil, "badge.png", "\x89PNG"},
		{"pdf", nil, "badge.pdf", "%PDF-"},
		{"explicit_format", []string{"--format", "png"}, "badge.out", "\x89PNG"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fname := filepath.Join(dir, tc.file)
			args := append([]string{"render", "--out", fname}, tc.args...)
			_, err := executeCmd(t, app, args...)
			require.NoError(t, err)

			data, err := os.ReadFile(fname)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte(tc.prefix)), "wrong file type: %.8q", data)
		})
	}
}

func TestRenderCmd_Errors(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }

	_, err := executeCmd(t, app, "render", "--format", "gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	_, err = executeCmd(t, app, "render", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--out")

	_, err = executeCmd(t, app, "render", "--format", "png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")

	_, err = executeCmd(t, app, "render", "--focus", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

// --- config ---

func TestConfigCmd_RoundTrip(t *testing.T) {
	app := testApp(t)
	app.Config.Mesh = badge.MeshRebuild
	app.Config.Gap = 2

	out, err := executeCmd(t, app, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "mesh: rebuild")

	cfg, err := badge.LoadConfig(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, app.Config, cfg)
}

func TestConfigFlag(t *testing.T) {
	app := testApp(t)
	fname := filepath.Join(t.TempDir(), "badge.yaml")
	require.NoError(t, os.WriteFile(fname, []byte("size: 300\nradius: 140\n"), 0o644))

	out, err := executeCmd(t, app, "--config", fname, "render")
	require.NoError(t, err)
	assert.Contains(t, out, `viewBox="0 0 300 300"`)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("size: [\n"), 0o644))
	_, err = executeCmd(t, app, "--config", bad, "status")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "status")
	assert.Error(t, err)
}
