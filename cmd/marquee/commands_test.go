package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/entity"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 500, "500 B"},
		{"exactly 1KB", 1024, "1.0 KB"},
		{"1.5KB", 1536, "1.5 KB"},
		{"default cache bound", 50 << 20, "50.0 MB"},
		{"1GB", 1073741824, "1.0 GB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSize(tt.bytes); got != tt.want {
				t.Errorf("formatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}

func TestParseTitleArgs(t *testing.T) {
	kind, id, err := parseTitleArgs([]string{"Movie", "550"})
	require.NoError(t, err)
	assert.Equal(t, entity.KindMovie, kind)
	assert.Equal(t, int64(550), id)

	kind, _, err = parseTitleArgs([]string{"show", "1396"})
	require.NoError(t, err)
	assert.Equal(t, entity.KindTVShow, kind)

	_, _, err = parseTitleArgs([]string{"book", "1"})
	assert.ErrorIs(t, err, entity.ErrInvalidKind)

	_, _, err = parseTitleArgs([]string{"movie", "-3"})
	assert.ErrorContains(t, err, "invalid id")
}

func TestTTLOverrides(t *testing.T) {
	got := ttlOverrides(map[string]time.Duration{"movies_popular": time.Hour})
	assert.Equal(t, map[cache.Kind]time.Duration{cache.MovieList("popular"): time.Hour}, got)

	policy := cache.DefaultPolicy().WithOverrides(got)
	assert.Equal(t, time.Hour, policy.TTL(cache.MovieList("popular")))
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[database]
path = "` + filepath.Join(dir, "data", "marquee.db") + `"

[tmdb]
api_key = "test-key"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestOpenStorage_SQLite(t *testing.T) {
	cfg, err := config.Load(writeTestConfig(t))
	require.NoError(t, err)
	ctx := context.Background()

	st, err := openStorage(ctx, cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, st.cache.Set(ctx, cache.IDKey(cache.KindGenres, 1), []string{"Drama"}, 0))
	require.NoError(t, st.entities.UpsertBasic(ctx, entity.KindMovie, 550, entity.BasicFields{Title: entity.Ptr("Fight Club")}))
	require.NoError(t, st.Close())

	st, err = openStorage(ctx, cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer st.Close()
	assert.Equal(t, 1, st.cache.Len())
	rec, err := st.entities.Get(ctx, entity.KindMovie, 550)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", rec.Title)
}

func TestOpenApp_AIDisabled(t *testing.T) {
	cfg, err := config.Load(writeTestConfig(t))
	require.NoError(t, err)

	a, err := openApp(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer a.Close()

	assert.False(t, a.catalog.InsightsEnabled())
	assert.True(t, a.gate.Online(), "gate assumes online until the first probe")
}

func TestConfigCheck(t *testing.T) {
	path := writeTestConfig(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "check", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Configuration valid!")
	assert.Contains(t, out.String(), "sqlite")
}

func TestConfigCheck_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nport = 70000\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "check", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, out.String(), "server.port")
	assert.Contains(t, out.String(), "tmdb.api_key")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marquee", "config.toml")
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "init", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	_, err := os.Stat(path)
	require.NoError(t, err)

	rootCmd.SetArgs([]string{"config", "init", path})
	assert.ErrorContains(t, rootCmd.Execute(), "already exists")
}

func TestConfigInit_Resolved(t *testing.T) {
	src := writeTestConfig(t)
	t.Setenv("MARQUEE_SERVER_PORT", "9191")
	dst := filepath.Join(t.TempDir(), "resolved.toml")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", src, "config", "init", "--resolved", dst})
	t.Cleanup(func() {
		configPath = ""
		_ = configInitCmd.Flags().Set("resolved", "false")
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	require.NoError(t, os.Unsetenv("MARQUEE_SERVER_PORT"))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := config.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port, "env override is baked into the written file")
	assert.Equal(t, "test-key", cfg.TMDB.APIKey)
}
