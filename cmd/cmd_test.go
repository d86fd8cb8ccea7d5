package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/niranjandahal/portfolio/internal/config"
)

func TestBuildCommand(t *testing.T) {
	chdir(t, t.TempDir())
	out := filepath.Join(t.TempDir(), "site")

	rootCmd.SetArgs([]string{"build", "--out", out})
	require.NoError(t, rootCmd.Execute())

	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.FileExists(t, filepath.Join(out, "static", "app.js"))
	assert.Equal(t, out, appConfig.OutputDir)
}

func TestServeStopsOnCancel(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, _, err := config.Load("")
	require.NoError(t, err)
	cfg.Port = "0"
	cfg.ReapInterval = 10 * time.Millisecond
	appConfig = cfg
	logger = zap.NewNop()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- runServer(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestMissingContentFileFails(t *testing.T) {
	chdir(t, t.TempDir())
	rootCmd.SetArgs([]string{"build"})
	t.Setenv("PORTFOLIO_CONTENTFILE", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, rootCmd.Execute())
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
