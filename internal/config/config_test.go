package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledkit/neopixel/internal/config"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &config.Config{
		Pixels:      60,
		Mode:        "RGBW",
		Pin:         "SPI0.0",
		Brightness:  96,
		MatrixWidth: 12,
		FPS:         25,
		Demo:        "bargraph",
	}
	assert.NoError(t, config.Save(path, want))

	got, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
