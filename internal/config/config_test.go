package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/daily_weather.csv", cfg.DataFile)
	assert.Equal(t, 2008, cfg.YearStart)
	assert.Equal(t, 2017, cfg.YearEnd)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_FILE", "/tmp/seattle.csv")
	t.Setenv("YEAR_START", "2010")
	t.Setenv("YEAR_END", "2015")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/seattle.csv", cfg.DataFile)
	assert.Equal(t, 2010, cfg.YearStart)
	assert.Equal(t, 2015, cfg.YearEnd)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidYearRange(t *testing.T) {
	t.Setenv("YEAR_START", "2018")
	t.Setenv("YEAR_END", "2012")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidYearValue(t *testing.T) {
	t.Setenv("YEAR_START", "twenty-ten")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	assert.Error(t, err)
}
