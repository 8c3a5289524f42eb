package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load("testdata/empty.yaml")

	assert.Equal(t, 3001, c.App.HTTP.Port)
	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.Equal(t, "./data/data.db", c.DB.DSN)
	assert.Equal(t, "info", c.Log.Level)
	assert.EqualValues(t, 300, c.Limits.MaxConcurrent)
	assert.Zero(t, c.Limits.PerIPRPS) // 按 IP 限流默认关闭
}

func TestLoad_PlainEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4100")
	t.Setenv("DATABASE_PATH", ":memory:")

	c := Load("testdata/empty.yaml")
	assert.Equal(t, 4100, c.App.HTTP.Port)
	assert.Equal(t, ":memory:", c.DB.DSN)
}

func TestLoad_PrefixedEnvOverrides(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_DB_DRIVER", "postgres")

	c := Load("testdata/empty.yaml")
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "postgres", c.DB.Driver)
}

func TestLoad_FileValues(t *testing.T) {
	c := Load("testdata/override.yaml")
	assert.Equal(t, 9000, c.App.HTTP.Port)
	assert.Equal(t, "mysql", c.DB.Driver)
}
