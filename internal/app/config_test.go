package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyPlatformDefaults_DatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform/db")

	cfg := Config{Addr: "0.0.0.0:8080"}
	cfg.applyPlatformDefaults()

	assert.Equal(t, "postgres://platform/db", cfg.DatabaseURL)
}

func TestApplyPlatformDefaults_KeepsExplicitURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform/db")

	cfg := Config{Addr: "0.0.0.0:8080", DatabaseURL: "postgres://explicit/db"}
	cfg.applyPlatformDefaults()

	assert.Equal(t, "postgres://explicit/db", cfg.DatabaseURL)
}

func TestApplyPlatformDefaults_Port(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg := Config{Addr: "0.0.0.0:8080"}
	cfg.applyPlatformDefaults()

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr)
}

func TestApplyPlatformDefaults_PortIgnoredWhenAddrCustom(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg := Config{Addr: "127.0.0.1:3000"}
	cfg.applyPlatformDefaults()

	assert.Equal(t, "127.0.0.1:3000", cfg.Addr)
}
