package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhq/staff-bot/internal/auth"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "cli-secret")

	out, err := execute(t, "token", "--subject", "dashboard", "--ttl", "2h")
	require.NoError(t, err)

	claims, err := auth.NewTokenManager("cli-secret", time.Hour).ParseToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "dashboard", claims.Subject)
	assert.True(t, claims.HasScope(auth.ScopeQueryRead))
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenCommandJSON(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "cli-secret")

	out, err := execute(t, "token", "--subject", "ops", "--json")
	require.NoError(t, err)

	var issued struct {
		Token   string `json:"token"`
		Subject string `json:"subject"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &issued))
	assert.Equal(t, "ops", issued.Subject)
	assert.NotEmpty(t, issued.Token)
}

func TestTokenCommandRequiresSubject(t *testing.T) {
	_, err := execute(t, "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subject")
}

func TestMigrateCommand(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "staff.db"))

	_, err := execute(t, "migrate")
	require.NoError(t, err)

	// a second run is a no-op
	_, err = execute(t, "migrate")
	require.NoError(t, err)
}

func TestMigrateCommandRejectsMissingDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "")

	_, err := execute(t, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
}

func TestServeRejectsInvalidConfig(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("BOT_DEV_PREFIX", "")

	_, err := execute(t, "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}
