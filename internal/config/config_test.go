package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.local"
port = 5432
user = "rdv"
password = "secret"
dbname = "cfd_rdv"

[slots.formation]
start = "10:00"
end = "17:00"
duration_minutes = 60

[slots.livrables]
start = "09:00"
end = "12:00"
duration_minutes = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "10:00", cfg.Slots.Formation.Start)
	assert.Equal(t, 30, cfg.Slots.Livrables.DurationMinutes)
	assert.Contains(t, cfg.Database.DSN(), "host=db.local")
	assert.Contains(t, cfg.Database.DSN(), "dbname=cfd_rdv")
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "rdv"
dbname = "cfd_rdv"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "Europe/Paris", cfg.Business.Timezone)
	assert.Equal(t, GridConfig{Start: "09:00", End: "16:00", DurationMinutes: 60}, cfg.Slots.Formation)
	assert.Equal(t, GridConfig{Start: "09:00", End: "16:00", DurationMinutes: 30}, cfg.Slots.Livrables)

	loc, err := cfg.Business.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing database host",
			content: `
[database]
user = "rdv"
dbname = "cfd_rdv"
`,
		},
		{
			name: "bad timezone",
			content: `
[database]
host = "localhost"
user = "rdv"
dbname = "cfd_rdv"

[business]
timezone = "Mars/Olympus"
`,
		},
		{
			name: "grid start after end",
			content: `
[database]
host = "localhost"
user = "rdv"
dbname = "cfd_rdv"

[slots.formation]
start = "17:00"
end = "09:00"
duration_minutes = 60
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
