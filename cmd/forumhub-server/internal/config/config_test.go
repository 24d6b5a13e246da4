package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "forumhub.db", cfg.Database.Database)
	assert.Equal(t, "forumhub_", cfg.Database.Prefix)
	assert.Equal(t, 5, cfg.Database.ConnectAttempts)
	assert.Equal(t, "forumhub", cfg.Auth.Issuer)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "short secret", env: map[string]string{"JWT_SECRET": "short"}},
		{name: "unknown driver", env: map[string]string{"JWT_SECRET": "0123456789abcdef", "DB_DRIVER": "oracle"}},
		{name: "mysql without password", env: map[string]string{"JWT_SECRET": "0123456789abcdef", "DB_DRIVER": "mysql"}},
		{name: "bad log level", env: map[string]string{"JWT_SECRET": "0123456789abcdef", "LOG_LEVEL": "verbose"}},
		{name: "tiny ttl", env: map[string]string{"JWT_SECRET": "0123456789abcdef", "JWT_TTL": "1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("JWT_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	unsetEnv(t, "JWT_SECRET", "SERVER_PORT")
	writeFile(t, dir+"/.env", "JWT_SECRET=from-dotenv-0123456789\nSERVER_PORT=7070\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv-0123456789", cfg.Auth.Secret)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "mysql",
			cfg:  DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, User: "u", Password: "p", Database: "forum"},
			want: "u:p@tcp(db:3306)/forum?parseTime=true&loc=UTC",
		},
		{
			name: "postgres",
			cfg:  DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", Database: "forum"},
			want: "host=db port=5432 user=u password=p dbname=forum sslmode=disable",
		},
		{
			name: "sqlite3",
			cfg:  DatabaseConfig{Driver: "sqlite3", Database: "/tmp/forum.db"},
			want: "/tmp/forum.db?_foreign_keys=on&_busy_timeout=5000",
		},
		{
			name: "unknown",
			cfg:  DatabaseConfig{Driver: "oracle"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.GetDSN())
		})
	}
}
