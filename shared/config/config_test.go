package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPublic = `access_token_age: 3h
log_level: debug
log_json: true
cors_allowed_origins: ["http://localhost:3000"]
login_rate_per_second: 1
login_burst: 5
thread_rate_per_second: 0.5
thread_burst: 3
`

const validPrivate = `access_token_key: 'access'
refresh_token_key: 'refresh'
pg:
  host: localhost
  port: 5432
  user: forum
  password: secret
  dbname: forumapi
`

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	cfg := MustLoad(writeConfig(t, validPublic, validPrivate))

	assert.Equal(t, 3*time.Hour, cfg.AccessTokenAge())
	assert.Equal(t, "access", cfg.AccessTokenKey())
	assert.Equal(t, "refresh", cfg.RefreshTokenKey())
	assert.Equal(t, "debug", cfg.Public.LogLevel)
	assert.True(t, cfg.Public.LogJSON)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Public.CorsAllowedOrigins)
	assert.Equal(t, 1.0, cfg.Public.LoginRatePerSecond)
	assert.Equal(t, 5, cfg.Public.LoginBurst)
	assert.Equal(t, 0.5, cfg.Public.ThreadRatePerSecond)
	assert.Equal(t, 3, cfg.Public.ThreadBurst)
	assert.Equal(t, 5432, cfg.Private.Pg.Port)
	assert.Equal(t, "forumapi", cfg.Private.Pg.Dbname)
}

func TestMustLoad_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		public  string
		private string
	}{
		{
			name:    "missing access token age",
			public:  "login_rate_per_second: 1\nlogin_burst: 5\nthread_rate_per_second: 1\nthread_burst: 1\n",
			private: validPrivate,
		},
		{
			name:    "missing thread limit",
			public:  "access_token_age: 3h\nlogin_rate_per_second: 1\nlogin_burst: 5\n",
			private: validPrivate,
		},
		{
			name:    "missing refresh key",
			public:  validPublic,
			private: "access_token_key: 'access'\npg:\n  host: localhost\n  port: 5432\n  user: forum\n  password: secret\n  dbname: forumapi\n",
		},
		{
			name:    "missing pg host",
			public:  validPublic,
			private: "access_token_key: 'a'\nrefresh_token_key: 'r'\npg:\n  port: 5432\n  user: forum\n  password: secret\n  dbname: forumapi\n",
		},
		{
			name:    "unknown field",
			public:  validPublic + "jwt_ttl: 1\n",
			private: validPrivate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.public, tt.private)
			assert.Panics(t, func() { MustLoad(dir) })
		})
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(validPublic), 0o600))

	assert.PanicsWithValue(t, "config file does not exist: "+filepath.Join(dir, "private.yaml"), func() { MustLoad(dir) })
}
