package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		user, pass string
		want       string
	}{
		{
			name: "native dsn untouched",
			in:   "root:secret@tcp(127.0.0.1:3306)/app?parseTime=true",
			want: "root:secret@tcp(127.0.0.1:3306)/app?parseTime=true",
		},
		{
			name: "url with credentials",
			in:   "mysql://root:secret@db:3306/app",
			want: "root:secret@tcp(db:3306)/app?charset=utf8mb4&parseTime=true",
		},
		{
			name: "jdbc params translated",
			in:   "jdbc:mysql://db:3306/app?useUnicode=true&characterEncoding=utf8&useSSL=false&serverTimezone=UTC",
			want: "tcp(db:3306)/app?charset=utf8&loc=UTC&parseTime=true&tls=false",
		},
		{
			name: "overrides win",
			in:   "mysql://a:b@db:3306/app?user=c&password=d",
			user: "admin",
			pass: "pw",
			want: "admin:pw@tcp(db:3306)/app?charset=utf8mb4&parseTime=true",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeMySQLDSN(tt.in, tt.user, tt.pass))
		})
	}
}

func TestNewGorm_UnsupportedDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "oracle"})
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewGorm_SQLite(t *testing.T) {
	db, err := NewGorm(Opts{
		Driver:       "sqlite",
		DSN:          "file:gorm_test?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, sqlDB.Ping())
}
