package postgres

import (
	"spa/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataSourceName(t *testing.T) {
	tests := []struct {
		name   string
		target target
		want   string
	}{
		{
			name:   "defaults to UTC session",
			target: target{username: "spa", password: "secret", host: "db", port: "5432", dbName: "spa", sslMode: "disable"},
			want:   "postgres://spa:secret@db:5432/spa?sslmode=disable&timezone=UTC",
		},
		{
			name:   "escapes credentials",
			target: target{username: "spa", password: "p@ss/word", host: "db", port: "5432", dbName: "spa", sslMode: "require", timezone: "Asia/Makassar"},
			want:   "postgres://spa:p%40ss%2Fword@db:5432/spa?sslmode=require&timezone=Asia%2FMakassar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.dataSourceName())
		})
	}
}

func TestDBName(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, "spa", DBName(cfg, "spa"))

	cfg.DB.Postgres.Prefix = "test_"
	assert.Equal(t, "test_spa", DBName(cfg, "spa"))
}
