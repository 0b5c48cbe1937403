package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DBTypeSQLite, cfg.InventoryDB.Type)
	assert.Equal(t, 25, cfg.InventoryDB.MaxOpenConns)
	assert.Equal(t, 100, cfg.Activity.MemorySize)
	assert.False(t, cfg.Activity.RedisEnabled)
	assert.False(t, cfg.Activity.KafkaEnabled())
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("INVENTORY_DB_TYPE", "PGX")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,,")
	t.Setenv("ACTIVITY_REDIS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.Server.Address())
	assert.Equal(t, DBTypePgx, cfg.InventoryDB.Type)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Activity.KafkaBrokers)
	assert.True(t, cfg.Activity.KafkaEnabled())
	assert.True(t, cfg.Activity.RedisEnabled)
	assert.Equal(t, 1024, cfg.Activity.QueueSize)
	assert.Equal(t, "localhost:6379", cfg.Activity.RedisAddress())
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("INVENTORY_DB_TYPE", "mongodb")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported INVENTORY_DB_TYPE")
}

func TestLoad_BlankBrokersDisableKafka(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", " , ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Activity.KafkaBrokers)
	assert.False(t, cfg.Activity.KafkaEnabled())
}

func TestDSNs(t *testing.T) {
	db := InventoryDBConfig{
		Host: "db", Name: "joyas", User: "u", Password: "p", SSLMode: "require",
	}
	assert.Equal(t, "postgres://u:p@db:5432/joyas?sslmode=require", db.PostgresDSN())
	assert.Equal(t, "u:p@tcp(db:3306)/joyas?parseTime=true", db.MySQLDSN())

	db.Port = 6543
	assert.Equal(t, "postgres://u:p@db:6543/joyas?sslmode=require", db.PostgresDSN())
}

func TestDSNs_EscapeCredentials(t *testing.T) {
	db := InventoryDBConfig{
		Host: "db", Name: "joyas", User: "inv@tory", Password: "p@ss/w:rd?", SSLMode: "disable",
	}

	u, err := url.Parse(db.PostgresDSN())
	require.NoError(t, err)
	pass, _ := u.User.Password()
	assert.Equal(t, "inv@tory", u.User.Username())
	assert.Equal(t, "p@ss/w:rd?", pass)
	assert.Equal(t, "db:5432", u.Host)
	assert.Equal(t, "/joyas", u.Path)

	parsed, err := mysql.ParseDSN(db.MySQLDSN())
	require.NoError(t, err)
	assert.Equal(t, "inv@tory", parsed.User)
	assert.Equal(t, "p@ss/w:rd?", parsed.Passwd)
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "joyas", parsed.DBName)
	assert.True(t, parsed.ParseTime)
}
