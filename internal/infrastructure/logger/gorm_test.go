package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func traceFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_LogMode(t *testing.T) {
	gormLog := NewGormLogger(zap.NewNop(), gormlogger.Info, 0)
	newLogger := gormLog.LogMode(gormlogger.Warn)

	assert.Equal(t, gormlogger.Info, gormLog.logLevel)
	assert.Equal(t, gormlogger.Warn, newLogger.(*GormLogger).logLevel)
}

func TestGormLogger_Trace(t *testing.T) {
	t.Run("logs errors with request id", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gormLog := NewGormLogger(zap.New(core), gormlogger.Warn, time.Second)
		ctx := WithRequestID(context.Background(), zap.NewNop(), "req-1")

		gormLog.Trace(ctx, time.Now(), traceFn("INSERT INTO customers", 0), errors.New("unique violation"))

		entries := recorded.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, "SQL Error", entries[0].Message)
		assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	})

	t.Run("ignores record not found", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gormLog := NewGormLogger(zap.New(core), gormlogger.Info, 0)

		gormLog.Trace(context.Background(), time.Now(), traceFn("SELECT", 0), gormlogger.ErrRecordNotFound)

		for _, e := range recorded.All() {
			assert.NotEqual(t, "SQL Error", e.Message)
		}
	})

	t.Run("warns on slow queries", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gormLog := NewGormLogger(zap.New(core), gormlogger.Warn, time.Millisecond)

		gormLog.Trace(context.Background(), time.Now().Add(-time.Second), traceFn("SELECT", 3), nil)

		entries := recorded.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "Slow SQL", entries[0].Message)
		assert.Contains(t, entries[0].ContextMap(), "slow_threshold")
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gormLog := NewGormLogger(zap.New(core), gormlogger.Silent, 0)

		gormLog.Trace(context.Background(), time.Now(), traceFn("SELECT", 1), errors.New("x"))

		assert.Empty(t, recorded.All())
	})
}

func TestGormLogger_ParamsFilter(t *testing.T) {
	const sql = "SELECT * FROM customers WHERE cpf = $1"

	redacted, params := NewGormLogger(zap.NewNop(), gormlogger.Info, 0).ParamsFilter(context.Background(), sql, "12345678901")
	assert.Equal(t, sql, redacted)
	assert.Nil(t, params)

	_, params = NewGormLogger(zap.NewNop(), gormlogger.Info, 0, WithQueryValues()).ParamsFilter(context.Background(), sql, "12345678901")
	assert.Equal(t, []any{"12345678901"}, params)
}

func TestGormLogger_RedactsBoundValuesThroughGorm(t *testing.T) {
	loggedSQL := func(t *testing.T, opts ...GormOption) []string {
		core, recorded := observer.New(zapcore.DebugLevel)
		db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
			Logger: NewGormLogger(zap.New(core), gormlogger.Info, 0, opts...),
		})
		require.NoError(t, err)
		require.NoError(t, db.Exec("SELECT ?", "12345678901").Error)

		var stmts []string
		for _, e := range recorded.FilterMessage("SQL Query").All() {
			stmts = append(stmts, e.ContextMap()["sql"].(string))
		}
		require.NotEmpty(t, stmts)
		return stmts
	}

	for _, stmt := range loggedSQL(t) {
		assert.NotContains(t, stmt, "12345678901")
	}
	assert.Contains(t, loggedSQL(t, WithQueryValues()), `SELECT "12345678901"`)
}

func TestGormLogger_Printf(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	gormLog := NewGormLogger(zap.New(core), gormlogger.Warn, 0)
	ctx := WithRequestID(context.Background(), zap.NewNop(), "req-2")

	gormLog.Info(ctx, "skipped %d", 1)
	gormLog.Warn(ctx, "pool %s", "busy")
	gormLog.Error(ctx, "failed %s", "migration")

	entries := recorded.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "pool busy", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "req-2", entries[1].ContextMap()["request_id"])
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("unknown"))
}
