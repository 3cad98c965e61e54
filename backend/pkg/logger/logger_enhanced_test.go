package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constants
const (
	testSQLQuery     = "SELECT * FROM users"
	testServiceName  = "test-service"
	testRequestID    = "req-123"
	testWorldID      = "world-012"
	testEntityID     = "npc-345"
	testAPIUsersPath = "/api/users"
	testSelectPrefix = "SELECT "
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.False(t, cfg.Pretty)
	assert.Equal(t, time.RFC3339Nano, cfg.TimeFormat)
	assert.True(t, cfg.CallerInfo)
	assert.True(t, cfg.StackTrace)
	assert.Equal(t, "stdout", cfg.Output)
	assert.Equal(t, float32(1.0), cfg.SamplingRate)
	assert.Equal(t, "worldforge-sim", cfg.ServiceName)
	assert.Equal(t, "development", cfg.Environment)
}

func TestNewV2(t *testing.T) {
	tests := getNewV2TestCases()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testNewV2Case(t, tt)
		})
	}
}

// getNewV2TestCases returns test cases for TestNewV2
func getNewV2TestCases() []struct {
	name      string
	config    ConfigV2
	wantError bool
	verify    func(t *testing.T, logger *LoggerV2, logOutput *bytes.Buffer)
} {
	return []struct {
		name      string
		config    ConfigV2
		wantError bool
		verify    func(t *testing.T, logger *LoggerV2, logOutput *bytes.Buffer)
	}{
		{
			name:   "default config",
			config: DefaultConfig(),
			verify: func(t *testing.T, logger *LoggerV2, _ *bytes.Buffer) {
				assert.NotNil(t, logger)
				assert.NotNil(t, logger.Logger)
			},
		},
		{
			name: "with custom fields",
			config: ConfigV2{
				Level:       "info",
				ServiceName: testServiceName,
				Environment: "test",
				Fields: Fields{
					"version": "1.0.0",
					"region":  "us-east-1",
				},
			},
			verify: func(t *testing.T, logger *LoggerV2, logOutput *bytes.Buffer) {
				logger.Info().Msg("test")

				var logEntry map[string]interface{}
				lines := strings.Split(strings.TrimSpace(logOutput.String()), "\n")
				require.NoError(t, json.Unmarshal([]byte(lines[0]), &logEntry))

				assert.Equal(t, testServiceName, logEntry["service"])
				assert.Equal(t, "test", logEntry["env"])
				assert.Equal(t, "1.0.0", logEntry["version"])
				assert.Equal(t, "us-east-1", logEntry["region"])
			},
		},
		{
			name: "invalid log level",
			config: ConfigV2{
				Level: "invalid",
			},
			verify: func(t *testing.T, logger *LoggerV2, _ *bytes.Buffer) {
				assert.NotNil(t, logger)
				assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
			},
		},
		{
			name: "with sampling",
			config: ConfigV2{
				Level:        "debug",
				SamplingRate: 0.5,
			},
			verify: func(t *testing.T, logger *LoggerV2, _ *bytes.Buffer) {
				assert.NotNil(t, logger)
			},
		},
		{
			name: "stderr output",
			config: ConfigV2{
				Level:  "info",
				Output: "stderr",
			},
			verify: func(t *testing.T, logger *LoggerV2, _ *bytes.Buffer) {
				assert.NotNil(t, logger)
			},
		},
	}
}

// testNewV2Case tests a single NewV2 test case
func testNewV2Case(t *testing.T, tt struct {
	name      string
	config    ConfigV2
	wantError bool
	verify    func(t *testing.T, logger *LoggerV2, logOutput *bytes.Buffer)
}) {
	var buf bytes.Buffer

	// Override output for testing
	if tt.config.Output == "" || tt.config.Output == "stdout" {
		tt.config.Output = "stdout"
	}

	logger, err := NewV2(&tt.config)
	if tt.wantError {
		assert.Error(t, err)
		return
	}

	require.NoError(t, err)
	setupTestLogger(logger, &buf, tt.config)
	tt.verify(t, logger, &buf)
}

// setupTestLogger configures the logger for testing
func setupTestLogger(logger *LoggerV2, buf *bytes.Buffer, config ConfigV2) {
	level, _ := zerolog.ParseLevel(config.Level)
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(buf).With().Timestamp().Logger().Level(level)
	if config.ServiceName != "" {
		zl = zl.With().Str("service", config.ServiceName).Logger()
	}
	if config.Environment != "" {
		zl = zl.With().Str("env", config.Environment).Logger()
	}
	for k, v := range config.Fields {
		zl = zl.With().Interface(k, v).Logger()
	}
	logger.Logger = &zl
}

func TestLoggerV2_WithContext(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Timestamp().Logger()
	logger := &LoggerV2{
		Logger: &zl,
		config: DefaultConfig(),
	}

	ctx := context.Background()
	ctx = context.WithValue(ctx, RequestIDKey, testRequestID)
	ctx = context.WithValue(ctx, CorrelationIDKey, "corr-456")
	ctx = context.WithValue(ctx, UserIDKey, "user-789")
	ctx = context.WithValue(ctx, WorldIDKey, testWorldID)
	ctx = context.WithValue(ctx, EntityIDKey, testEntityID)
	ctx = context.WithValue(ctx, ServiceKey, testServiceName)
	ctx = context.WithValue(ctx, MethodKey, "TestMethod")

	contextLogger := logger.WithContext(ctx)
	contextLogger.Info().Msg("context test")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, testRequestID, logEntry["request_id"])
	assert.Equal(t, "corr-456", logEntry["correlation_id"])
	assert.Equal(t, "user-789", logEntry["user_id"])
	assert.Equal(t, testWorldID, logEntry["world_id"])
	assert.Equal(t, testEntityID, logEntry["entity_id"])
	assert.Equal(t, testServiceName, logEntry["service"])
	assert.Equal(t, "TestMethod", logEntry["method"])
}

// testLoggerContext is a helper to test logger context methods
func testLoggerContext(t *testing.T, setupFunc func(*LoggerV2) *LoggerV2, logMsg string, expectedFields map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Timestamp().Logger()
	logger := &LoggerV2{
		Logger: &zl,
		config: DefaultConfig(),
	}

	testLogger := setupFunc(logger)
	testLogger.Info().Msg(logMsg)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	for field, expected := range expectedFields {
		assert.Equal(t, expected, logEntry[field], "field %s should match", field)
	}
}

func TestLoggerV2_WithOperation(t *testing.T) {
	testLoggerContext(t,
		func(l *LoggerV2) *LoggerV2 {
			return l.WithOperation("WorldService", "AdvanceTick")
		},
		"operation test",
		map[string]string{
			"service": "WorldService",
			"method":  "AdvanceTick",
		},
	)
}

func TestLoggerV2_WithSimContext(t *testing.T) {
	testLoggerContext(t,
		func(l *LoggerV2) *LoggerV2 {
			return l.WithSimContext("world-123", "npc-456")
		},
		"sim context test",
		map[string]string{
			"world_id":  "world-123",
			"entity_id": "npc-456",
		},
	)
}

func TestLoggerV2_LogHTTPRequest(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		statusCode  int
		duration    time.Duration
		fields      map[string]interface{}
		expectedMsg string
	}{
		{
			name:        "successful request",
			method:      "GET",
			path:        testAPIUsersPath,
			statusCode:  200,
			duration:    100 * time.Millisecond,
			expectedMsg: "HTTP request completed",
		},
		{
			name:        "redirect",
			method:      "GET",
			path:        "/old-path",
			statusCode:  301,
			duration:    50 * time.Millisecond,
			expectedMsg: "HTTP request redirected",
		},
		{
			name:        "client error",
			method:      "POST",
			path:        testAPIUsersPath,
			statusCode:  400,
			duration:    75 * time.Millisecond,
			expectedMsg: "HTTP request client error",
		},
		{
			name:        "server error",
			method:      "GET",
			path:        "/api/crash",
			statusCode:  500,
			duration:    200 * time.Millisecond,
			expectedMsg: "HTTP request failed",
		},
		{
			name:       "with additional fields",
			method:     "PUT",
			path:       "/api/users/123",
			statusCode: 200,
			duration:   80 * time.Millisecond,
			fields: map[string]interface{}{
				"user_id": "123",
				"action":  "update",
			},
			expectedMsg: "HTTP request completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			zl := zerolog.New(&buf).With().Timestamp().Logger()
			logger := &LoggerV2{
				Logger: &zl,
				config: DefaultConfig(),
			}

			if tt.fields != nil {
				logger.LogHTTPRequest(tt.method, tt.path, tt.statusCode, tt.duration, tt.fields)
			} else {
				logger.LogHTTPRequest(tt.method, tt.path, tt.statusCode, tt.duration)
			}

			var logEntry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

			assert.Equal(t, tt.method, logEntry["method"])
			assert.Equal(t, tt.path, logEntry["path"])
			assert.Equal(t, float64(tt.statusCode), logEntry["status"])
			assert.NotNil(t, logEntry["duration"])
			assert.Equal(t, tt.expectedMsg, logEntry["message"])

			if tt.fields != nil {
				for k, v := range tt.fields {
					assert.Equal(t, v, logEntry[k])
				}
			}
		})
	}
}

func TestLoggerV2_LogDatabaseQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		duration time.Duration
		err      error
		args     []interface{}
		verify   func(t *testing.T, logEntry map[string]interface{})
	}{
		{
			name:     "successful query",
			query:    "SELECT * FROM worlds WHERE id = $1",
			duration: 5 * time.Millisecond,
			args:     []interface{}{"world-123"},
			verify: func(t *testing.T, logEntry map[string]interface{}) {
				assert.Equal(t, "Database query executed", logEntry["message"])
				assert.Nil(t, logEntry["error"])
			},
		},
		{
			name:     "failed query",
			query:    "SELECT * FROM non_existent_table",
			duration: 2 * time.Millisecond,
			err:      assert.AnError,
			verify: func(t *testing.T, logEntry map[string]interface{}) {
				assert.Equal(t, "Database query failed", logEntry["message"])
				assert.Equal(t, assert.AnError.Error(), logEntry["error"])
			},
		},
		{
			name:     "long query truncation",
			query:    strings.Repeat(testSelectPrefix, 50) + "* FROM worlds",
			duration: 10 * time.Millisecond,
			verify: func(t *testing.T, logEntry map[string]interface{}) {
				query := logEntry["query"].(string)
				assert.True(t, strings.HasSuffix(query, "..."))
				assert.LessOrEqual(t, len(query), 203) // 200 + "..."
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			zl := zerolog.New(&buf).With().Timestamp().Logger()
			// Set to debug level to capture database queries
			zl = zl.Level(zerolog.DebugLevel)
			logger := &LoggerV2{
				Logger: &zl,
				config: DefaultConfig(),
			}

			logger.LogDatabaseQuery(tt.query, tt.duration, tt.err, tt.args...)

			// Check if buffer is empty (debug logs might be filtered)
			if buf.Len() == 0 {
				t.Skip("No log output generated - debug level might be filtered")
			}

			var logEntry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

			assert.NotNil(t, logEntry["query"])
			assert.NotNil(t, logEntry["duration"])
			assert.Equal(t, float64(len(tt.args)), logEntry["args_count"])

			tt.verify(t, logEntry)
		})
	}
}

func TestLoggerV2_LogTickSummary(t *testing.T) {
	tests := []struct {
		name       string
		softCapped bool
		expectMsg  string
	}{
		{name: "normal tick", softCapped: false, expectMsg: "tick completed"},
		{name: "soft capped tick", softCapped: true, expectMsg: "tick exceeded wall-clock soft cap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			zl := zerolog.New(&buf).With().Timestamp().Logger()
			logger := &LoggerV2{Logger: &zl, config: DefaultConfig()}

			logger.LogTickSummary(testWorldID, 7, 6, 3, 42*time.Millisecond, tt.softCapped)

			var logEntry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

			assert.Equal(t, testWorldID, logEntry["world_id"])
			assert.Equal(t, float64(7), logEntry["turn_index"])
			assert.Equal(t, float64(6), logEntry["hours_advanced"])
			assert.Equal(t, float64(3), logEntry["event_count"])
			assert.Equal(t, tt.softCapped, logEntry["soft_capped"])
			assert.Equal(t, tt.expectMsg, logEntry["message"])
		})
	}
}

func TestLoggerV2_LogWebSocketEvent(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Timestamp().Logger()
	// Set to debug level to capture WebSocket events
	zl = zl.Level(zerolog.DebugLevel)
	logger := &LoggerV2{
		Logger: &zl,
		config: DefaultConfig(),
	}

	eventData := map[string]interface{}{
		"action": "roll_dice",
		"result": 18,
	}

	logger.LogWebSocketEvent("dice_roll", "client-123", eventData)

	// Check if buffer is empty (debug logs might be filtered)
	if buf.Len() == 0 {
		t.Skip("No log output generated - debug level might be filtered")
	}

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "dice_roll", logEntry["event_type"])
	assert.Equal(t, "client-123", logEntry["client_id"])
	assert.Equal(t, "WebSocket event", logEntry["message"])

	data := logEntry["data"].(map[string]interface{})
	assert.Equal(t, "roll_dice", data["action"])
	assert.Equal(t, float64(18), data["result"])
}

func TestLoggerV2_LogWorldEvent(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Timestamp().Logger()
	logger := &LoggerV2{
		Logger: &zl,
		config: DefaultConfig(),
	}

	details := map[string]interface{}{
		"entity_id": "npc-123",
		"severity":  5,
		"actor":     "bandit-chief",
	}

	logger.LogWorldEvent("raid", testWorldID, details)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "raid", logEntry["event_type"])
	assert.Equal(t, testWorldID, logEntry["world_id"])
	assert.Equal(t, "world event dispatched", logEntry["message"])
	assert.Equal(t, "npc-123", logEntry["entity_id"])
	assert.Equal(t, float64(5), logEntry["severity"])
	assert.Equal(t, "bandit-chief", logEntry["actor"])
}

func TestTruncateQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "short query",
			input:    testSQLQuery,
			expected: testSQLQuery,
		},
		{
			name:     "query with newlines and tabs",
			input:    "SELECT\n\t*\n\tFROM\n\tusers",
			expected: testSQLQuery,
		},
		{
			name:     "long query",
			input:    strings.Repeat(testSelectPrefix, 50) + "* FROM users",
			expected: strings.Repeat(testSelectPrefix, 28) + "SELE...",
		},
		{
			name:     "query with multiple spaces",
			input:    "SELECT     *     FROM     users",
			expected: testSQLQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncateQuery(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(1)
	assert.Contains(t, caller, "logger_enhanced_test.go:")
	assert.Regexp(t, `logger_enhanced_test\.go:\d+`, caller)
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()

	// Test adding values to context
	ctx = ContextWithRequestID(ctx, testRequestID)
	ctx = ContextWithUserID(ctx, "user-456")
	ctx = ContextWithCorrelationID(ctx, "corr-789")
	ctx = ContextWithWorldID(ctx, testWorldID)
	ctx = ContextWithEntityID(ctx, testEntityID)

	// Test retrieving values from context
	assert.Equal(t, testRequestID, GetRequestIDFromContext(ctx))
	assert.Equal(t, "user-456", GetUserIDFromContext(ctx))
	assert.Equal(t, "corr-789", ctx.Value(CorrelationIDKey))
	assert.Equal(t, testWorldID, ctx.Value(WorldIDKey))
	assert.Equal(t, testEntityID, ctx.Value(EntityIDKey))

	// Test with empty context
	emptyCtx := context.Background()
	assert.Equal(t, "", GetRequestIDFromContext(emptyCtx))
	assert.Equal(t, "", GetUserIDFromContext(emptyCtx))
}

func TestLoggerV2_PrettyPrinting(t *testing.T) {
	cfg := ConfigV2{
		Level:       "info",
		Pretty:      true,
		TimeFormat:  time.RFC3339,
		ServiceName: "test-service",
	}

	logger, err := NewV2(&cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	// Pretty printing is harder to test without capturing console output
	// Just verify the logger was created successfully
}

func TestLoggerV2_CallerInfo(t *testing.T) {
	var buf bytes.Buffer
	cfg := ConfigV2{
		Level:      "info",
		CallerInfo: true,
	}

	logger, err := NewV2(&cfg)
	require.NoError(t, err)

	// Replace output for testing
	zl := zerolog.New(&buf).With().Timestamp().Caller().Logger()
	logger.Logger = &zl

	logger.Info().Msg("caller test")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Contains(t, logEntry, "caller")
}

func TestLoggerV2_EmptySimContext(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Timestamp().Logger()
	logger := &LoggerV2{
		Logger: &zl,
		config: DefaultConfig(),
	}

	// Test with empty world and entity IDs
	simLogger := logger.WithSimContext("", "")
	simLogger.Info().Msg("empty sim context")

	logOutput := buf.String()
	assert.NotContains(t, logOutput, "world_id")
	assert.NotContains(t, logOutput, "entity_id")
}

func BenchmarkLoggerV2_LogHTTPRequest(b *testing.B) {
	cfg := DefaultConfig()
	logger, _ := NewV2(&cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.LogHTTPRequest("GET", testAPIUsersPath, 200, 50*time.Millisecond)
	}
}

func BenchmarkLoggerV2_WithContext(b *testing.B) {
	cfg := DefaultConfig()
	logger, _ := NewV2(&cfg)

	ctx := context.Background()
	ctx = context.WithValue(ctx, RequestIDKey, "bench-req")
	ctx = context.WithValue(ctx, UserIDKey, "bench-user")
	ctx = context.WithValue(ctx, WorldIDKey, "bench-world")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.WithContext(ctx).Info().Msg("benchmark")
	}
}
