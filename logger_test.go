package urlkit

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLog(t *testing.T) {
	buf := bytes.Buffer{}
	oldOutput := LoggerOutput
	LoggerOutput = &buf
	defer func() {
		LoggerEnabled = false
		LoggerLowestLevel = LoggerLevelInfo
		LoggerOutput = oldOutput
	}()

	LoggerEnabled = false

	buf.Reset()
	INFO("foo")
	assert.Empty(t, buf.String())

	LoggerEnabled = true
	LoggerLowestLevel = LoggerLevelDebug

	buf.Reset()
	DEBUG("foo")
	assert.NotEmpty(t, buf.String())

	LoggerLowestLevel = LoggerLevelInfo

	buf.Reset()
	DEBUG("foo")
	assert.Empty(t, buf.String())

	buf.Reset()
	WARN("foo", map[string]interface{}{
		"bar": "baz",
	})

	m := map[string]interface{}{}
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "urlkit", m["app_name"])
	assert.Equal(t, "warn", m["level"])
	assert.Equal(t, "logger_test.go", m["file"])
	assert.Equal(t, "foo", m["message"])
	assert.Equal(t, "baz", m["bar"])

	buf.Reset()
	ERROR(`"quoted"`)
	m = map[string]interface{}{}
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, `"quoted"`, m["message"])
}

func TestLoggerTextFormat(t *testing.T) {
	buf := bytes.Buffer{}
	oldOutput, oldFormat := LoggerOutput, LoggerFormat
	LoggerEnabled = true
	LoggerOutput = &buf
	LoggerFormat = "[{{.level}}]"
	defer func() {
		LoggerEnabled = false
		LoggerOutput = oldOutput
		LoggerFormat = oldFormat
	}()

	INFO("foo", map[string]interface{}{
		"bar": 1,
	})
	assert.Equal(t, "[info] foo bar=1\n", buf.String())
}

func TestLoggerLevelString(t *testing.T) {
	assert.Equal(t, "debug", LoggerLevelDebug.String())
	assert.Equal(t, "info", LoggerLevelInfo.String())
	assert.Equal(t, "warn", LoggerLevelWarn.String())
	assert.Equal(t, "error", LoggerLevelError.String())
	assert.Equal(t, "off", LoggerLevelOff.String())
	assert.Equal(t, "off", LoggerLevel(255).String())
}
