package urlkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"sync"
	"text/template"
	"time"
)

// LoggerEnabled indicates whether to enable the logger.
var LoggerEnabled = false

// LoggerLowestLevel is the lowest level of the logger. Entries below it are
// discarded.
var LoggerLowestLevel = LoggerLevelInfo

// LoggerFormat is the format of the output content of the logger.
var LoggerFormat = `{"app_name":"urlkit","time":"{{.time_rfc3339}}",` +
	`"level":"{{.level}}","file":"{{.short_file}}","line":"{{.line}}"}`

// LoggerOutput is the output of the logger.
var LoggerOutput = io.Writer(os.Stdout)

// LoggerLevel is the level of the logger.
type LoggerLevel uint8

// The logger levels.
const (
	LoggerLevelDebug LoggerLevel = iota
	LoggerLevelInfo
	LoggerLevelWarn
	LoggerLevelError
	LoggerLevelOff
)

// String returns the string value of the ll.
func (ll LoggerLevel) String() string {
	switch ll {
	case LoggerLevelDebug:
		return "debug"
	case LoggerLevelInfo:
		return "info"
	case LoggerLevelWarn:
		return "warn"
	case LoggerLevelError:
		return "error"
	}

	return "off"
}

// DEBUG logs the msg at the DEBUG level with the optional extras.
func DEBUG(msg string, extras ...map[string]interface{}) {
	theLogger.log(LoggerLevelDebug, msg, extras...)
}

// INFO logs the msg at the INFO level with the optional extras.
func INFO(msg string, extras ...map[string]interface{}) {
	theLogger.log(LoggerLevelInfo, msg, extras...)
}

// WARN logs the msg at the WARN level with the optional extras.
func WARN(msg string, extras ...map[string]interface{}) {
	theLogger.log(LoggerLevelWarn, msg, extras...)
}

// ERROR logs the msg at the ERROR level with the optional extras.
func ERROR(msg string, extras ...map[string]interface{}) {
	theLogger.log(LoggerLevelError, msg, extras...)
}

// logger is used to log information generated in the runtime.
type logger struct {
	mutex    *sync.Mutex
	template *template.Template
	format   string
}

// theLogger is the singleton of the `logger`.
var theLogger = &logger{
	mutex: &sync.Mutex{},
}

// log logs the msg at the level with the optional extras.
func (l *logger) log(
	level LoggerLevel,
	msg string,
	extras ...map[string]interface{},
) {
	if !LoggerEnabled || level < LoggerLowestLevel {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.template == nil || l.format != LoggerFormat {
		t, err := template.New("logger").Parse(LoggerFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "urlkit: invalid logger format: %v\n", err)
			return
		}

		l.template = t
		l.format = LoggerFormat
	}

	_, file, line, _ := runtime.Caller(2)

	values := map[string]interface{}{
		"time_rfc3339": time.Now().UTC().Format(time.RFC3339),
		"level":        level.String(),
		"short_file":   path.Base(file),
		"long_file":    file,
		"line":         strconv.Itoa(line),
	}

	buf := &bytes.Buffer{}
	if err := l.template.Execute(buf, values); err != nil {
		return
	}

	fields := map[string]interface{}{}
	for _, extra := range extras {
		for k, v := range extra {
			fields[k] = v
		}
	}

	if i := buf.Len() - 1; i >= 0 && buf.Bytes()[i] == '}' { // JSON
		buf.Truncate(i)

		m, _ := json.Marshal(msg)
		buf.WriteString(`,"message":`)
		buf.Write(m)

		for k, v := range fields {
			kb, _ := json.Marshal(k)
			vb, err := json.Marshal(v)
			if err != nil {
				vb, _ = json.Marshal(fmt.Sprint(v))
			}

			buf.WriteByte(',')
			buf.Write(kb)
			buf.WriteByte(':')
			buf.Write(vb)
		}

		buf.WriteByte('}')
	} else { // Text
		buf.WriteByte(' ')
		buf.WriteString(msg)
		for k, v := range fields {
			fmt.Fprintf(buf, " %s=%v", k, v)
		}
	}

	buf.WriteByte('\n')

	LoggerOutput.Write(buf.Bytes())
}
