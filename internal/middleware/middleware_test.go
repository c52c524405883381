package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResponseWriterWriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newResponseWriter(w)

	if rw.statusCode != http.StatusOK {
		t.Errorf("Expected default status code 200, got %d", rw.statusCode)
	}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("Expected status code 404, got %d", rw.statusCode)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected recorder code 404, got %d", w.Code)
	}
}

func TestResponseWriterWrite(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newResponseWriter(w)

	n, err := rw.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if rw.bytesWritten != 5 {
		t.Errorf("Expected 5 bytes written, got %d", rw.bytesWritten)
	}
	if !rw.wroteHeader {
		t.Error("Expected wroteHeader after Write")
	}
}

func TestLoggerMiddleware(t *testing.T) {
	var lines []string
	config := LoggingConfig{
		Logf: func(format string, args ...interface{}) {
			lines = append(lines, fmt.Sprintf(format, args...))
		},
	}

	handler := Logger(config)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	}))

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("User-Agent", "Prometheus/2.0 \x1b[31m\nforged")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d", len(lines))
	}
	line := lines[0]
	for _, want := range []string{" GET /metrics 418 4 ", `"Prometheus/2.0 [31m forged"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
	if strings.ContainsAny(line, "\n\x1b") {
		t.Errorf("log line contains control characters: %q", line)
	}
}

func TestLoggerSkipsHealthChecks(t *testing.T) {
	tests := []struct {
		name            string
		logHealthChecks bool
		want            int
	}{
		{"skipped by default", false, 0},
		{"logged when enabled", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := 0
			config := LoggingConfig{
				LogHealthChecks: tt.logHealthChecks,
				Logf:            func(string, ...interface{}) { count++ },
			}
			handler := Logger(config)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

			if count != tt.want {
				t.Errorf("Expected %d log lines, got %d", tt.want, count)
			}
		})
	}
}

func TestDefaultLoggingConfig(t *testing.T) {
	config := DefaultLoggingConfig()
	if config.LogHealthChecks {
		t.Error("Expected health checks to be skipped by default")
	}
	if config.Logf == nil {
		t.Error("Expected a default Logf")
	}
}

func TestSanitizeLogField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Prometheus/2.0", "Prometheus/2.0"},
		{"newline forging", "a\r\nb", "a  b"},
		{"ansi escape", "\x1b[31mred", "[31mred"},
		{"null and delete", "a\x00b\x7fc", "abc"},
		{"tab kept", "a\tb", "a\tb"},
		{"bell stripped", "a\x07b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogField(tt.in); got != tt.want {
				t.Errorf("sanitizeLogField(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeW3CField(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"curl/8.0", "curl/8.0"},
		{"a b", `"a b"`},
		{`say "hi"`, `"say ""hi"""`},
	}
	for _, tt := range tests {
		if got := escapeW3CField(tt.in); got != tt.want {
			t.Errorf("escapeW3CField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
