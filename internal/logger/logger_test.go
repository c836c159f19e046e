package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("INFO")

	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DEBUG},
		{"debug", DEBUG},
		{"INFO", INFO},
		{"WARN", WARN},
		{"WARNING", WARN},
		{"ERROR", ERROR},
		{"FATAL", FATAL},
		{"INVALID", INFO}, // Should default to INFO
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			SetLevel(test.input)
			if GetLevel() != test.expected {
				t.Errorf("SetLevel(%s): expected %v, got %v", test.input, test.expected, GetLevel())
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel("WARN")
	defer SetLevel("INFO")

	Debugf("debug message")
	Infof("info message")
	Warnf("warn message")
	Errorf("error message")

	output := buf.String()

	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("Expected messages below WARN to be suppressed, got: %s", output)
	}

	if !strings.Contains(output, "[WARN] warn message") {
		t.Errorf("Expected warn message in output, got: %s", output)
	}

	if !strings.Contains(output, "[ERROR] error message") {
		t.Errorf("Expected error message in output, got: %s", output)
	}
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel("INFO")

	Infof("listening on %s:%d", "localhost", 5000)

	if !strings.Contains(buf.String(), "[INFO] listening on localhost:5000") {
		t.Errorf("Expected formatted message in output, got: %s", buf.String())
	}
}
