package internal

import (
	"testing"
)

func TestSetVerbose(t *testing.T) {
	defer SetLogLevel(LogLevelInfo)

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("verbose should set debug level, got %v", logLevel)
	}

	SetVerbose(false)
	if logLevel != LogLevelInfo {
		t.Errorf("non-verbose should set info level, got %v", logLevel)
	}
}

func TestLogLevelOrdering(t *testing.T) {
	if !(LogLevelError < LogLevelWarn && LogLevelWarn < LogLevelInfo && LogLevelInfo < LogLevelDebug) {
		t.Error("log levels out of order")
	}
}
