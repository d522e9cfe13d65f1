package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/tirasundara/spending-dashboard/internal/logger"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	log := logger.New("warn", &buf)

	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("Expected warn level, got %s", log.GetLevel())
	}

	log.Info("hidden")
	log.WithField("rows", 3).Warn("shown")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected a single JSON log line, got %q: %v", buf.String(), err)
	}

	if entry["msg"] != "shown" || entry["rows"] != float64(3) {
		t.Errorf("Unexpected log entry: %v", entry)
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := logger.New("loud", &bytes.Buffer{})

	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %s", log.GetLevel())
	}
}
