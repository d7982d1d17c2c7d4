package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Lubba-64/inventory-go/logging"
)

type ConsoleSink struct {
	logger *log.Logger
}

func NewConsoleSink(w io.Writer, cfg logging.ConsoleConfig) *ConsoleSink {
	return &ConsoleSink{logger: log.New(w, "", log.LstdFlags)}
}

func (s *ConsoleSink) Write(event logging.Event) error {
	if s.logger == nil {
		return nil
	}
	s.logger.Printf("[%s] inventory=%s%s severity=%s%s",
		event.Type, formatInventory(event.Inventory), formatSlot(event.Slot),
		formatSeverity(event.Severity), formatPayload(event.Payload))
	return nil
}

func (s *ConsoleSink) Close(context.Context) error {
	return nil
}

func formatSeverity(sev logging.Severity) string {
	switch sev {
	case logging.SeverityDebug:
		return "debug"
	case logging.SeverityInfo:
		return "info"
	case logging.SeverityWarn:
		return "warn"
	case logging.SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func formatInventory(id string) string {
	if id == "" {
		return "-"
	}
	return id
}

func formatSlot(slot int) string {
	if slot == logging.NoSlot {
		return ""
	}
	return fmt.Sprintf(" slot=%d", slot)
}

func formatPayload(payload any) string {
	if payload == nil {
		return ""
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(" payload=%v", payload)
	}
	compact := strings.TrimSpace(string(data))
	if compact == "" || compact == "{}" || compact == "null" {
		return ""
	}
	return " payload=" + compact
}
