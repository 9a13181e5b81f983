package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/talqui/cx-insight/internal"
	"gopkg.in/yaml.v3"
)

func fptr(v float64) *float64 { return &v }

// sampleReport builds a report with every section populated.
func sampleReport() *internal.Report {
	created := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	messages := &internal.MessageTable{Messages: []internal.Message{
		{
			ID: "m1", SessionID: "s1", ContactID: "c1",
			Direction: internal.DirectionInbound, Channel: "whatsapp",
			Content: "tive um problema com o pedido", HasContent: true,
			CreatedAt: created, Hour: 9, WeekdayNum: 0, Date: "2024-03-04",
		},
		{
			ID: "m2", SessionID: "s1", ContactID: "c1",
			Direction: internal.DirectionOutbound, Channel: "whatsapp",
			Content: "vou verificar", HasContent: true,
			CreatedAt: created, Hour: 9, WeekdayNum: 0, Date: "2024-03-04",
		},
	}}
	sessions := &internal.SessionTable{Sessions: []internal.Session{
		{
			ID: "s1", ContactID: "c1", Operator: "Ana",
			CreatedAt: created, Hour: 9, Weekday: "Monday", WeekdayNum: 0,
			Duration: fptr(600), DurationMinutes: fptr(10),
			QueueDuration: fptr(60), QueueMinutes: fptr(1),
			Rating: fptr(5), CloseReason: "resolved", MessageCount: 2,
		},
	}}
	plugins := &internal.PluginTable{Sessions: []internal.PluginSession{
		{SessionID: "s1", PluginLabel: "Checkout Bot"},
	}}

	return internal.BuildReport(messages, sessions, plugins)
}

func TestJSONExporterRoundTrip(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(report, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var decoded internal.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Summary.Messages == nil || decoded.Summary.Messages.Total != 2 {
		t.Errorf("summary lost in round-trip: %+v", decoded.Summary.Messages)
	}
	if decoded.Operators == nil || decoded.Operators.Operators[0].Operator != "Ana" {
		t.Errorf("operators lost in round-trip: %+v", decoded.Operators)
	}
}

func TestYAMLExporter(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	if err := (&YAMLExporter{}).Export(report, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if _, ok := decoded["summary"]; !ok {
		t.Error("YAML output missing summary section")
	}
	if _, ok := decoded["insights"]; !ok {
		t.Error("YAML output missing insights section")
	}
}

func TestMarkdownExporter(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(report, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()

	for _, section := range []string{
		"# CX Report",
		"## Summary",
		"## Operator Performance",
		"## Channel Efficiency",
		"## Peak Hours",
		"## Sentiment",
		"## Customer Segments",
		"## Resolution Patterns",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("markdown output missing %q", section)
		}
	}
	if !strings.Contains(out, "Ana") {
		t.Error("markdown output missing operator row")
	}
}

func TestMarkdownExporterSkipsAbsentSections(t *testing.T) {
	report := internal.BuildReport(&internal.MessageTable{}, &internal.SessionTable{}, nil)

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(report, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "No data loaded.") {
		t.Error("empty report should say so")
	}
	if strings.Contains(out, "## Operator Performance") {
		t.Error("absent operator view should not render a section")
	}
}

func TestMarkdownEscapeCell(t *testing.T) {
	if got := escapeCell("a|b\nc"); got != "a\\|b c" {
		t.Errorf("escapeCell = %q", got)
	}
}

func TestCSVExporter(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	if err := (&CSVExporter{}).Export(report, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) < 2 {
		t.Fatalf("expected header plus data rows, got %d records", len(records))
	}

	header := records[0]
	want := []string{"section", "key", "metric", "value"}
	for i, col := range want {
		if header[i] != col {
			t.Fatalf("header = %v, want %v", header, want)
		}
	}

	sections := make(map[string]bool)
	for _, record := range records[1:] {
		if len(record) != 4 {
			t.Fatalf("record %v has %d fields, want 4", record, len(record))
		}
		sections[record[0]] = true
	}
	for _, section := range []string{"summary", "operators", "channels", "peak_volume", "sentiment", "segments", "insights"} {
		if !sections[section] {
			t.Errorf("CSV output missing section %q", section)
		}
	}
}

func TestHTMLExporter(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	if err := (&HTMLExporter{}).Export(report, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Error("HTML output missing doctype")
	}
	for _, section := range []string{"Operator Performance", "Sentiment", "Customer Segments"} {
		if !strings.Contains(out, section) {
			t.Errorf("HTML output missing %q", section)
		}
	}
	if !strings.Contains(out, "Ana") {
		t.Error("HTML output missing operator row")
	}
}

func TestHTMLExporterEscapesContent(t *testing.T) {
	report := sampleReport()
	report.Sentiment.NegativeSamples = []string{"<script>alert('x')</script> problema"}

	var buf bytes.Buffer
	if err := (&HTMLExporter{}).Export(report, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert") {
		t.Error("message content must be HTML-escaped")
	}
}
