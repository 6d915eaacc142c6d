package format

import (
	"bytes"
	"strings"
	"testing"
)

type userRows struct{}

func (userRows) Table() Table {
	return Table{
		Header: []string{"ID", "NAME", "ROLE"},
		Rows: [][]string{
			{"1", "Alice Johnson", "ADMIN"},
			{"2", strings.Repeat("x", 60), "EMPLOYEE"},
		},
	}
}

func TestWriteJSON_CompactAndPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"count": 3}, "json", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "{\"count\":3}\n" {
		t.Fatalf("compact output = %q", got)
	}

	buf.Reset()
	if err := Write(&buf, map[string]int{"count": 3}, "", true); err != nil {
		t.Fatalf("write pretty: %v", err)
	}
	if !strings.Contains(buf.String(), "  \"count\": 3") {
		t.Fatalf("pretty output = %q", buf.String())
	}
}

func TestWrite_UnknownFormatRejected(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestWriteTable_AlignsAndTruncates(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, userRows{}, "table", false); err != nil {
		t.Fatalf("write table: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header+sep+2 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID  NAME") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[3], "…") {
		t.Fatalf("long cell not truncated: %q", lines[3])
	}
}

func TestWriteTable_RequiresTabler(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, 42, "table", false); err == nil {
		t.Fatalf("expected error for non-Tabler value")
	}
}
