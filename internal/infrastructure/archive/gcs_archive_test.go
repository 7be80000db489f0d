package archive

import (
	"testing"
	"time"
)

func TestGCSArchive_ObjectName(t *testing.T) {
	a := &GCSArchive{prefix: "exports", now: func() time.Time { return time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC) }}
	if got := a.objectName("customers_20260701_000000.csv"); got != "exports/2026/07/customers_20260701_000000.csv" {
		t.Fatalf("unexpected object name %q", got)
	}
	a.prefix = ""
	if got := a.objectName("x.pdf"); got != "2026/07/x.pdf" {
		t.Fatalf("unexpected object name %q", got)
	}
}
