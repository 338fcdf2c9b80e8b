package bot

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"zadachnik/models"
)

func TestWriteTasksCSV(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	tasks := []models.Task{
		{ID: 1, Text: "buy milk", User: 42, CreatedAt: created, Status: models.StatusNew, Category: models.CategoryUnimportant},
		{ID: 2, Text: "text, with comma", User: 42, CreatedAt: created, Status: models.StatusDone, Category: models.CategoryImportant},
	}

	var buf bytes.Buffer
	if err := writeTasksCSV(&buf, tasks); err != nil {
		t.Fatalf("writeTasksCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}

	wantHeader := []string{"id", "text", "user", "created_at", "status", "category"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	row := records[1]
	if row[0] != "1" || row[1] != "buy milk" || row[2] != "42" {
		t.Errorf("row 1 = %v", row)
	}
	if row[3] != "2025-03-14T09:26:53Z" {
		t.Errorf("created_at = %q, want RFC3339 UTC", row[3])
	}

	if records[2][1] != "text, with comma" {
		t.Errorf("comma in text not preserved: %q", records[2][1])
	}
}
