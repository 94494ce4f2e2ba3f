// Package export keeps an in-memory log of finished intake calls and writes
// it out as an Excel workbook for the firm's staff. Cleared on restart, like
// everything else in this service.
package export

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
)

// IntakeRecord summarizes one completed call.
type IntakeRecord struct {
	CallID    string
	Track     string
	Outcome   string
	Collected []Field
	StartedAt time.Time
	Duration  time.Duration
	Messages  int
}

// Field preserves the order the dialogue collected things in.
type Field struct {
	Name  string
	Value string
}

type Log struct {
	mu      sync.Mutex
	records []IntakeRecord
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(rec IntakeRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

func (l *Log) snapshot() []IntakeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]IntakeRecord, len(l.records))
	copy(out, l.records)
	return out
}

var header = []string{"Call ID", "Track", "Outcome", "Started At", "Duration (s)", "Messages", "Collected"}

// WriteXLSX writes the whole log as a single-sheet workbook.
func (l *Log) WriteXLSX(w io.Writer) error {
	records := l.snapshot()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Intake"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, rec := range records {
		row := []any{
			rec.CallID,
			rec.Track,
			rec.Outcome,
			rec.StartedAt.Format(time.RFC3339),
			int64(rec.Duration.Seconds()),
			rec.Messages,
			joinFields(rec.Collected),
		}
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func joinFields(fields []Field) string {
	parts := make([]string, 0, len(fields))
	for _, fl := range fields {
		parts = append(parts, fl.Name+": "+fl.Value)
	}
	return strings.Join(parts, " | ")
}
