// Package history persists per-request result tables and the running
// inference history log.
package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/types"
)

// RowHeader is the artifact header without the intensity columns.
var RowHeader = []string{"start", "end", "sentence", "translation", "emotion"}

// IntensityColumns extends RowHeader when the plan allows intensity.
var IntensityColumns = []string{"intensity_score", "intensity_label"}

var historyHeader = []string{"timestamp", "input", "language", "translated", "emotion", "csv"}

// WriteRows writes the per-request artifact: header plus one row per segment,
// in segment order, overwriting whatever was at path.
func WriteRows(path string, rows []types.ResultRow, withIntensity bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := RowHeader
	if withIntensity {
		header = append(append([]string{}, RowHeader...), IntensityColumns...)
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{r.Start, r.End, r.Sentence, r.Translation, r.Emotion}
		if withIntensity {
			rec = append(rec, r.IntensityScore, r.IntensityLabel)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return f.Close()
}

// Log appends summary records to a single history file. Appends are atomic
// per call; concurrent requests may interleave rows but never partial rows.
type Log struct {
	path string
	mu   sync.Mutex
}

func NewLog(path string) *Log {
	return &Log{path: path}
}

// Append writes one summary record, creating the file and header on first
// use. Prior rows are never rewritten.
func (l *Log) Append(s types.Summary) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}

	fresh := true
	if st, err := os.Stat(l.path); err == nil && st.Size() > 0 {
		fresh = false
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(historyHeader); err != nil {
			return err
		}
	}
	ts := s.Timestamp
	if ts == "" {
		ts = Timestamp(time.Now())
	}
	if err := w.Write([]string{ts, s.Input, s.Language, "", "", s.CSV}); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("append summary: %w", err)
	}
	return f.Close()
}

// Timestamp renders a time as UTC ISO-8601 with second precision and a
// literal Z suffix.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
