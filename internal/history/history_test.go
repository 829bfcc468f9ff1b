package history

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/types"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWriteRowsRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "x_emotion.csv")
	in := []types.ResultRow{
		{Start: "00:00:00,000", End: "00:00:01,500", Sentence: "Hi.", Translation: "Hi.", Emotion: "joy"},
		{Start: "00:00:01,500", End: "00:00:03,000", Sentence: "Bye.", Translation: "Bye.", Emotion: "sadness"},
	}
	if err := WriteRows(path, in, false); err != nil {
		t.Fatalf("write rows: %v", err)
	}

	rows := readAll(t, path)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if len(rows[0]) != 5 {
		t.Fatalf("expected 5 columns without intensity, got %d", len(rows[0]))
	}
	for i, want := range in {
		got := rows[i+1]
		if got[2] != want.Sentence || got[4] != want.Emotion {
			t.Fatalf("row %d = %v, want sentence %q emotion %q", i+1, got, want.Sentence, want.Emotion)
		}
	}
}

func TestWriteRowsIntensityColumns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "x_emotion.csv")
	in := []types.ResultRow{{
		Start: "00:00:00,000", End: "00:00:01,000",
		Sentence: "Wow.", Translation: "Wow.", Emotion: "surprise",
		IntensityScore: "0.75", IntensityLabel: "strong",
	}}
	if err := WriteRows(path, in, true); err != nil {
		t.Fatalf("write rows: %v", err)
	}

	rows := readAll(t, path)
	if len(rows[0]) != 7 {
		t.Fatalf("expected 7 columns with intensity, got %d", len(rows[0]))
	}
	if rows[0][5] != "intensity_score" || rows[0][6] != "intensity_label" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][5] != "0.75" || rows[1][6] != "strong" {
		t.Fatalf("unexpected intensity cells: %v", rows[1])
	}
}

func TestLogAppendHeaderOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.csv")
	l := NewLog(path)

	s := types.Summary{
		Timestamp: "2026-03-01T12:00:00Z",
		Input:     "hello",
		Language:  "en",
		CSV:       "data/transcripts/hello_emotion.csv",
	}
	if err := l.Append(s); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := l.Append(s); err != nil {
		t.Fatalf("second append: %v", err)
	}

	rows := readAll(t, path)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	wantHeader := []string{"timestamp", "input", "language", "translated", "emotion", "csv"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Fatalf("header = %v, want %v", rows[0], wantHeader)
		}
	}
	if rows[1][0] != s.Timestamp || rows[1][5] != s.CSV {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}

func TestTimestampFormat(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CET", 3600)
	got := Timestamp(time.Date(2026, 3, 1, 13, 0, 0, 0, loc))
	if got != "2026-03-01T12:00:00Z" {
		t.Fatalf("Timestamp = %q, want UTC with Z suffix", got)
	}
}
