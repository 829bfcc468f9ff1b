package segments

import (
	"testing"
)

func TestIsTextFile(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"notes.txt":        true,
		"data.CSV":         true,
		"clip.mp4":         false,
		"plain text input": false,
	}
	for in, want := range cases {
		if got := IsTextFile(in); got != want {
			t.Fatalf("IsTextFile(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsMedia(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"https://www.youtube.com/watch?v=abc123": true,
		"recording.wav":                          true,
		"clip.MP4":                               true,
		"notes.txt":                              false,
		"just some text":                         false,
	}
	for in, want := range cases {
		if got := IsMedia(in); got != want {
			t.Fatalf("IsMedia(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromTextContentCSV(t *testing.T) {
	t.Parallel()

	segs, err := FromTextContent("Text\nHello world\nGoodbye", ".csv")
	if err != nil {
		t.Fatalf("FromTextContent: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Text != "Hello world." {
		t.Fatalf("segment 1 = %q, want %q", segs[0].Text, "Hello world.")
	}
	if segs[1].Text != "Goodbye." {
		t.Fatalf("segment 2 = %q, want %q", segs[1].Text, "Goodbye.")
	}
	if segs[0].Start != 0 || segs[0].End != 0 {
		t.Fatalf("file-derived segments must carry zero timestamps")
	}
}

func TestFromTextContentLines(t *testing.T) {
	t.Parallel()

	segs, err := FromTextContent("First line!\n\n  Second line  \n", ".txt")
	if err != nil {
		t.Fatalf("FromTextContent: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Text != "First line!" {
		t.Fatalf("existing punctuation must be kept, got %q", segs[0].Text)
	}
	if segs[1].Text != "Second line." {
		t.Fatalf("segment 2 = %q, want %q", segs[1].Text, "Second line.")
	}
}

func TestFromTextContentEmpty(t *testing.T) {
	t.Parallel()

	segs, err := FromTextContent("   \n  ", ".txt")
	if err != nil {
		t.Fatalf("FromTextContent: %v", err)
	}
	if len(segs) != 0 {
		t.Fatalf("blank file must yield no segments, got %d", len(segs))
	}
}

func TestSafeStem(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ": "dQw4w9WgXcQ",
		"https://host/path/My Clip.mp4":               "My_Clip",
		"/data/in/voice memo.wav":                     "voice_memo",
		"notes.txt":                                   "notes",
		"":                                            "input",
	}
	for in, want := range cases {
		if got := SafeStem(in); got != want {
			t.Fatalf("SafeStem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sec  float64
		want string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{61.042, "00:01:01,042"},
		{3661.999, "01:01:01,999"},
		{-3, "00:00:00,000"},
	}
	for _, tc := range cases {
		if got := FormatTimestamp(tc.sec); got != tc.want {
			t.Fatalf("FormatTimestamp(%v) = %q, want %q", tc.sec, got, tc.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"01:02:03", 3723, false},
		{"02:30", 150, false},
		{"45", 45, false},
		{"1:2:3:4", 0, true},
		{"abc", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseClock(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseClock(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
