// Package segments reduces every supported input shape to the ordered
// timestamped-segment form the orchestrator consumes.
package segments

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/types"
)

var mediaExts = map[string]struct{}{
	".wav": {}, ".mp3": {}, ".m4a": {}, ".flac": {}, ".ogg": {}, ".mp4": {},
}

var textExts = map[string]struct{}{
	".txt": {}, ".csv": {},
}

// IsTextFile reports whether src looks like a local text or CSV file.
func IsTextFile(src string) bool {
	_, ok := textExts[strings.ToLower(filepath.Ext(src))]
	return ok
}

// IsMedia reports whether src is a media file or a remote media reference.
func IsMedia(src string) bool {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return true
	}
	_, ok := mediaExts[strings.ToLower(filepath.Ext(src))]
	return ok
}

var terminalRE = regexp.MustCompile(`[.!?]$`)

// ensureTerminal forces a sentence to end with terminal punctuation so the
// classifiers see complete sentences.
func ensureTerminal(s string) string {
	if terminalRE.MatchString(s) {
		return s
	}
	return s + "."
}

// FromTextContent splits the content of a .txt or .csv file into segments:
// one per non-empty line, or one per first-column cell after the CSV header.
// A file with content but no usable lines falls back to a single segment with
// the trimmed raw content; a truly empty file yields no segments. File-derived
// segments carry zero timestamps.
func FromTextContent(raw, ext string) ([]types.Segment, error) {
	raw = strings.TrimSpace(raw)

	var sentences []string
	if strings.EqualFold(ext, ".csv") {
		r := csv.NewReader(strings.NewReader(raw))
		r.FieldsPerRecord = -1
		if _, err := r.Read(); err != nil && err != io.EOF { // header
			return nil, fmt.Errorf("read csv header: %w", err)
		}
		for {
			rec, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("read csv row: %w", err)
			}
			if len(rec) > 0 && strings.TrimSpace(rec[0]) != "" {
				sentences = append(sentences, strings.TrimSpace(rec[0]))
			}
		}
	} else {
		for _, line := range strings.Split(raw, "\n") {
			if s := strings.TrimSpace(line); s != "" {
				sentences = append(sentences, s)
			}
		}
	}

	if len(sentences) == 0 && raw != "" {
		sentences = []string{raw}
	}

	out := make([]types.Segment, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, types.Segment{Text: ensureTerminal(s)})
	}
	return out, nil
}

// FromText wraps a single piece of already-prepared text as one segment.
func FromText(text string) []types.Segment {
	return []types.Segment{{Text: strings.TrimSpace(text)}}
}

var unsafeRE = regexp.MustCompile(`[^0-9A-Za-z_-]`)

// SafeStem derives the artifact file stem from the input reference: the
// video id for known video-host URLs, the filename stem for paths, "input"
// when nothing usable remains. Anything outside [0-9A-Za-z_-] becomes "_".
func SafeStem(input string) string {
	var name string
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		u, err := url.Parse(input)
		if err == nil {
			if v := u.Query().Get("v"); v != "" {
				return sanitizeStem(v)
			}
			name = strings.TrimSuffix(filepath.Base(u.Path), filepath.Ext(u.Path))
		}
	} else {
		name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	return sanitizeStem(name)
}

func sanitizeStem(name string) string {
	s := unsafeRE.ReplaceAllString(name, "_")
	if s == "" {
		return "input"
	}
	return s
}

// FormatTimestamp renders seconds as HH:MM:SS,mmm (subtitle style).
func FormatTimestamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	ms := int(sec*1000 + 0.5)
	h := ms / 3600000
	ms -= h * 3600000
	m := ms / 60000
	ms -= m * 60000
	s := ms / 1000
	ms -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// ParseClock parses HH:MM:SS, MM:SS or plain seconds into seconds.
func ParseClock(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	var vals []float64
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q: %w", s, err)
		}
		vals = append(vals, v)
	}
	switch len(vals) {
	case 3:
		return vals[0]*3600 + vals[1]*60 + vals[2], nil
	case 2:
		return vals[0]*60 + vals[1], nil
	default:
		return vals[0], nil
	}
}
