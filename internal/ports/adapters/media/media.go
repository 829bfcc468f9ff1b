// Package media shells out to yt-dlp and ffmpeg for the two local media
// operations the pipeline needs: fetching a remote source and cutting a time
// window before transcription.
package media

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
)

type Adapter struct {
	ytdlp  string
	ffmpeg string
}

func New(ytdlpPath, ffmpegPath string) *Adapter {
	if ytdlpPath == "" {
		ytdlpPath = "yt-dlp"
	}
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Adapter{ytdlp: ytdlpPath, ffmpeg: ffmpegPath}
}

// Fetch downloads the best available audio for a remote reference into dir
// and returns the local path.
func (a *Adapter) Fetch(ctx context.Context, url, dir string) (string, error) {
	out := filepath.Join(dir, "source.m4a")
	cmd := exec.CommandContext(ctx, a.ytdlp,
		"--no-playlist",
		"--quiet",
		"--no-progress",
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "m4a",
		"-o", out,
		url,
	)
	if b, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("yt-dlp fetch: %w\n%s", err, string(b))
	}
	return out, nil
}

// Trim cuts [start, end) seconds out of src without re-encoding. end <= 0
// keeps everything until the end of the source.
func (a *Adapter) Trim(ctx context.Context, src string, start, end float64, dir string) (string, error) {
	out := filepath.Join(dir, "trimmed"+filepath.Ext(src))
	args := []string{"-y", "-ss", fmtSeconds(start)}
	if end > 0 {
		args = append(args, "-to", fmtSeconds(end))
	}
	args = append(args, "-i", src, "-acodec", "copy", out)

	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	if b, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg trim: %w\n%s", err, string(b))
	}
	return out, nil
}

func fmtSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}
