package types

// Segment is one timestamped unit of text, regardless of where it came from
// (spoken audio, a file line, raw text). Start/End are seconds from the
// beginning of the source; file-derived segments carry zero timestamps.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is what a transcriber produces for one media source.
type Transcript struct {
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// Classification is the outcome of one classifier call for one segment.
// Intensity is nil unless the request's plan allows intensity scoring and the
// backend produced one.
type Classification struct {
	Emotion   string
	Intensity *float64
}

// ResultRow is one line of the per-request output artifact. Written once, in
// segment order, never mutated afterwards.
type ResultRow struct {
	Start          string
	End            string
	Sentence       string
	Translation    string
	Emotion        string
	IntensityScore string
	IntensityLabel string
}

// Summary describes one completed request. Appended to the history log.
type Summary struct {
	Timestamp string `json:"timestamp"`
	Input     string `json:"input"`
	Language  string `json:"language"`
	CSV       string `json:"csv"`
}

// Request is the normalized input to the pipeline after plan enforcement.
type Request struct {
	Source     string
	Classifier string // "llama" or "bert"; empty means llama
	StartTime  string // optional HH:MM:SS / MM:SS / SS window bound
	EndTime    string
	Persist    bool // append the summary to the history log
}
