package emotions

import "testing"

func TestTierFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ext, intensity bool
		want           Tier
	}{
		{false, false, TierBasic},
		{true, false, TierPlus},
		{true, true, TierPro},
		{false, true, TierPro},
	}
	for _, tc := range cases {
		if got := TierFor(tc.ext, tc.intensity); got != tc.want {
			t.Fatalf("TierFor(%v, %v) = %s, want %s", tc.ext, tc.intensity, got, tc.want)
		}
	}
}

func TestVocabularySizes(t *testing.T) {
	t.Parallel()

	if n := len(Labels(TierBasic)); n != 7 {
		t.Fatalf("basic vocabulary has %d labels, want 7", n)
	}
	if n := len(Labels(TierPlus)); n != 23 {
		t.Fatalf("plus vocabulary has %d labels, want 23", n)
	}
	if n := len(Labels(TierPro)); n != 27 {
		t.Fatalf("pro vocabulary has %d labels, want 27", n)
	}
}

func TestAllowed(t *testing.T) {
	t.Parallel()

	if !Allowed(TierBasic, "happy") {
		t.Fatalf("happy must be a basic label")
	}
	if Allowed(TierBasic, "joy") {
		t.Fatalf("joy is not a basic label")
	}
	if !Allowed(TierPro, "embarrassment") {
		t.Fatalf("embarrassment must be a pro label")
	}
	if Allowed(TierPlus, "embarrassment") {
		t.Fatalf("embarrassment is pro-only")
	}
}

func TestIntensityScore(t *testing.T) {
	t.Parallel()

	if got := IntensityScore("strong"); got != 0.75 {
		t.Fatalf("IntensityScore(strong) = %v, want 0.75", got)
	}
	if got := IntensityScore("overwhelming"); got != 0.0 {
		t.Fatalf("unknown word must score 0.0, got %v", got)
	}
}

func TestIntensityLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score float64
		want  string
	}{
		{0.0, "neutral"},
		{0.14, "neutral"},
		{0.15, "mild"},
		{0.39, "mild"},
		{0.4, "moderate"},
		{0.69, "moderate"},
		{0.7, "strong"},
		{0.89, "strong"},
		{0.9, "intense"},
		{1.0, "intense"},
	}
	for _, tc := range cases {
		if got := IntensityLabel(tc.score); got != tc.want {
			t.Fatalf("IntensityLabel(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestClassIndexComplete(t *testing.T) {
	t.Parallel()

	if len(ClassIndex) != 28 {
		t.Fatalf("class table has %d entries, want 28", len(ClassIndex))
	}
	for i := 0; i < 28; i++ {
		if _, ok := ClassIndex[i]; !ok {
			t.Fatalf("class index %d missing from table", i)
		}
	}
	if ClassIndex[27] != "neutral" {
		t.Fatalf("class 27 = %q, want neutral", ClassIndex[27])
	}
}

func TestCollapseBasic(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"joy":         "happy",
		"anger":       "mad",
		"fear":        "scared",
		"sadness":     "sad",
		"surprise": "surprised",
		// historical quirk in the collapse table: disgust stays "disgust",
		// not "disgusted"
		"disgust":     "disgust",
		"neutral":     "neutral",
		"not-a-label": "neutral",
	}
	for in, want := range cases {
		if got := CollapseBasic(in); got != want {
			t.Fatalf("CollapseBasic(%q) = %q, want %q", in, got, want)
		}
	}
}
