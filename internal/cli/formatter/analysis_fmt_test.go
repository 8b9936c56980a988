package formatter

import (
	"testing"

	"github.com/alexanderramin/rihla/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatAnalysisWithAudio(t *testing.T) {
	res := testutil.NewTestResult(true)

	out := FormatAnalysis(res)

	assert.Contains(t, out, "Kaaba")
	assert.Contains(t, out, "97%")
	assert.Contains(t, out, "Masjid al-Haram")
	assert.Contains(t, out, "Audio narration available")
}

func TestFormatAnalysisWithoutAudio(t *testing.T) {
	res := testutil.NewTestResult(false)

	out := FormatAnalysis(res)

	assert.Contains(t, out, "No audio narration")
	assert.NotContains(t, out, "Audio narration available")
}

func TestConfidenceBuckets(t *testing.T) {
	assert.Contains(t, Confidence(0.97), "97%")
	assert.Contains(t, Confidence(0.5), "50%")
	assert.Contains(t, Confidence(0.1), "10%")
	assert.Contains(t, Confidence(0), "--")
}
