package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDecision(t *testing.T) {
	counter := decisionsTotal.WithLabelValues("creative", "low", "mythomax_13b")
	before := testutil.ToFloat64(counter)

	RecordDecision("creative", "low", "mythomax_13b")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordFallback(t *testing.T) {
	before := testutil.ToFloat64(fallbacksTotal)

	RecordFallback()

	assert.Equal(t, before+1, testutil.ToFloat64(fallbacksTotal))
}

func TestRecordToolDetection(t *testing.T) {
	counter := toolDetectionsTotal.WithLabelValues("ocr")
	before := testutil.ToFloat64(counter)

	RecordToolDetection("ocr")
	RecordToolDetection("ocr")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
