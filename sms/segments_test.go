package sms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureSegmentSize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		language string
		wantMax  int
	}{
		{"plain ascii english", "Hi Alice, your ticket T-1 was received.", "en", GSMSegmentSize},
		{"plain ascii french", "Bonjour Alice, votre billet T-1 est recu.", "fr", GSMSegmentSize},
		{"one accented character flips to ucs2", "Bonjour Alice, votre billet T-1 est reçu.", "fr", UCS2SegmentSize},
		{"arabic language always ucs2", "hello", "ar", UCS2SegmentSize},
		{"arabic script", "مرحبا أليس", "ar", UCS2SegmentSize},
		{"control character counts as extended", "line one\nline two", "en", UCS2SegmentSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMax, Measure(tt.text, tt.language).MaxPerSegment)
		})
	}
}

func TestMeasureSegmentCount(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		language  string
		segments  int
		multiPart bool
	}{
		{"empty", "", "en", 0, false},
		{"single char", "a", "en", 1, false},
		{"exactly one segment", strings.Repeat("a", 153), "en", 1, false},
		{"one over", strings.Repeat("a", 154), "en", 2, true},
		{"three segments", strings.Repeat("a", 400), "en", 3, true},
		{"ucs2 boundary", strings.Repeat("a", 67), "ar", 1, false},
		{"ucs2 one over", strings.Repeat("a", 68), "ar", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Measure(tt.text, tt.language)
			assert.Equal(t, tt.segments, info.Segments)
			assert.Equal(t, tt.multiPart, info.MultiPart)
			// ceiling law holds for every case
			if info.TotalChars > 0 {
				want := (info.TotalChars + info.MaxPerSegment - 1) / info.MaxPerSegment
				assert.Equal(t, want, info.Segments)
			}
		})
	}
}

func TestMeasureCountsRunesNotBytes(t *testing.T) {
	info := Measure("مرحبا", "ar")
	assert.Equal(t, 5, info.TotalChars)
}

func TestCheckLength(t *testing.T) {
	ok := Measure(strings.Repeat("a", GSMSegmentSize*MaxSegments), "en")
	require.NoError(t, CheckLength(ok))

	over := Measure(strings.Repeat("a", GSMSegmentSize*MaxSegments+1), "en")
	err := CheckLength(over)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too long")
}

func TestSegmentKind(t *testing.T) {
	assert.Equal(t, KindPlain, Measure("hello", "en").Kind())
	assert.Equal(t, KindUnicode, Measure("héllo", "en").Kind())
	assert.Equal(t, KindUnicode, Measure("hello", "ar").Kind())
}
