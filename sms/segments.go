// Package sms computes SMS segmentation for rendered message text. Carriers
// split long messages into segments; the per-segment payload shrinks when
// the message needs the extended (UCS-2) character set.
package sms

import (
	"fmt"

	"github.com/Genocadio/nitifier/normalize"
)

const (
	// Concatenated-SMS payload sizes: 153 characters per segment for
	// GSM-7-safe text, 67 for UCS-2.
	GSMSegmentSize  = 153
	UCS2SegmentSize = 67

	// MaxSegments is the hard cap enforced during request validation.
	MaxSegments = 5

	KindPlain   = "plain"
	KindUnicode = "unicode"
)

// SegmentInfo describes how a rendered message splits into SMS segments.
type SegmentInfo struct {
	TotalChars    int  `json:"totalChars"`
	MaxPerSegment int  `json:"maxPerSegment"`
	Segments      int  `json:"segments"`
	MultiPart     bool `json:"multiPart"`
}

// Kind returns the transport segment kind for this measurement.
func (i SegmentInfo) Kind() string {
	if i.MaxPerSegment == UCS2SegmentSize {
		return KindUnicode
	}
	return KindPlain
}

// Measure computes segmentation for text in the given (normalized) language.
// Arabic always takes the UCS-2 size; any other language does too as soon as
// the text contains a character outside the 7-bit printable range.
func Measure(text, language string) SegmentInfo {
	max := GSMSegmentSize
	if language == normalize.LangArabic || !isSevenBitPrintable(text) {
		max = UCS2SegmentSize
	}

	total := 0
	for range text {
		total++
	}

	segments := (total + max - 1) / max
	return SegmentInfo{
		TotalChars:    total,
		MaxPerSegment: max,
		Segments:      segments,
		MultiPart:     segments > 1,
	}
}

// CheckLength rejects messages that would exceed the segment cap. The error
// is a validation condition, not a transport fault.
func CheckLength(info SegmentInfo) error {
	if info.Segments > MaxSegments {
		return fmt.Errorf("message is too long: %d segments exceed the maximum of %d (%d characters at %d per segment)",
			info.Segments, MaxSegments, info.TotalChars, info.MaxPerSegment)
	}
	return nil
}

func isSevenBitPrintable(text string) bool {
	for _, r := range text {
		if r < 0x20 || r > 0x7e {
			return false
		}
	}
	return true
}
