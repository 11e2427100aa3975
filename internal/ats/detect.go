package ats

import "log"

// fallbackConfidence is the fixed confidence assigned to the generic
// fallback, regardless of its own detect score.
const fallbackConfidence = 0.5

// Detection is the result of matching a page against the adapter table.
type Detection struct {
	ATS        string
	Adapter    *Adapter
	Confidence float64
}

// Detect scores every registered adapter against the page URL and HTML and
// returns the first near-certain match. The scan runs in table order and
// returns as soon as an adapter reaches 0.9; a partial score below that is
// never trusted, since a URL-only signal can select a selector table the
// page does not actually carry. When no adapter reaches 0.9 the generic
// adapter is returned with a fixed 0.5 confidence.
func Detect(pageURL, html string) Detection {
	sig := NewSignals(pageURL, html)

	for _, a := range Adapters {
		if a == GenericAdapter {
			continue
		}
		score := clamp(a.Detect(sig))
		if score >= 0.9 {
			log.Printf("[ATS] detected %s (%.2f)", a.Name, score)
			return Detection{ATS: a.Name, Adapter: a, Confidence: score}
		}
	}

	log.Printf("[ATS] no platform signature, using generic adapter")
	return Detection{ATS: GenericAdapter.Name, Adapter: GenericAdapter, Confidence: fallbackConfidence}
}
