package guidedoc

import "strings"

// Phrase tables used by the cleanup passes and the quality assessor.
// They are package-level constants in spirit: initialized once and never
// mutated. Matching is always case-folded.

// domainVocabulary is the fixed set of UI/design terms recognized during
// keyword extraction and vocabulary scoring.
var domainVocabulary = []string{
	"accessibility",
	"affordance",
	"alignment",
	"animation",
	"button",
	"checkbox",
	"color",
	"contrast",
	"design",
	"feedback",
	"gesture",
	"hierarchy",
	"icon",
	"interaction",
	"interface",
	"layout",
	"menu",
	"modality",
	"navigation",
	"picker",
	"popover",
	"sheet",
	"slider",
	"spacing",
	"stepper",
	"toggle",
	"toolbar",
	"typography",
	"usability",
	"widget",
}

// guidelinePhrases signal real guidance content. Their presence drives the
// guideline sub-score and the "substantial content" test during fallback
// detection.
var guidelinePhrases = []string{
	"best practices",
	"guideline",
	"accessibility",
	"consider",
	"ensure",
	"avoid",
}

// fallbackPhrases identify unusable scrape artifacts: placeholder pages a
// JavaScript-dependent site serves when rendering never ran.
var fallbackPhrases = []string{
	"requires javascript",
	"javascript is required",
	"please turn on javascript",
	"enable javascript",
	"content not available",
	"page not found",
	"loading...",
	"an error occurred",
}

// spaPhrases are navigational/changelog artifacts characteristic of
// single-page-application-rendered sources.
var spaPhrases = []string{
	"skip navigation",
	"current page is",
	"supported platforms",
	"no additional considerations",
}

// componentTerms is the fixed vocabulary of multi-word component names used
// by the word-concatenation repair pass. Converted markup sometimes glues a
// preceding word onto these phrases, or the phrase onto a following word.
var componentTerms = []string{
	"action button",
	"activity ring",
	"control center",
	"digital crown",
	"dynamic island",
	"home screen",
	"live activity",
	"lock screen",
	"menu bar",
	"navigation bar",
	"side button",
	"smart stack",
	"status bar",
	"tab bar",
	"touch bar",
}

// containsAny reports whether the haystack contains any of the phrases.
// Phrases are stored lowercase; the caller folds the haystack once and
// scans many times.
func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
