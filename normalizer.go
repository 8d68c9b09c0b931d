package guidedoc

import (
	"regexp"
	"strings"
)

// Normalize runs the markdown cleanup passes in a fixed order. Each pass is
// a no-op when its pattern is absent, and running Normalize on its own
// output produces no further changes. The passes assume their predecessors
// have run; reordering them changes behavior.
func Normalize(markdown string, cfg Config) string {
	cfg = cfg.withDefaults()

	s := markdown
	s = stripJavaScriptBanner(s)
	s = stripSkipNavigation(s)
	s = stripPlatformBoilerplate(s)
	s = collapseDuplicateHeadings(s, cfg.HeadingDupThreshold)
	s = normalizeWhitespace(s)
	s = padHeadings(s)
	s = repairEmptyLinks(s)
	s = dropEmptyHeadings(s)
	s = normalizeBullets(s)
	s = repairConcatenatedWords(s)
	s = stripTrailingBoilerplate(s)
	return strings.TrimSpace(s)
}

var (
	// The full banner a JavaScript-dependent page serves in place of
	// content, from the start of the text through the final instruction.
	jsBannerLeadRe = regexp.MustCompile(`(?is)^.*?this page requires javascript.*?refresh the page to view its content\.?`)

	// Standalone recurrences of the same warning.
	jsBannerRe = regexp.MustCompile(`(?i)(this page requires javascript\.?|please turn on javascript in your browser and refresh the page to view its content\.?|please turn on javascript\.?)`)

	skipNavigationRe = regexp.MustCompile(`(?i)skip navigation`)

	platformConsiderationsRe = regexp.MustCompile(`(?i)platform considerations\s*no additional considerations for [^.\n]*\.?`)
	noAdditionalRe           = regexp.MustCompile(`(?i)no additional considerations for [^.\n]*\.?`)
	currentPageRe            = regexp.MustCompile(`(?i)current page is [^\n]*`)
	supportedPlatformsRe     = regexp.MustCompile(`(?im)^#{0,6}[ \t]*supported platforms[ \t]*$`)

	headingLineRe = regexp.MustCompile(`^(#{1,6})[ \t]+(.*)$`)

	trailingSpaceRe = regexp.MustCompile(`(?m)[ \t]+$`)
	hspaceRunRe     = regexp.MustCompile(`[ \t]{2,}`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)

	headingPadBeforeRe = regexp.MustCompile(`([^\n])\n(#{1,6} )`)
	headingPadAfterRe  = regexp.MustCompile(`(?m)(^#{1,6} [^\n]*)\n([^\n])`)

	emptyLinkRe    = regexp.MustCompile(`\[([^\]]*)\]\(\s*\)`)
	emptyHeadingRe = regexp.MustCompile(`(?m)^#{1,6}[ \t]*$`)
	bulletRe       = regexp.MustCompile(`(?m)^([ \t]*)[*+]( +)`)

	lowerUpperRe    = regexp.MustCompile(`([a-z])([A-Z])`)
	sentencePunctRe = regexp.MustCompile(`([.!?])([A-Z])`)
	digitLetterRe   = regexp.MustCompile(`([0-9])([a-zA-Z])`)
	letterDigitRe   = regexp.MustCompile(`([a-zA-Z])([0-9])`)

	trailingBoilerplateRe = regexp.MustCompile(`(?im)^#{0,6}[ \t]*(resources|change log|changelog|videos)[ \t]*$`)
)

// termRepair holds the precompiled concatenation repairs for one multi-word
// component term: a lowercase word glued before the term, and the term glued
// before a capitalized word. Short (<3 character) neighbors are left alone
// to avoid splitting genuine compounds.
type termRepair struct {
	prefix *regexp.Regexp
	suffix *regexp.Regexp
}

var termRepairs = buildTermRepairs()

func buildTermRepairs() []termRepair {
	repairs := make([]termRepair, 0, len(componentTerms))
	for _, term := range componentTerms {
		quoted := regexp.QuoteMeta(term)
		repairs = append(repairs, termRepair{
			prefix: regexp.MustCompile(`([a-z]{3,})((?i:` + quoted + `))`),
			suffix: regexp.MustCompile(`((?i:` + quoted + `))([A-Z][a-z]{2,})`),
		})
	}
	return repairs
}

func stripJavaScriptBanner(s string) string {
	s = jsBannerLeadRe.ReplaceAllString(s, "")
	s = jsBannerRe.ReplaceAllString(s, "")
	return s
}

func stripSkipNavigation(s string) string {
	return skipNavigationRe.ReplaceAllString(s, "")
}

func stripPlatformBoilerplate(s string) string {
	s = platformConsiderationsRe.ReplaceAllString(s, "")
	s = noAdditionalRe.ReplaceAllString(s, "")
	s = currentPageRe.ReplaceAllString(s, "")
	if loc := supportedPlatformsRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return s
}

// collapseDuplicateHeadings keeps the first occurrence of each case-folded
// heading title and drops repeats, unless a repeated line exceeds the
// threshold, which suggests it carries more structure than the original.
// Lines inside fenced code blocks are never treated as headings, so a
// repeated directive like "#include" in an example survives.
func collapseDuplicateHeadings(s string, threshold int) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	seen := make(map[string]bool)
	inFence := false

	for _, line := range lines {
		if isFenceDelimiter(line) {
			inFence = !inFence
		}
		if !inFence {
			if m := headingLineRe.FindStringSubmatch(line); m != nil {
				key := strings.ToLower(strings.TrimSpace(m[2]))
				if key != "" {
					if seen[key] && len(line) <= threshold {
						continue
					}
					seen[key] = true
				}
			}
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func normalizeWhitespace(s string) string {
	s = hspaceRunRe.ReplaceAllString(s, " ")
	s = trailingSpaceRe.ReplaceAllString(s, "")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return s
}

func padHeadings(s string) string {
	s = headingPadBeforeRe.ReplaceAllString(s, "$1\n\n$2")
	s = headingPadAfterRe.ReplaceAllString(s, "$1\n\n$2")
	return s
}

// repairEmptyLinks rewrites [text]() to bare text. Repeats until stable so
// nested empty links cannot survive a single run.
func repairEmptyLinks(s string) string {
	for {
		out := emptyLinkRe.ReplaceAllString(s, "$1")
		if out == s {
			return out
		}
		s = out
	}
}

func dropEmptyHeadings(s string) string {
	if !emptyHeadingRe.MatchString(s) {
		return s
	}
	s = emptyHeadingRe.ReplaceAllString(s, "")
	// Removing a line leaves a blank-run gap; re-collapse so the result
	// is a fixed point.
	return blankRunRe.ReplaceAllString(s, "\n\n")
}

func normalizeBullets(s string) string {
	return bulletRe.ReplaceAllString(s, "$1-$2")
}

func repairConcatenatedWords(s string) string {
	s = lowerUpperRe.ReplaceAllString(s, "$1 $2")
	s = sentencePunctRe.ReplaceAllString(s, "$1 $2")
	s = digitLetterRe.ReplaceAllString(s, "$1 $2")
	s = letterDigitRe.ReplaceAllString(s, "$1 $2")
	for _, r := range termRepairs {
		s = r.prefix.ReplaceAllString(s, "$1 $2")
		s = r.suffix.ReplaceAllString(s, "$1 $2")
	}
	return s
}

// stripTrailingBoilerplate cuts known trailing sections (resources, change
// log, videos) from the first anchor line through the end of the text.
func stripTrailingBoilerplate(s string) string {
	if loc := trailingBoilerplateRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return s
}
