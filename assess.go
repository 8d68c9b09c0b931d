package guidedoc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var imageRefRe = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)

// AssessQuality computes quality metrics for a processed document.
// cleaned is the normalized markdown; preNormalized is the markdown before
// cleanup, consulted only so fallback detection still fires after the
// normalizer has stripped the telltale placeholder text. The assessor is a
// best-effort classifier over hand-tuned phrase lists and thresholds: it
// never fails, it only scores low.
func AssessQuality(cleaned, preNormalized string, cfg Config) QualityMetrics {
	cfg = cfg.withDefaults()

	lower := strings.ToLower(cleaned)
	lowerPre := strings.ToLower(preNormalized)

	length := utf8.RuneCountInString(cleaned)
	headings := len(ExtractHeadings(cleaned))
	codeExamples := strings.Count(cleaned, "```") / 2
	imageRefs := len(imageRefRe.FindAllString(cleaned, -1))

	structureScore := clamp01(float64(headings)*0.1 + float64(codeExamples)*0.2)

	termHits := 0
	for _, term := range domainVocabulary {
		if strings.Contains(lower, term) {
			termHits++
		}
	}
	termsScore := clamp01(float64(termHits) / float64(cfg.TermsTarget))

	hasGuideline := containsAny(lower, guidelinePhrases)
	substantial := length > cfg.SubstantialLength && hasGuideline

	m := QualityMetrics{
		Length:           length,
		StructureScore:   structureScore,
		TermsScore:       termsScore,
		CodeExamples:     codeExamples,
		ImageReferences:  imageRefs,
		Headings:         headings,
		ExtractionMethod: ExtractionMethod,
	}

	if isFallbackContent(lower, lowerPre, substantial, length, cfg) {
		m.IsFallback = true
		m.Score = clamp01(cfg.FallbackScore)
		m.Confidence = clamp01(cfg.FallbackScore)
		return m
	}

	if containsAny(lower, spaPhrases) && length <= cfg.SPAContentLength {
		m.Score = clamp01(cfg.SPAScore)
	} else {
		lengthScore := clamp01(float64(length) / float64(cfg.LengthTarget))
		guideline := 0.0
		if hasGuideline {
			guideline = 1
		}
		structureBonus := 0.0
		if headings >= 2 {
			structureBonus = 1
		}
		m.Score = clamp01(cfg.LengthWeight*lengthScore +
			cfg.StructureWeight*structureScore +
			cfg.TermsWeight*termsScore +
			cfg.GuidelineWeight*guideline +
			cfg.BonusWeight*structureBonus)
	}

	m.Confidence = clamp01(m.Score + cfg.ConfidenceBoost)
	return m
}

// isFallbackContent classifies unusable scrape artifacts. Substantial real
// content is never fallback; otherwise explicit placeholder phrases, a
// JavaScript requirement, or very short text carrying SPA artifacts all
// count as a broken scrape.
func isFallbackContent(lower, lowerPre string, substantial bool, length int, cfg Config) bool {
	if substantial {
		return false
	}
	if containsAny(lower, fallbackPhrases) || containsAny(lowerPre, fallbackPhrases) {
		return true
	}
	mentionsJS := strings.Contains(lower, "javascript") || strings.Contains(lowerPre, "javascript")
	requiresJS := strings.Contains(lower, "required") || strings.Contains(lower, "turn on") ||
		strings.Contains(lowerPre, "required") || strings.Contains(lowerPre, "turn on")
	if mentionsJS && requiresJS {
		return true
	}
	if length < cfg.ShortContentLength && containsAny(lower, spaPhrases) {
		return true
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
