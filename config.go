package guidedoc

// Config holds the tuned thresholds and weights of the processing pipeline.
// The values are empirical: they were arrived at by inspecting scored output
// on real scraped pages, not derived from first principles. Every knob is a
// named field so retuning never touches pipeline logic. The yaml package
// loads overrides from a file; zero values fall back to DefaultConfig.
type Config struct {
	// LengthTarget is the cleaned-markdown character count at which the
	// length sub-score reaches its maximum.
	LengthTarget int `yaml:"length_target" json:"length_target"`

	// SubstantialLength is the minimum character count for content to
	// count as "substantial" during fallback detection, provided a
	// guideline-signal phrase is also present.
	SubstantialLength int `yaml:"substantial_length" json:"substantial_length"`

	// ShortContentLength is the character count under which SPA artifact
	// phrases mark the content as fallback.
	ShortContentLength int `yaml:"short_content_length" json:"short_content_length"`

	// SPAContentLength is the character count under which SPA artifact
	// phrases cap the score at SPAScore instead of full scoring.
	SPAContentLength int `yaml:"spa_content_length" json:"spa_content_length"`

	// HeadingDupThreshold is the line length above which a duplicate
	// heading is kept on the assumption it carries more structure.
	HeadingDupThreshold int `yaml:"heading_dup_threshold" json:"heading_dup_threshold"`

	// TermsTarget is the number of domain vocabulary hits at which the
	// terms sub-score reaches its maximum.
	TermsTarget int `yaml:"terms_target" json:"terms_target"`

	// Score weights. They sum to 1 so a document that maxes every
	// sub-score lands exactly at 1.0.
	LengthWeight    float64 `yaml:"length_weight" json:"length_weight"`
	StructureWeight float64 `yaml:"structure_weight" json:"structure_weight"`
	TermsWeight     float64 `yaml:"terms_weight" json:"terms_weight"`
	GuidelineWeight float64 `yaml:"guideline_weight" json:"guideline_weight"`
	BonusWeight     float64 `yaml:"bonus_weight" json:"bonus_weight"`

	// FallbackScore is the score and confidence assigned to fallback
	// content.
	FallbackScore float64 `yaml:"fallback_score" json:"fallback_score"`

	// SPAScore is the capped score for short content that still carries
	// SPA artifact phrases.
	SPAScore float64 `yaml:"spa_score" json:"spa_score"`

	// ConfidenceBoost is added to the score to derive confidence for
	// non-fallback content.
	ConfidenceBoost float64 `yaml:"confidence_boost" json:"confidence_boost"`

	// MaxKeywords caps the extracted keyword set.
	MaxKeywords int `yaml:"max_keywords" json:"max_keywords"`

	// MaxRelated caps the related-sections set.
	MaxRelated int `yaml:"max_related" json:"max_related"`
}

// DefaultConfig returns the tuning the pipeline ships with.
func DefaultConfig() Config {
	return Config{
		LengthTarget:        800,
		SubstantialLength:   500,
		ShortContentLength:  200,
		SPAContentLength:    400,
		HeadingDupThreshold: 20,
		TermsTarget:         10,
		LengthWeight:        0.2,
		StructureWeight:     0.15,
		TermsWeight:         0.15,
		GuidelineWeight:     0.35,
		BonusWeight:         0.15,
		FallbackScore:       0.1,
		SPAScore:            0.3,
		ConfidenceBoost:     0.1,
		MaxKeywords:         20,
		MaxRelated:          5,
	}
}

// withDefaults fills zero-valued fields from DefaultConfig so a partially
// populated Config behaves sensibly.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.LengthTarget <= 0 {
		c.LengthTarget = def.LengthTarget
	}
	if c.SubstantialLength <= 0 {
		c.SubstantialLength = def.SubstantialLength
	}
	if c.ShortContentLength <= 0 {
		c.ShortContentLength = def.ShortContentLength
	}
	if c.SPAContentLength <= 0 {
		c.SPAContentLength = def.SPAContentLength
	}
	if c.HeadingDupThreshold <= 0 {
		c.HeadingDupThreshold = def.HeadingDupThreshold
	}
	if c.TermsTarget <= 0 {
		c.TermsTarget = def.TermsTarget
	}
	if c.LengthWeight <= 0 {
		c.LengthWeight = def.LengthWeight
	}
	if c.StructureWeight <= 0 {
		c.StructureWeight = def.StructureWeight
	}
	if c.TermsWeight <= 0 {
		c.TermsWeight = def.TermsWeight
	}
	if c.GuidelineWeight <= 0 {
		c.GuidelineWeight = def.GuidelineWeight
	}
	if c.BonusWeight <= 0 {
		c.BonusWeight = def.BonusWeight
	}
	if c.FallbackScore <= 0 {
		c.FallbackScore = def.FallbackScore
	}
	if c.SPAScore <= 0 {
		c.SPAScore = def.SPAScore
	}
	if c.ConfidenceBoost <= 0 {
		c.ConfidenceBoost = def.ConfidenceBoost
	}
	if c.MaxKeywords <= 0 {
		c.MaxKeywords = def.MaxKeywords
	}
	if c.MaxRelated <= 0 {
		c.MaxRelated = def.MaxRelated
	}
	return c
}
