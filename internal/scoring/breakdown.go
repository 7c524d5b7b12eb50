// Package scoring implements the Scorer: the 12-phase comparison
// pipeline that turns a query entity and a candidate entity into a
// ScoreBreakdown, following the same weighted-signal-composition shape
// as a calibrated risk score, generalized from a single fixed formula
// to a configurable, per-phase weighted average over whichever phases
// have bilateral data for this particular pair.
package scoring

// Phase names the 12 comparison phases, in pipeline order. Every
// invocation of the Scorer runs them in this order and records which
// ones actually contributed data for this pair.
type Phase string

const (
	PhaseNormalization     Phase = "NORMALIZATION"
	PhaseTokenization      Phase = "TOKENIZATION"
	PhasePhoneticFilter    Phase = "PHONETIC_FILTER"
	PhaseNameComparison    Phase = "NAME_COMPARISON"
	PhaseAltNameComparison Phase = "ALT_NAME_COMPARISON"
	PhaseGovIDComparison   Phase = "GOV_ID_COMPARISON"
	PhaseCryptoComparison  Phase = "CRYPTO_COMPARISON"
	PhaseContactComparison Phase = "CONTACT_COMPARISON"
	PhaseAddressComparison Phase = "ADDRESS_COMPARISON"
	PhaseDateComparison    Phase = "DATE_COMPARISON"
	PhaseAggregation       Phase = "AGGREGATION"
	PhaseFiltering         Phase = "FILTERING"
)

// AllPhases lists the pipeline in execution order.
var AllPhases = []Phase{
	PhaseNormalization,
	PhaseTokenization,
	PhasePhoneticFilter,
	PhaseNameComparison,
	PhaseAltNameComparison,
	PhaseGovIDComparison,
	PhaseCryptoComparison,
	PhaseContactComparison,
	PhaseAddressComparison,
	PhaseDateComparison,
	PhaseAggregation,
	PhaseFiltering,
}

// ScoreBreakdown is the result of scoring one candidate against the
// query entity: a per-phase contribution record plus the final
// aggregated score, mirroring the calibrated weighted-signal breakdown
// pattern this pipeline is built on, generalized from a single fixed
// baseline score to a configurable weighted average over only the
// phases that had bilateral data to compare.
type ScoreBreakdown struct {
	EntityID string

	NameScore    float64
	AltNameScore float64
	GovIDScore   float64
	CryptoScore  float64
	ContactScore float64
	AddressScore float64
	DateScore    float64

	// Contributed marks which comparison phases actually had bilateral
	// data (both the query and the candidate supplied a value for that
	// field). A phase enters the weighted denominator only when it
	// contributed and its enable flag is set.
	Contributed map[Phase]bool

	FinalScore float64

	// PhoneticFiltered records whether PHONETIC_FILTER short-circuited
	// NAME_COMPARISON to zero without running the full kernel.
	PhoneticFiltered bool

	// Passed records whether FinalScore cleared the configured
	// min_score_threshold in the FILTERING phase.
	Passed bool

	// ExactMatch records whether NameScore met or exceeded the
	// configured exact_match_threshold.
	ExactMatch bool
}

func newBreakdown(entityID string) *ScoreBreakdown {
	return &ScoreBreakdown{
		EntityID:    entityID,
		Contributed: make(map[Phase]bool),
	}
}
