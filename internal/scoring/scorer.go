package scoring

import (
	"github.com/BraidFI-AI/sanctions-engine/internal/config"
	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
	"github.com/BraidFI-AI/sanctions-engine/internal/trace"
)

// Scorer runs the 12-phase comparison pipeline against a resolved
// Config. It is stateless and safe for concurrent use — one Scorer
// services every search request.
type Scorer struct {
	cfg *config.Config
}

// New returns a Scorer bound to cfg. cfg is read fresh from the
// Configuration Resolver for every search so a live reload takes effect
// on the next request without restarting the Scorer.
func New(cfg *config.Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score runs every phase of the pipeline for a single query/candidate
// pair and returns the resulting ScoreBreakdown. tc receives a Record
// call per phase; pass trace.Disabled() when the caller did not request
// a trace.
func (s *Scorer) Score(query, candidate *entity.Entity, tc trace.Context) *ScoreBreakdown {
	bd := newBreakdown(candidate.ID)
	w := s.cfg.Weights
	tw := s.cfg.TokenWeights()
	phoneticDisabled := s.cfg.Similarity.PhoneticFilteringDisabled

	qp, cp := query.Prepared, candidate.Prepared
	if qp == nil || cp == nil {
		// NORMALIZATION/TOKENIZATION must have already run (Prepare is
		// called when entities enter the index or are parsed as a
		// query); an un-prepared entity reaching the Scorer is a
		// caller bug, not a scoring outcome, so it yields an empty
		// unscored breakdown rather than panicking mid-pipeline.
		return bd
	}
	tc.Record(string(PhaseNormalization), candidate.ID, map[string]any{"lang": qp.DetectedLang})
	tc.Record(string(PhaseTokenization), candidate.ID, map[string]any{
		"query_tokens":     qp.PrimaryName.Tokens,
		"candidate_tokens": cp.PrimaryName.Tokens,
	})

	nameScore, filtered := NameComparison(qp.PrimaryName, cp.PrimaryName, tw, phoneticDisabled)
	bd.PhoneticFiltered = filtered
	tc.Record(string(PhasePhoneticFilter), candidate.ID, map[string]any{"filtered": filtered})

	bd.NameScore = nameScore
	bd.Contributed[PhaseNameComparison] = qp.PrimaryName.Folded != "" && cp.PrimaryName.Folded != ""
	bd.ExactMatch = s.cfg.Weights.ExactMatchThreshold > 0 && nameScore >= s.cfg.Weights.ExactMatchThreshold
	tc.Record(string(PhaseNameComparison), candidate.ID, map[string]any{"score": nameScore, "exact_match": bd.ExactMatch})

	altScore, altContributed := AltNameComparison(allNames(qp), cp.AltNames, tw, phoneticDisabled)
	bd.AltNameScore = altScore
	bd.Contributed[PhaseAltNameComparison] = altContributed
	tc.Record(string(PhaseAltNameComparison), candidate.ID, map[string]any{"score": altScore})

	govScore, govContributed := GovIDComparison(qp.GovernmentIDs, cp.GovernmentIDs)
	bd.GovIDScore = govScore
	bd.Contributed[PhaseGovIDComparison] = govContributed
	tc.Record(string(PhaseGovIDComparison), candidate.ID, map[string]any{"score": govScore})

	cryptoScore, cryptoContributed := CryptoComparison(qp.CryptoAddrs, cp.CryptoAddrs)
	bd.CryptoScore = cryptoScore
	bd.Contributed[PhaseCryptoComparison] = cryptoContributed
	tc.Record(string(PhaseCryptoComparison), candidate.ID, map[string]any{"score": cryptoScore})

	contactScore, contactContributed := ContactComparison(qp.Contacts, cp.Contacts)
	bd.ContactScore = contactScore
	bd.Contributed[PhaseContactComparison] = contactContributed
	tc.Record(string(PhaseContactComparison), candidate.ID, map[string]any{"score": contactScore})

	addrWeights := AddressWeights{
		Jaro:               s.cfg.SimilarityWeights(),
		Line1:              w.AddressLine1,
		Line2:              w.AddressLine2,
		City:               w.AddressCity,
		State:              w.AddressState,
		Postal:             w.AddressPostal,
		Country:            w.AddressCountry,
		JaroWinklerWeight:  w.AddressJaroWinklerWeight,
		LevenshteinWeight:  w.AddressLevenshteinWeight,
	}
	addrScore, addrContributed := AddressComparison(qp.Addresses, cp.Addresses, addrWeights)
	bd.AddressScore = addrScore
	bd.Contributed[PhaseAddressComparison] = addrContributed
	tc.Record(string(PhaseAddressComparison), candidate.ID, map[string]any{"score": addrScore})

	dateScore, dateContributed := DateComparison(qp.Dates, cp.Dates)
	bd.DateScore = dateScore
	bd.Contributed[PhaseDateComparison] = dateContributed
	tc.Record(string(PhaseDateComparison), candidate.ID, map[string]any{"score": dateScore})

	bd.FinalScore = s.aggregate(bd)
	tc.Record(string(PhaseAggregation), candidate.ID, map[string]any{"final_score": bd.FinalScore})

	bd.Passed = bd.FinalScore >= s.cfg.Search.MinScoreThreshold
	tc.Record(string(PhaseFiltering), candidate.ID, map[string]any{"passed": bd.Passed})

	return bd
}

// allNames returns the query's primary name plus its own alt names, so
// ALT_NAME_COMPARISON checks every spelling the query carries against
// every alias the candidate carries.
func allNames(pf *entity.PreparedFields) []entity.NormalizedName {
	out := make([]entity.NormalizedName, 0, len(pf.AltNames)+1)
	if pf.PrimaryName.Folded != "" {
		out = append(out, pf.PrimaryName)
	}
	out = append(out, pf.AltNames...)
	return out
}

// aggregate implements AGGREGATION: a weighted average over only the
// phases that are both enabled (the "Enabled by" column's seven phase
// flags) and Contributed bilateral data, matching the pack's "skip
// phases with no data from the weighted denominator" rule rather than
// scoring a missing or disabled comparison as a zero that drags the
// average down.
func (s *Scorer) aggregate(bd *ScoreBreakdown) float64 {
	w := s.cfg.Weights

	type contribution struct {
		phase   Phase
		score   float64
		weight  float64
		enabled bool
	}
	contributions := []contribution{
		{PhaseNameComparison, bd.NameScore, w.NameComparison, w.NameEnabled},
		{PhaseAltNameComparison, bd.AltNameScore, w.AltNameComparison, w.AltNameEnabled},
		{PhaseGovIDComparison, bd.GovIDScore, w.GovIDComparison, w.GovIDEnabled},
		{PhaseCryptoComparison, bd.CryptoScore, w.CryptoComparison, w.CryptoEnabled},
		{PhaseContactComparison, bd.ContactScore, w.ContactComparison, w.ContactEnabled},
		{PhaseAddressComparison, bd.AddressScore, w.AddressComparison, w.AddressEnabled},
		{PhaseDateComparison, bd.DateScore, w.DateComparison, w.DateEnabled},
	}

	var weightedSum, totalWeight float64
	for _, c := range contributions {
		if !c.enabled || !bd.Contributed[c.phase] {
			continue
		}
		weightedSum += c.score * c.weight
		totalWeight += c.weight
	}

	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}
