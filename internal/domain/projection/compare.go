package projection

import (
	"sort"

	"github.com/okian/scouty/internal/domain/model"
)

// Metric extracts the ranking value from a single projection result.
type Metric func(*Result) float64

// GainMetric is the default comparison metric: total weighted skill gain.
func GainMetric(r *Result) float64 {
	return r.TotalSkillGain()
}

// TypeComparison aggregates a roster-wide simulation of one candidate
// training type.
type TypeComparison struct {
	Training model.TrainingType `json:"training_type"`
	// AffectedPlayers counts players with a non-zero projected gain.
	AffectedPlayers  int     `json:"affected_players"`
	TotalGain        float64 `json:"total_gain"`
	TotalSalaryDelta float64 `json:"total_salary_delta"`
	TotalValueDelta  float64 `json:"total_value_delta"`
	ROI              float64 `json:"roi"`
	// WeeksToFirstSkillUp is the earliest crossing across the roster,
	// nil if no player skills up within the horizon.
	WeeksToFirstSkillUp *int `json:"weeks_to_first_skillup"`
	// Results holds the per-player projections, ranked by the metric.
	Results []*Result `json:"projections"`

	// metricTotal sums the caller metric across players and drives the
	// type-level ranking; TotalGain stays the reported gain regardless
	// of which metric ranks.
	metricTotal float64
}

// Compare simulates every player under every candidate training type
// and ranks the types by the summed metric, descending. Ties break on
// lower cumulative salary delta, then training type name, so the output
// never depends on the order of the candidate set.
func (s *Simulator) Compare(players []*model.Player, candidates []model.TrainingType, weeks int, metric Metric) ([]TypeComparison, error) {
	if metric == nil {
		metric = GainMetric
	}

	// Work on a sorted copy so input order cannot leak into the output.
	types := append([]model.TrainingType(nil), candidates...)
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	comparisons := make([]TypeComparison, 0, len(types))
	for _, t := range types {
		cfg, err := model.NewTrainingConfig(t, weeks, model.DefaultIntensity)
		if err != nil {
			return nil, err
		}

		cmp := TypeComparison{Training: t}
		for _, p := range players {
			result, err := s.Simulate(p, cfg)
			if err != nil {
				return nil, err
			}
			cmp.Results = append(cmp.Results, result)
			gain := result.TotalSkillGain()
			if gain > 0 {
				cmp.AffectedPlayers++
			}
			cmp.TotalGain += gain
			cmp.metricTotal += metric(result)
			cmp.TotalSalaryDelta += result.SalaryDelta
			cmp.TotalValueDelta += result.ValueDelta

			primary, perr := t.PrimarySkill()
			if perr != nil {
				return nil, perr
			}
			if w := result.WeeksToNextSkillUp[primary]; w != nil {
				if cmp.WeeksToFirstSkillUp == nil || *w < *cmp.WeeksToFirstSkillUp {
					week := *w
					cmp.WeeksToFirstSkillUp = &week
				}
			}
		}
		cmp.ROI = cmp.TotalValueDelta / maxFloat(cmp.TotalSalaryDelta, roiEpsilon)

		sort.SliceStable(cmp.Results, func(i, j int) bool {
			a, b := cmp.Results[i], cmp.Results[j]
			ma, mb := metric(a), metric(b)
			if ma != mb {
				return ma > mb
			}
			if a.SalaryDelta != b.SalaryDelta {
				return a.SalaryDelta < b.SalaryDelta
			}
			return a.PlayerID < b.PlayerID
		})

		comparisons = append(comparisons, cmp)
	}

	sort.SliceStable(comparisons, func(i, j int) bool {
		a, b := comparisons[i], comparisons[j]
		if a.metricTotal != b.metricTotal {
			return a.metricTotal > b.metricTotal
		}
		if a.TotalSalaryDelta != b.TotalSalaryDelta {
			return a.TotalSalaryDelta < b.TotalSalaryDelta
		}
		return a.Training < b.Training
	})

	return comparisons, nil
}

func sortNearSkillups(entries []NearSkillupEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Progress != entries[j].Progress {
			return entries[i].Progress > entries[j].Progress
		}
		if entries[i].PlayerID != entries[j].PlayerID {
			return entries[i].PlayerID < entries[j].PlayerID
		}
		return entries[i].Skill < entries[j].Skill
	})
}
