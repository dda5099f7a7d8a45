// Package app provides the core service that wires ingestion, the
// projection engine, and the reporters behind the command surface.
package app

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/scouty/internal/config"
	"github.com/okian/scouty/internal/domain/growth"
	"github.com/okian/scouty/internal/domain/insight"
	"github.com/okian/scouty/internal/domain/junior"
	"github.com/okian/scouty/internal/domain/matchlog"
	"github.com/okian/scouty/internal/domain/model"
	"github.com/okian/scouty/internal/domain/projection"
	"github.com/okian/scouty/internal/domain/report"
	"github.com/okian/scouty/pkg/logger"
	"github.com/okian/scouty/pkg/metrics"
)

// Service implements the engine entry points behind the CLI. Every
// method is a pure function of its inputs; the service itself only
// carries configuration and stateless components, so it is safe to
// share between goroutines.
type Service struct {
	growth    *growth.Model
	simulator *projection.Simulator
	scorer    *insight.Scorer
	juniors   *junior.Analyzer

	workerCount   int
	nearThreshold float64
	maxPromotions int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount bounds the parallel per-player fan-out.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithNearSkillupThreshold sets the proximity threshold.
func WithNearSkillupThreshold(threshold float64) Option {
	return func(s *Service) {
		if threshold > 0 && threshold < 1 {
			s.nearThreshold = threshold
		}
	}
}

// WithMaxPromotions caps the junior promotion shortlist.
func WithMaxPromotions(max int) Option {
	return func(s *Service) {
		if max > 0 {
			s.maxPromotions = max
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGrowthModel replaces the growth model (and everything built on it).
func WithGrowthModel(g *growth.Model) Option {
	return func(s *Service) {
		if g != nil {
			s.growth = g
		}
	}
}

// WithSimulator replaces the training simulator.
func WithSimulator(sim *projection.Simulator) Option {
	return func(s *Service) {
		if sim != nil {
			s.simulator = sim
		}
	}
}

// WithScorer replaces the insight scorer.
func WithScorer(sc *insight.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// New constructs a Service. Components left unset are built with their
// default tables around a shared growth model.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:   runtime.NumCPU() * 2,
		nearThreshold: projection.DefaultNearSkillupThreshold,
		maxPromotions: 3,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("engine")
	}
	if s.growth == nil {
		s.growth = growth.New()
	}
	if s.simulator == nil {
		s.simulator = projection.New(s.growth)
	}
	if s.scorer == nil {
		s.scorer = insight.New(s.growth)
	}
	s.juniors = junior.New(s.scorer, s.simulator)

	metrics.UpdateWorkerCount(s.workerCount)
	return s
}

// FromConfig translates a loaded Config into service options, building
// the growth model, simulator, and scorer from the configured tables.
func FromConfig(cfg *config.Config) []Option {
	brackets := make([]growth.AgeBracket, len(cfg.AgeBrackets))
	for i, b := range cfg.AgeBrackets {
		brackets[i] = growth.AgeBracket{MaxAge: b.MaxAge, Factor: b.Factor}
	}
	rates := make(map[model.Skill]float64, len(cfg.BaseRates))
	for name, rate := range cfg.BaseRates {
		rates[model.Skill(name)] = rate
	}
	affinity := make(map[model.Position]map[model.TrainingType]float64, len(cfg.PositionAffinity))
	for pos, row := range cfg.PositionAffinity {
		converted := make(map[model.TrainingType]float64, len(row))
		for training, factor := range row {
			converted[model.TrainingType(training)] = factor
		}
		affinity[model.Position(pos)] = converted
	}
	profiles := make(map[model.Position]map[model.Skill]float64, len(cfg.RoleProfiles))
	for pos, profile := range cfg.RoleProfiles {
		converted := make(map[model.Skill]float64, len(profile))
		for skill, weight := range profile {
			converted[model.Skill(skill)] = weight
		}
		profiles[model.Position(pos)] = converted
	}

	g := growth.New(
		growth.WithAgeBrackets(brackets),
		growth.WithAffinity(affinity),
		growth.WithBaseRates(rates),
		growth.WithFormScale(cfg.FormIntercept, cfg.FormSlope),
		growth.WithStaminaScale(cfg.StaminaIntercept, cfg.StaminaSlope, cfg.StaminaCap),
	)
	salaryPerTSI := cfg.SalaryPerTSI
	valuePerTSI := cfg.ValuePerTSI
	sim := projection.New(g,
		projection.WithTSIPerSkillUp(cfg.TSIPerSkillUp),
		projection.WithSalaryModel(func(deltaTSI float64) float64 { return deltaTSI * salaryPerTSI }),
		projection.WithValueModel(func(deltaTSI float64) float64 { return deltaTSI * valuePerTSI }),
	)
	sc := insight.New(g,
		insight.WithProfiles(profiles),
		insight.WithWeights(insight.Weights{
			RoleFit:     cfg.CompositeWeights.RoleFit,
			Potential:   cfg.CompositeWeights.Potential,
			CostBenefit: cfg.CompositeWeights.CostBenefit,
		}),
	)

	return []Option{
		WithGrowthModel(g),
		WithSimulator(sim),
		WithScorer(sc),
		WithWorkerCount(cfg.WorkerCount),
		WithNearSkillupThreshold(cfg.NearSkillupThreshold),
		WithMaxPromotions(cfg.MaxPromotions),
	}
}

// AnalyzeRoster scores every player, ranked by composite score.
func (s *Service) AnalyzeRoster(ctx context.Context, players []*model.Player) report.Insights {
	metrics.UpdateRosterSize(len(players))

	scores, failures := s.scorer.ScoreRoster(players)
	for range failures {
		metrics.RecordPlayerExcluded()
	}
	for range scores {
		metrics.RecordPlayerScored()
	}
	if len(failures) > 0 {
		s.logger.Warn(ctx, "players excluded from analysis", logger.Int("excluded", len(failures)))
	}
	return report.NewInsights(scores, report.MissingSkillWarnings(players), failures)
}

// Snapshot builds the whole-squad overview.
func (s *Service) Snapshot(ctx context.Context, players []*model.Player) report.Snapshot {
	metrics.UpdateRosterSize(len(players))
	scores, failures := s.scorer.ScoreRoster(players)
	if len(failures) > 0 {
		s.logger.Warn(ctx, "players excluded from snapshot", logger.Int("excluded", len(failures)))
	}
	return report.NewSnapshot(players, scores, report.MissingSkillWarnings(players), failures)
}

// ProjectTraining simulates the roster under one training config. The
// per-player runs share no state and fan out across the worker budget.
func (s *Service) ProjectTraining(ctx context.Context, players []*model.Player, cfg model.TrainingConfig) (report.Trajectory, error) {
	if !cfg.Type.Valid() {
		return report.Trajectory{}, model.ErrInvalidTrainingType
	}
	metrics.UpdateRosterSize(len(players))

	results := make([]*projection.Result, len(players))
	var mu sync.Mutex
	var failures []model.PlayerError

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerCount)
	for i, p := range players {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			result, err := s.simulator.Simulate(p, cfg)
			metrics.RecordSimulationLatency(float64(time.Since(start).Milliseconds()))
			if err != nil {
				metrics.RecordPlayerExcluded()
				mu.Lock()
				failures = append(failures, model.PlayerError{PlayerID: p.ID, Err: err})
				mu.Unlock()
				return nil // per-player errors never abort the batch
			}
			metrics.RecordPlayerScored()
			metrics.RecordSkillUps(result.TotalSkillUps())
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.Trajectory{}, err
	}

	completed := make([]*projection.Result, 0, len(results))
	for _, r := range results {
		if r != nil {
			completed = append(completed, r)
		}
	}
	s.logger.Debug(ctx, "training projection complete",
		logger.String("training", string(cfg.Type)),
		logger.Int("weeks", cfg.Weeks),
		logger.Int("players", len(completed)),
		logger.Int("excluded", len(failures)),
	)
	return report.NewTrajectory(cfg.Type, cfg.Weeks, completed, report.MissingSkillWarnings(players), failures), nil
}

// CompareTraining ranks candidate training types over the roster. An
// empty candidate set compares all training types.
func (s *Service) CompareTraining(ctx context.Context, players []*model.Player, candidates []model.TrainingType, weeks int) (report.Comparison, error) {
	if len(candidates) == 0 {
		candidates = model.TrainingTypes()
	}
	metrics.UpdateRosterSize(len(players))

	// Invalid players are excluded up front so one bad record cannot
	// fail every candidate simulation.
	valid := make([]*model.Player, 0, len(players))
	var failures []model.PlayerError
	for _, p := range players {
		if err := p.Validate(); err != nil {
			metrics.RecordPlayerExcluded()
			failures = append(failures, model.PlayerError{PlayerID: p.ID, Err: err})
			continue
		}
		valid = append(valid, p)
	}

	rankings, err := s.simulator.Compare(valid, candidates, weeks, nil)
	if err != nil {
		return report.Comparison{}, err
	}
	s.logger.Debug(ctx, "training comparison complete",
		logger.Int("candidates", len(candidates)),
		logger.Int("players", len(valid)),
	)
	return report.NewComparison(weeks, rankings, report.MissingSkillWarnings(players), failures), nil
}

// NearSkillups lists (player, skill) pairs already close to a crossing.
func (s *Service) NearSkillups(ctx context.Context, players []*model.Player) report.NearSkillup {
	entries := projection.NearSkillups(players, s.nearThreshold)
	s.logger.Debug(ctx, "near-skillup scan complete",
		logger.Float64("threshold", s.nearThreshold),
		logger.Int("candidates", len(entries)),
	)
	return report.NewNearSkillup(s.nearThreshold, entries, report.MissingSkillWarnings(players))
}

// AnalyzeJuniors ranks the youth squad by promotion potential.
// promotionsOnly trims the list to the promotion shortlist.
func (s *Service) AnalyzeJuniors(ctx context.Context, players []*model.Player, promotionsOnly bool, max int) report.Juniors {
	if max <= 0 {
		max = s.maxPromotions
	}
	var (
		analyses []junior.Analysis
		failures []model.PlayerError
	)
	if promotionsOnly {
		analyses, failures = s.juniors.Promotions(players, max)
	} else {
		analyses, failures = s.juniors.Rank(players)
	}
	s.logger.Debug(ctx, "junior analysis complete",
		logger.Int("juniors", len(analyses)),
		logger.Int("excluded", len(failures)),
	)
	return report.NewJuniors(analyses, report.MissingSkillWarnings(players), failures)
}

// SimulateJuniorTraining projects each junior's primary-skill growth
// under the given plan, with the youth training boost applied.
func (s *Service) SimulateJuniorTraining(ctx context.Context, players []*model.Player, cfg model.TrainingConfig) (report.JuniorTraining, error) {
	impacts, failures, err := s.juniors.SimulateTraining(players, cfg)
	if err != nil {
		return report.JuniorTraining{}, err
	}
	s.logger.Debug(ctx, "junior training simulation complete",
		logger.String("training", string(cfg.Type)),
		logger.Int("weeks", cfg.Weeks),
		logger.Int("juniors", len(impacts)),
		logger.Int("excluded", len(failures)),
	)
	return report.NewJuniorTraining(cfg.Type, cfg.Weeks, impacts, report.MissingSkillWarnings(players), failures), nil
}

// CompareJuniorFormations scores the standard formations against the
// youth squad's position mix.
func (s *Service) CompareJuniorFormations(ctx context.Context, players []*model.Player) report.JuniorFormations {
	options, recommendation, failures := s.juniors.CompareFormations(players)
	s.logger.Debug(ctx, "junior formation comparison complete",
		logger.String("recommendation", recommendation),
		logger.Int("excluded", len(failures)),
	)
	return report.NewJuniorFormations(options, recommendation, report.MissingSkillWarnings(players), failures)
}

// ExtractMatchPatterns analyzes the full match history.
func (s *Service) ExtractMatchPatterns(_ context.Context, matches []model.Match) matchlog.Patterns {
	return matchlog.ExtractPatterns(matches)
}

// RecentForm summarizes the last lastN matches.
func (s *Service) RecentForm(_ context.Context, matches []model.Match, lastN int) matchlog.RecentForm {
	return matchlog.AnalyzeRecentForm(matches, lastN)
}
