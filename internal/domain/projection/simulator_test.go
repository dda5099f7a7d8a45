package projection_test

import (
	"errors"
	"testing"

	"github.com/okian/scouty/internal/domain/growth"
	"github.com/okian/scouty/internal/domain/model"
	"github.com/okian/scouty/internal/domain/projection"
	. "github.com/smartystreets/goconvey/convey"
)

func forward(id string) *model.Player {
	return &model.Player{
		ID:       id,
		Name:     "Nils Berg",
		Age:      19,
		Position: model.PositionFW,
		Skills:   map[model.Skill]int{model.SkillScoring: 7},
		Salary:   1000,
		TSI:      5000,
		Form:     6,
		Stamina:  5,
	}
}

func scoringWeeks(weeks int) model.TrainingConfig {
	cfg, _ := model.NewTrainingConfig(model.TrainingScoring, weeks, model.DefaultIntensity)
	return cfg
}

func TestSimulator_Simulate(t *testing.T) {
	Convey("Given a simulator over the default growth model", t, func() {
		sim := projection.New(growth.New())

		Convey("When a young forward trains scoring for four weeks", func() {
			// Weekly rate is 0.33, so the level threshold falls in week 4.
			result, err := sim.Simulate(forward("fw-1"), scoringWeeks(4))

			Convey("Then the skill-up lands in week four", func() {
				So(err, ShouldBeNil)
				So(result.SkillUps[model.SkillScoring], ShouldEqual, 1)
				So(result.WeeksToNextSkillUp[model.SkillScoring], ShouldNotBeNil)
				So(*result.WeeksToNextSkillUp[model.SkillScoring], ShouldEqual, 4)
			})

			Convey("Then the remainder carries past the threshold", func() {
				final := result.Trajectory[3].Skills[model.SkillScoring]
				So(final.Level, ShouldEqual, 8)
				So(final.Progress, ShouldAlmostEqual, 0.32)
			})

			Convey("Then every snapshot keeps progress inside [0,1)", func() {
				for _, week := range result.Trajectory {
					for _, st := range week.Skills {
						So(st.Progress, ShouldBeGreaterThanOrEqualTo, 0)
						So(st.Progress, ShouldBeLessThan, 1)
					}
				}
			})

			Convey("Then untrained skills never move", func() {
				for _, week := range result.Trajectory {
					So(week.Skills[model.SkillDefending].Level, ShouldEqual, 0)
					So(week.Skills[model.SkillDefending].Progress, ShouldEqual, 0)
				}
			})

			Convey("Then the total gain matches the rate times the horizon", func() {
				So(result.TotalSkillGain(), ShouldAlmostEqual, 1.32)
			})
		})

		Convey("When the horizon stops short of the threshold", func() {
			result, err := sim.Simulate(forward("fw-1"), scoringWeeks(3))

			Convey("Then no skill-up is reported and the week pointer stays nil", func() {
				So(err, ShouldBeNil)
				So(result.TotalSkillUps(), ShouldEqual, 0)
				So(result.WeeksToNextSkillUp[model.SkillScoring], ShouldBeNil)
			})
		})

		Convey("When the same player is simulated twice", func() {
			p := forward("fw-1")
			first, err1 := sim.Simulate(p, scoringWeeks(6))
			second, err2 := sim.Simulate(p, scoringWeeks(6))

			Convey("Then the runs are identical and leave no residue", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first.TotalSkillGain(), ShouldAlmostEqual, second.TotalSkillGain())
				So(first.SkillUps, ShouldResemble, second.SkillUps)
				So(p.SkillLevel(model.SkillScoring), ShouldEqual, 7)
			})
		})

		Convey("When the player walks in with recorded progress", func() {
			p := forward("fw-1")
			p.SkillProgress = map[model.Skill]float64{model.SkillScoring: 0.9}
			result, err := sim.Simulate(p, scoringWeeks(1))

			Convey("Then the first week crosses immediately", func() {
				So(err, ShouldBeNil)
				So(result.SkillUps[model.SkillScoring], ShouldEqual, 1)
				So(*result.WeeksToNextSkillUp[model.SkillScoring], ShouldEqual, 1)
				final := result.Trajectory[0].Skills[model.SkillScoring]
				So(final.Level, ShouldEqual, 8)
				So(final.Progress, ShouldAlmostEqual, 0.23)
			})

			Convey("Then the gain counts only ground covered after week zero", func() {
				So(result.TotalSkillGain(), ShouldAlmostEqual, 0.33)
			})
		})

		Convey("When the config is invalid", func() {
			Convey("Then an unknown training type fails", func() {
				_, err := sim.Simulate(forward("fw-1"), model.TrainingConfig{Type: "Stamina", Weeks: 4, Intensity: 1})
				So(errors.Is(err, model.ErrInvalidTrainingType), ShouldBeTrue)
			})

			Convey("Then a non-positive horizon fails", func() {
				_, err := sim.Simulate(forward("fw-1"), model.TrainingConfig{Type: model.TrainingScoring, Weeks: 0, Intensity: 1})
				So(errors.Is(err, model.ErrInvalidPlayerData), ShouldBeTrue)
			})
		})

		Convey("When the player snapshot is invalid", func() {
			p := forward("fw-1")
			p.Age = 12

			Convey("Then the run is rejected", func() {
				_, err := sim.Simulate(p, scoringWeeks(4))
				So(errors.Is(err, model.ErrInvalidPlayerData), ShouldBeTrue)
			})
		})
	})
}

func TestSimulator_FinancialModels(t *testing.T) {
	Convey("Given a simulator with synthetic financial models", t, func() {
		sim := projection.New(growth.New(),
			projection.WithTSIPerSkillUp(0.2),
			projection.WithSalaryModel(func(deltaTSI float64) float64 { return deltaTSI * 0.01 }),
			projection.WithValueModel(func(deltaTSI float64) float64 { return deltaTSI * 0.03 }),
		)

		Convey("When one skill-up fires", func() {
			result, err := sim.Simulate(forward("fw-1"), scoringWeeks(4))

			Convey("Then the deltas follow the injected models", func() {
				// deltaTSI = 5000 * 0.2 * 1 = 1000
				So(err, ShouldBeNil)
				So(result.SalaryDelta, ShouldAlmostEqual, 10)
				So(result.ValueDelta, ShouldAlmostEqual, 30)
				So(result.ROI, ShouldAlmostEqual, 3)
			})
		})

		Convey("When no skill-up fires", func() {
			result, err := sim.Simulate(forward("fw-1"), scoringWeeks(2))

			Convey("Then the financial deltas stay at zero", func() {
				So(err, ShouldBeNil)
				So(result.SalaryDelta, ShouldEqual, 0)
				So(result.ValueDelta, ShouldEqual, 0)
			})
		})
	})
}

func TestNearSkillups(t *testing.T) {
	Convey("Given players with recorded sub-level progress", t, func() {
		almost := forward("fw-almost")
		almost.SkillProgress = map[model.Skill]float64{model.SkillScoring: 0.85}
		far := forward("fw-far")
		far.SkillProgress = map[model.Skill]float64{model.SkillScoring: 0.5}
		players := []*model.Player{far, almost}

		Convey("When filtering at the default threshold", func() {
			entries := projection.NearSkillups(players, projection.DefaultNearSkillupThreshold)

			Convey("Then only progress strictly above the threshold qualifies", func() {
				So(len(entries), ShouldEqual, 1)
				So(entries[0].PlayerID, ShouldEqual, "fw-almost")
				So(entries[0].Skill, ShouldEqual, model.SkillScoring)
				So(entries[0].Progress, ShouldAlmostEqual, 0.85)
			})
		})

		Convey("When a player sits exactly on the threshold", func() {
			exact := forward("fw-exact")
			exact.SkillProgress = map[model.Skill]float64{model.SkillScoring: 0.8}
			entries := projection.NearSkillups([]*model.Player{exact}, 0.8)

			Convey("Then it does not qualify", func() {
				So(entries, ShouldBeEmpty)
			})
		})

		Convey("When the threshold is non-positive", func() {
			entries := projection.NearSkillups(players, 0)

			Convey("Then the default threshold applies", func() {
				So(len(entries), ShouldEqual, 1)
			})
		})

		Convey("When several players qualify", func() {
			mid := forward("fw-mid")
			mid.SkillProgress = map[model.Skill]float64{model.SkillScoring: 0.6}
			entries := projection.NearSkillups([]*model.Player{mid, almost, far}, 0.4)

			Convey("Then entries are sorted by descending progress", func() {
				So(len(entries), ShouldEqual, 3)
				So(entries[0].PlayerID, ShouldEqual, "fw-almost")
				So(entries[1].PlayerID, ShouldEqual, "fw-mid")
				So(entries[2].PlayerID, ShouldEqual, "fw-far")
			})
		})
	})
}
