package junior_test

import (
	"testing"

	"github.com/okian/scouty/internal/domain/growth"
	"github.com/okian/scouty/internal/domain/insight"
	"github.com/okian/scouty/internal/domain/junior"
	"github.com/okian/scouty/internal/domain/model"
	"github.com/okian/scouty/internal/domain/projection"
	. "github.com/smartystreets/goconvey/convey"
)

func youth(id string, age int, topSkill int, tsi float64, form int) *model.Player {
	return &model.Player{
		ID:       id,
		Name:     "Emil Aas",
		Age:      age,
		Position: model.PositionFW,
		Skills:   map[model.Skill]int{model.SkillScoring: topSkill},
		Salary:   0,
		TSI:      tsi,
		Form:     form,
		Stamina:  4,
	}
}

func newAnalyzer() *junior.Analyzer {
	g := growth.New()
	return junior.New(insight.New(g), projection.New(g))
}

func TestAnalyzer_Rank(t *testing.T) {
	Convey("Given a youth squad", t, func() {
		a := newAnalyzer()

		Convey("When ranking a standout sixteen year old", func() {
			// age 30 + skill 40 (capped) + tsi 20 + form 10 = 100
			analyses, failures := a.Rank([]*model.Player{youth("j-1", 16, 9, 1200, 5)})

			Convey("Then the potential score caps at one hundred", func() {
				So(failures, ShouldBeEmpty)
				So(len(analyses), ShouldEqual, 1)
				So(analyses[0].PotentialScore, ShouldAlmostEqual, 100)
			})

			Convey("Then the strongest verdict is promote and train", func() {
				So(analyses[0].Recommendation, ShouldEqual, junior.RecommendPromoteTrain)
			})

			Convey("Then the promotion value applies the top multiplier", func() {
				So(analyses[0].PromotionValue, ShouldAlmostEqual, 1200*10*2.0)
			})
		})

		Convey("When ranking a weak older junior", func() {
			// age 0 + skill 10 + tsi 0 + form 4 = 14
			analyses, _ := a.Rank([]*model.Player{youth("j-2", 19, 2, 300, 2)})

			Convey("Then the verdict is release", func() {
				So(analyses[0].PotentialScore, ShouldAlmostEqual, 14)
				So(analyses[0].Recommendation, ShouldEqual, junior.RecommendRelease)
			})
		})

		Convey("When ranking a mixed squad", func() {
			squad := []*model.Player{
				youth("j-low", 19, 2, 300, 2),
				youth("j-top", 16, 9, 1200, 5),
				youth("j-mid", 17, 5, 600, 4),
			}
			analyses, failures := a.Rank(squad)

			Convey("Then the order is descending potential", func() {
				So(failures, ShouldBeEmpty)
				So(len(analyses), ShouldEqual, 3)
				So(analyses[0].PlayerID, ShouldEqual, "j-top")
				So(analyses[1].PlayerID, ShouldEqual, "j-mid")
				So(analyses[2].PlayerID, ShouldEqual, "j-low")
			})
		})

		Convey("When a junior record is invalid", func() {
			bad := youth("j-bad", 19, 2, 300, 2)
			bad.Form = 0
			analyses, failures := a.Rank([]*model.Player{bad, youth("j-ok", 17, 5, 600, 4)})

			Convey("Then the bad record is excluded, not fatal", func() {
				So(len(analyses), ShouldEqual, 1)
				So(len(failures), ShouldEqual, 1)
				So(failures[0].PlayerID, ShouldEqual, "j-bad")
			})
		})
	})
}

func TestAnalyzer_Promotions(t *testing.T) {
	Convey("Given a squad with more candidates than slots", t, func() {
		a := newAnalyzer()
		squad := []*model.Player{
			youth("j-1", 16, 9, 1200, 5), // 100, promote and train
			youth("j-2", 16, 8, 1100, 5), // 100, promote and train
			youth("j-3", 17, 7, 900, 4),  // 20+35+10+8 = 73, promote and train
			youth("j-4", 17, 5, 600, 4),  // 20+25+10+8 = 63, promote
			youth("j-5", 19, 2, 300, 2),  // 14, release
		}

		Convey("When asking for two promotions", func() {
			candidates, failures := a.Promotions(squad, 2)

			Convey("Then only the top two qualify", func() {
				So(failures, ShouldBeEmpty)
				So(len(candidates), ShouldEqual, 2)
				So(candidates[0].PlayerID, ShouldEqual, "j-1")
				So(candidates[1].PlayerID, ShouldEqual, "j-2")
			})
		})

		Convey("When the cap is non-positive", func() {
			candidates, _ := a.Promotions(squad, 0)

			Convey("Then the default cap of three applies", func() {
				So(len(candidates), ShouldEqual, 3)
			})
		})

		Convey("Then release candidates never make the shortlist", func() {
			candidates, _ := a.Promotions(squad, 10)
			for _, c := range candidates {
				So(c.Recommendation, ShouldNotEqual, junior.RecommendRelease)
				So(c.Recommendation, ShouldNotEqual, junior.RecommendTrain)
			}
		})
	})
}

func fieldJunior(id string, pos model.Position, defending int) *model.Player {
	return &model.Player{
		ID:       id,
		Name:     "Ola Lund",
		Age:      17,
		Position: pos,
		Skills:   map[model.Skill]int{model.SkillDefending: defending},
		TSI:      500,
		Form:     4,
		Stamina:  4,
	}
}

func TestAnalyzer_SimulateTraining(t *testing.T) {
	Convey("Given a youth squad and a scoring plan", t, func() {
		a := newAnalyzer()
		cfg, err := model.NewTrainingConfig(model.TrainingScoring, 4, model.DefaultIntensity)
		So(err, ShouldBeNil)

		Convey("When simulating a young forward", func() {
			// rate 0.3 * age 1.0 * affinity 1.0 * form 1.0 * stamina 0.96,
			// boosted by 1.5 -> 0.432/week, 1.728 over four weeks
			impacts, failures, err := a.SimulateTraining([]*model.Player{youth("j-1", 16, 9, 1200, 5)}, cfg)

			Convey("Then the boosted projection crosses a level", func() {
				So(err, ShouldBeNil)
				So(failures, ShouldBeEmpty)
				So(len(impacts), ShouldEqual, 1)
				So(impacts[0].CurrentLevel, ShouldEqual, 9)
				So(impacts[0].ProjectedLevel, ShouldEqual, 10)
				So(impacts[0].Improvement, ShouldAlmostEqual, 1.728, 0.000001)
			})
		})

		Convey("When the squad mixes positions", func() {
			squad := []*model.Player{
				fieldJunior("j-gk", model.PositionGK, 2),
				youth("j-fw", 16, 9, 1200, 5),
			}
			impacts, failures, err := a.SimulateTraining(squad, cfg)

			Convey("Then the biggest improvement ranks first", func() {
				So(err, ShouldBeNil)
				So(failures, ShouldBeEmpty)
				So(impacts[0].PlayerID, ShouldEqual, "j-fw")
				So(impacts[1].PlayerID, ShouldEqual, "j-gk")
				So(impacts[1].Improvement, ShouldEqual, 0)
			})
		})

		Convey("When the training type is unknown", func() {
			_, _, err := a.SimulateTraining([]*model.Player{youth("j-1", 16, 9, 1200, 5)}, model.TrainingConfig{Type: "Stamina", Weeks: 4, Intensity: 1})

			Convey("Then the simulation fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When a junior record is invalid", func() {
			bad := youth("j-bad", 16, 9, 1200, 5)
			bad.Form = 0
			impacts, failures, err := a.SimulateTraining([]*model.Player{bad, youth("j-ok", 17, 5, 600, 4)}, cfg)

			Convey("Then the bad record is excluded, not fatal", func() {
				So(err, ShouldBeNil)
				So(len(impacts), ShouldEqual, 1)
				So(len(failures), ShouldEqual, 1)
				So(failures[0].PlayerID, ShouldEqual, "j-bad")
			})
		})
	})
}

func TestAnalyzer_CompareFormations(t *testing.T) {
	Convey("Given a squad with four defenders, four midfielders and two forwards", t, func() {
		a := newAnalyzer()
		squad := []*model.Player{
			fieldJunior("j-cd1", model.PositionCD, 6),
			fieldJunior("j-cd2", model.PositionCD, 6),
			fieldJunior("j-cd3", model.PositionCD, 6),
			fieldJunior("j-wb1", model.PositionWB, 6),
			fieldJunior("j-im1", model.PositionIM, 0),
			fieldJunior("j-im2", model.PositionIM, 0),
			fieldJunior("j-im3", model.PositionIM, 0),
			fieldJunior("j-wi1", model.PositionWI, 0),
			fieldJunior("j-fw1", model.PositionFW, 0),
			fieldJunior("j-fw2", model.PositionFW, 0),
		}

		Convey("When comparing formations", func() {
			options, recommendation, failures := a.CompareFormations(squad)

			Convey("Then 4-4-2 is the only fieldable shape and wins", func() {
				So(failures, ShouldBeEmpty)
				So(recommendation, ShouldEqual, "4-4-2")
				So(options[0].Formation, ShouldEqual, "4-4-2")
				So(options[0].CanField, ShouldBeTrue)
				// three staffed groups plus the capped back-line bonus
				So(options[0].Suitability, ShouldAlmostEqual, 100)
			})

			Convey("Then understaffed shapes tie and order by name", func() {
				So(options[1].Formation, ShouldEqual, "3-5-2")
				So(options[2].Formation, ShouldEqual, "4-3-3")
				So(options[3].Formation, ShouldEqual, "5-3-2")
				for _, o := range options[1:] {
					So(o.Suitability, ShouldAlmostEqual, 70)
					So(o.CanField, ShouldBeFalse)
				}
			})
		})

		Convey("When a record is invalid", func() {
			bad := fieldJunior("j-bad", model.PositionFW, 0)
			bad.Form = 0
			_, _, failures := a.CompareFormations(append(squad, bad))

			Convey("Then it is excluded with an error entry", func() {
				So(len(failures), ShouldEqual, 1)
				So(failures[0].PlayerID, ShouldEqual, "j-bad")
			})
		})

		Convey("When the squad is empty", func() {
			options, recommendation, failures := a.CompareFormations(nil)

			Convey("Then every shape scores zero and none can field", func() {
				So(failures, ShouldBeEmpty)
				So(len(options), ShouldEqual, 4)
				So(recommendation, ShouldEqual, options[0].Formation)
				for _, o := range options {
					So(o.Suitability, ShouldEqual, 0)
					So(o.CanField, ShouldBeFalse)
				}
			})
		})
	})
}
