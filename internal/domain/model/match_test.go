package model_test

import (
	"testing"

	"github.com/okian/scouty/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMatch_Goals(t *testing.T) {
	Convey("Given match results in the wire format", t, func() {
		Convey("When the result parses", func() {
			m := model.Match{Result: "3-1"}
			scored, conceded, ok := m.Goals()

			Convey("Then both sides are extracted", func() {
				So(ok, ShouldBeTrue)
				So(scored, ShouldEqual, 3)
				So(conceded, ShouldEqual, 1)
			})
		})

		Convey("When the result carries stray whitespace", func() {
			m := model.Match{Result: " 2 - 2 "}
			scored, conceded, ok := m.Goals()

			Convey("Then parsing still succeeds", func() {
				So(ok, ShouldBeTrue)
				So(scored, ShouldEqual, 2)
				So(conceded, ShouldEqual, 2)
			})
		})

		Convey("When the result is malformed", func() {
			for _, raw := range []string{"", "3", "a-b", "walkover"} {
				m := model.Match{Result: raw}
				_, _, ok := m.Goals()

				Convey("Then "+raw+" reports not ok", func() {
					So(ok, ShouldBeFalse)
				})
			}
		})
	})
}

func TestMatch_Points(t *testing.T) {
	Convey("Given the league points rule", t, func() {
		cases := map[string]float64{
			"2-0": 3,
			"1-1": 1,
			"0-3": 0,
			"n/a": 0,
		}
		for result, want := range cases {
			m := model.Match{Result: result}

			Convey("Then "+result+" is worth the right points", func() {
				So(m.Points(), ShouldEqual, want)
			})
		}
	})
}
