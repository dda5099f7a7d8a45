package ingest_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/okian/scouty/internal/adapters/ingest"
	"github.com/okian/scouty/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlayersJSON(t *testing.T) {
	Convey("Given roster JSON documents", t, func() {
		Convey("When the document is well formed", func() {
			doc := `[
				{"id":"p-1","name":"Jan Larsen","age":22,"position":"IM",
				 "skills":{"Playmaking":9,"passing":7},
				 "progress":{"playmaking":0.6},
				 "salary":1200,"tsi":9800,"form":6,"stamina":5},
				{"id":"p-2","name":"Nils Berg","age":19,"position":"FW",
				 "skills":{"scoring":7},"salary":900,"tsi":5000,"form":6,"stamina":5}
			]`
			roster, err := ingest.PlayersJSON(strings.NewReader(doc))

			Convey("Then every entry parses, with skill names lowercased", func() {
				So(err, ShouldBeNil)
				So(len(roster.Players), ShouldEqual, 2)
				So(roster.Players[0].SkillLevel(model.SkillPlaymaking), ShouldEqual, 9)
				So(roster.Players[0].Progress(model.SkillPlaymaking), ShouldAlmostEqual, 0.6)
			})
		})

		Convey("When an entry is invalid", func() {
			doc := `[
				{"id":"p-1","name":"Jan Larsen","age":12,"position":"IM",
				 "salary":1200,"tsi":9800,"form":6,"stamina":5},
				{"id":"p-2","name":"Nils Berg","age":19,"position":"FW",
				 "skills":{"scoring":7},"salary":900,"tsi":5000,"form":6,"stamina":5}
			]`
			roster, err := ingest.PlayersJSON(strings.NewReader(doc))

			Convey("Then it lands in the failures and the rest survives", func() {
				So(err, ShouldBeNil)
				So(len(roster.Players), ShouldEqual, 1)
				So(roster.Players[0].ID, ShouldEqual, "p-2")
				So(len(roster.Failures), ShouldEqual, 1)
				So(errors.Is(roster.Failures[0].Err, model.ErrInvalidPlayerData), ShouldBeTrue)
			})
		})

		Convey("When an id repeats", func() {
			doc := `[
				{"id":"p-1","name":"A","age":20,"position":"FW","salary":100,"tsi":500,"form":5,"stamina":5},
				{"id":"p-1","name":"B","age":20,"position":"FW","salary":100,"tsi":500,"form":5,"stamina":5}
			]`
			roster, err := ingest.PlayersJSON(strings.NewReader(doc))

			Convey("Then the first entry wins", func() {
				So(err, ShouldBeNil)
				So(len(roster.Players), ShouldEqual, 1)
				So(roster.Players[0].Name, ShouldEqual, "A")
				So(errors.Is(roster.Failures[0].Err, ingest.ErrDuplicateID), ShouldBeTrue)
			})
		})

		Convey("When an entry omits the id", func() {
			doc := `[{"name":"A","age":20,"position":"FW","salary":100,"tsi":500,"form":5,"stamina":5}]`
			roster, err := ingest.PlayersJSON(strings.NewReader(doc))

			Convey("Then an id is generated", func() {
				So(err, ShouldBeNil)
				So(roster.Players[0].ID, ShouldNotBeEmpty)
			})
		})

		Convey("When the document is not a JSON array", func() {
			_, err := ingest.PlayersJSON(strings.NewReader(`{"id":"p-1"}`))

			Convey("Then the whole document is rejected", func() {
				So(errors.Is(err, ingest.ErrParse), ShouldBeTrue)
			})
		})
	})
}

func TestMatchesJSON(t *testing.T) {
	Convey("Given match history JSON documents", t, func() {
		Convey("When the document is well formed", func() {
			doc := `[
				{"date":"2026-08-24","opponent":"FC Nord","result":"2-1","possession":55,"chances":6,"tactics":"normal","formation":"4-4-2"},
				{"date":"2026-08-17","opponent":"SK Syd","result":"0-0","possession":48,"chances":3}
			]`
			matches, err := ingest.MatchesJSON(strings.NewReader(doc))

			Convey("Then the entries keep their order", func() {
				So(err, ShouldBeNil)
				So(len(matches), ShouldEqual, 2)
				So(matches[0].Opponent, ShouldEqual, "FC Nord")
				So(matches[0].Formation, ShouldEqual, "4-4-2")
				scored, conceded, ok := matches[0].Goals()
				So(ok, ShouldBeTrue)
				So(scored, ShouldEqual, 2)
				So(conceded, ShouldEqual, 1)
			})
		})

		Convey("When the document is malformed", func() {
			_, err := ingest.MatchesJSON(strings.NewReader(`{"not":"an array"}`))

			Convey("Then parsing fails", func() {
				So(errors.Is(err, ingest.ErrParse), ShouldBeTrue)
			})
		})
	})
}
