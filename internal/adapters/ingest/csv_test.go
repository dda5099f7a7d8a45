package ingest_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/okian/scouty/internal/adapters/ingest"
	"github.com/okian/scouty/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const rosterHeader = "id,name,age,position,skills,salary,tsi,form,stamina,experience,leadership"

func TestPlayersCSV(t *testing.T) {
	Convey("Given roster CSV documents", t, func() {
		Convey("When the document is well formed", func() {
			doc := rosterHeader + "\n" +
				`p-1,Jan Larsen,22,IM,"{""playmaking"":9,""passing"":7}",1200,9800,6,5,3,2` + "\n" +
				`p-2,Nils Berg,19,FW,"{""scoring"":7}",900,5000,6,5,1,1` + "\n"
			roster, err := ingest.PlayersCSV(strings.NewReader(doc))

			Convey("Then every row parses into a player", func() {
				So(err, ShouldBeNil)
				So(len(roster.Players), ShouldEqual, 2)
				So(roster.Failures, ShouldBeEmpty)
			})

			Convey("Then the embedded skills JSON is decoded", func() {
				p := roster.Players[0]
				So(p.SkillLevel(model.SkillPlaymaking), ShouldEqual, 9)
				So(p.SkillLevel(model.SkillPassing), ShouldEqual, 7)
				So(p.Position, ShouldEqual, model.PositionIM)
				So(p.Salary, ShouldAlmostEqual, 1200)
			})
		})

		Convey("When a progress column is present", func() {
			doc := rosterHeader + ",progress\n" +
				`p-1,Jan Larsen,22,IM,"{""playmaking"":9}",1200,9800,6,5,3,2,"{""playmaking"":0.85}"` + "\n"
			roster, err := ingest.PlayersCSV(strings.NewReader(doc))

			Convey("Then the fractional progress is carried", func() {
				So(err, ShouldBeNil)
				So(roster.Players[0].Progress(model.SkillPlaymaking), ShouldAlmostEqual, 0.85)
			})
		})

		Convey("When a row has an empty id", func() {
			doc := rosterHeader + "\n" +
				`,Jan Larsen,22,IM,"{""playmaking"":9}",1200,9800,6,5,3,2` + "\n"
			roster, err := ingest.PlayersCSV(strings.NewReader(doc))

			Convey("Then an id is generated", func() {
				So(err, ShouldBeNil)
				So(len(roster.Players), ShouldEqual, 1)
				So(roster.Players[0].ID, ShouldNotBeEmpty)
			})
		})

		Convey("When a row omits the form", func() {
			doc := rosterHeader + "\n" +
				`p-1,Jan Larsen,22,IM,"{""playmaking"":9}",1200,9800,,5,3,2` + "\n"
			roster, err := ingest.PlayersCSV(strings.NewReader(doc))

			Convey("Then the midpoint default applies", func() {
				So(err, ShouldBeNil)
				So(len(roster.Players), ShouldEqual, 1)
				So(roster.Players[0].Form, ShouldBeBetweenOrEqual, model.MinForm, model.MaxForm)
			})
		})

		Convey("When one row is broken", func() {
			doc := rosterHeader + "\n" +
				`p-1,Jan Larsen,not-a-number,IM,"{}",1200,9800,6,5,3,2` + "\n" +
				`p-2,Nils Berg,19,FW,"{""scoring"":7}",900,5000,6,5,1,1` + "\n"
			roster, err := ingest.PlayersCSV(strings.NewReader(doc))

			Convey("Then the row fails without aborting the batch", func() {
				So(err, ShouldBeNil)
				So(len(roster.Players), ShouldEqual, 1)
				So(roster.Players[0].ID, ShouldEqual, "p-2")
				So(len(roster.Failures), ShouldEqual, 1)
				So(roster.Failures[0].Row, ShouldEqual, 2)
				So(errors.Is(roster.Failures[0].Err, model.ErrInvalidPlayerData), ShouldBeTrue)
			})
		})

		Convey("When a player id repeats", func() {
			doc := rosterHeader + "\n" +
				`p-1,Jan Larsen,22,IM,"{}",1200,9800,6,5,3,2` + "\n" +
				`p-1,Impostor,25,FW,"{}",800,4000,5,5,1,1` + "\n"
			roster, err := ingest.PlayersCSV(strings.NewReader(doc))

			Convey("Then the first row wins and the duplicate is reported", func() {
				So(err, ShouldBeNil)
				So(len(roster.Players), ShouldEqual, 1)
				So(roster.Players[0].Name, ShouldEqual, "Jan Larsen")
				So(len(roster.Failures), ShouldEqual, 1)
				So(errors.Is(roster.Failures[0].Err, ingest.ErrDuplicateID), ShouldBeTrue)
			})
		})

		Convey("When a required column is missing", func() {
			doc := "id,name,age\np-1,Jan Larsen,22\n"
			_, err := ingest.PlayersCSV(strings.NewReader(doc))

			Convey("Then the whole document is rejected", func() {
				So(errors.Is(err, ingest.ErrBadHeader), ShouldBeTrue)
			})
		})

		Convey("When a row fails the domain validation", func() {
			doc := rosterHeader + "\n" +
				`p-1,Jan Larsen,12,IM,"{}",1200,9800,6,5,3,2` + "\n"
			roster, err := ingest.PlayersCSV(strings.NewReader(doc))

			Convey("Then the validation error lands in the failures", func() {
				So(err, ShouldBeNil)
				So(roster.Players, ShouldBeEmpty)
				So(len(roster.Failures), ShouldEqual, 1)
				So(errors.Is(roster.Failures[0].Err, model.ErrInvalidPlayerData), ShouldBeTrue)
			})
		})
	})
}
