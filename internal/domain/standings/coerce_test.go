package standings_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/medaltable/internal/domain/standings"
	"github.com/okian/medaltable/internal/domain/tabular"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNumber(t *testing.T) {
	Convey("Given cell values", t, func() {
		Convey("When they are numeric", func() {
			cases := map[string]float64{
				"1":        1,
				" 2 ":      2,
				"":         0,
				"   ":      0,
				"-3.5":     -3.5,
				"+4":       4,
				".5":       0.5,
				"5.":       5,
				"1e3":      1000,
				"0x1F":     31,
				"0o17":     15,
				"0b101":    5,
				"017":      17,
				"Infinity": math.Inf(1),
			}
			for in, want := range cases {
				So(standings.Number(in), ShouldEqual, want)
			}
		})

		Convey("When they are not numeric", func() {
			for _, in := range []string{"DNF", "1st", "inf", "NaN", "nan", "1_000", "0x", "0xZZ", "-0x10", "1,5", "infinity"} {
				So(math.IsNaN(standings.Number(in)), ShouldBeTrue)
			}
		})

		Convey("When they overflow", func() {
			So(math.IsInf(standings.Number("1e400"), 1), ShouldBeTrue)
			So(math.IsInf(standings.Number("-Infinity"), -1), ShouldBeTrue)
		})
	})
}

func TestParseSortMode(t *testing.T) {
	Convey("Given sort mode names", t, func() {
		Convey("When they are known", func() {
			for in, want := range map[string]standings.SortMode{
				"points":      standings.Points,
				" Podiums ":   standings.Podiums,
				"medals":      standings.MedalsFirst,
				"MedalsFirst": standings.MedalsFirst,
			} {
				got, err := standings.ParseSortMode(in)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
			}
		})

		Convey("When they round-trip through String", func() {
			for _, m := range []standings.SortMode{standings.Points, standings.Podiums, standings.MedalsFirst} {
				got, err := standings.ParseSortMode(m.String())
				So(err, ShouldBeNil)
				So(got, ShouldEqual, m)
			}
		})

		Convey("When the name is unknown", func() {
			_, err := standings.ParseSortMode("alphabetical")
			So(errors.Is(err, standings.ErrUnknownSortMode), ShouldBeTrue)
			So(standings.SortMode(9).String(), ShouldEqual, "SortMode(9)")
		})
	})
}

func TestAudit(t *testing.T) {
	Convey("Given rows with skipped and degraded values", t, func() {
		rows := []tabular.Row{
			{"Team": "A", "Placement": "1", "Points": "10"},
			{"Team": "", "Placement": "2", "Points": "8"},
			{"Team": "B", "Placement": "DNF", "Points": "0"},
			{"Team": "C", "Placement": "4", "Points": "--"},
			{"Placement": "DNF", "Points": "??"},
		}

		Convey("When auditing by Team", func() {
			report := standings.Audit(rows, "Team")

			Convey("Then skipped rows are not inspected further", func() {
				So(report, ShouldResemble, standings.AuditReport{
					Rows:             5,
					MissingGroup:     2,
					InvalidPlacement: 1,
					InvalidPoints:    1,
				})
				So(report.Clean(), ShouldBeFalse)
			})
		})

		Convey("When auditing clean rows", func() {
			report := standings.Audit(rows[:1], "Team")

			Convey("Then the report is clean", func() {
				So(report.Clean(), ShouldBeTrue)
			})
		})
	})
}
