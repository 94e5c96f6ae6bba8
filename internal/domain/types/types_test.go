package types_test

import (
	"encoding/json"
	"math"
	"testing"

	types "github.com/okian/medaltable/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEntry(t *testing.T) {
	Convey("Given an Entry struct", t, func() {
		Convey("When creating an entry with zero values", func() {
			entry := types.Entry{}

			Convey("Then it should have default values", func() {
				So(entry.Rank, ShouldEqual, 0)
				So(entry.Name, ShouldEqual, "")
				So(entry.Podiums, ShouldEqual, 0)
				So(entry.Points, ShouldEqual, 0.0)
			})
		})

		Convey("When encoding an entry", func() {
			entry := types.Entry{Rank: 2, Name: "Norway", Gold: 1, Silver: 2, Podiums: 3, Points: 22.5}
			data, err := json.Marshal(entry)

			Convey("Then every counter is present", func() {
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual,
					`{"rank":2,"name":"Norway","gold":1,"silver":2,"bronze":0,"podiums":3,"points":22.5}`)
			})
		})

		Convey("When points are not finite", func() {
			entries := []types.Entry{
				{Rank: 1, Name: "A", Points: math.Inf(1)},
				{Rank: 2, Name: "B", Points: math.NaN()},
				{Rank: 3, Name: "C", Points: math.Inf(-1)},
			}
			data, err := json.Marshal(entries)

			Convey("Then they are written as strings", func() {
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, `"name":"A","gold":0,"silver":0,"bronze":0,"podiums":0,"points":"Infinity"`)
				So(string(data), ShouldContainSubstring, `"points":"NaN"`)
				So(string(data), ShouldContainSubstring, `"points":"-Infinity"`)
			})

			Convey("Then they decode back", func() {
				var decoded []types.Entry
				So(json.Unmarshal(data, &decoded), ShouldBeNil)
				So(decoded, ShouldHaveLength, 3)
				So(decoded[0].Name, ShouldEqual, "A")
				So(math.IsInf(decoded[0].Points, 1), ShouldBeTrue)
				So(math.IsNaN(decoded[1].Points), ShouldBeTrue)
				So(math.IsInf(decoded[2].Points, -1), ShouldBeTrue)
			})
		})

		Convey("When decoding unknown points text", func() {
			var e types.Entry
			So(json.Unmarshal([]byte(`{"name":"A","points":"lots"}`), &e), ShouldNotBeNil)
		})

		Convey("When formatting points", func() {
			So(types.FormatPoints(26), ShouldEqual, "26")
			So(types.FormatPoints(14.5), ShouldEqual, "14.5")
			So(types.FormatPoints(math.Inf(-1)), ShouldEqual, "-Infinity")
		})
	})
}
