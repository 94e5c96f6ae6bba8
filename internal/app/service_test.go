package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/okian/medaltable/internal/domain/model"
	"github.com/okian/medaltable/internal/domain/standings"
	"github.com/okian/medaltable/pkg/logger"
	"github.com/okian/medaltable/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

const resultsText = `Athlete,Team,Placement,Points
Ana,A,1,10
Ben,B,2,8
Cy,A,3,4
Dee,,1,10
Eve,B,DNF,5
`

var errUnavailable = errors.New("unavailable")

type fakeLoader struct {
	text string
	err  error
}

func (f *fakeLoader) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.text, f.err
}

func (f *fakeLoader) Kind() string     { return "file" }
func (f *fakeLoader) Location() string { return "fake://results.csv" }

// newTestService returns a service logging into the returned buffer.
func newTestService(opts ...Option) (*Service, *bytes.Buffer) {
	var buf bytes.Buffer
	_ = logger.Init(logger.WithWriter(&buf))
	return New(opts...), &buf
}

func TestNew(t *testing.T) {
	Convey("Given service creation", t, func() {
		Convey("When no options are given", func() {
			s, _ := newTestService()

			Convey("Then defaults are applied", func() {
				So(s.podiumSize, ShouldEqual, defaultPodiumSize)
				So(s.workers, ShouldBeGreaterThan, 0)
				So(s.logger, ShouldNotBeNil)
			})
		})

		Convey("When invalid sizes are given", func() {
			s, _ := newTestService(WithPodiumSize(0), WithWorkers(-1))

			Convey("Then defaults are kept", func() {
				So(s.podiumSize, ShouldEqual, defaultPodiumSize)
				So(s.workers, ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a service", t, func() {
		ctx := context.Background()

		Convey("When no loader is configured", func() {
			s, _ := newTestService()
			_, err := s.Load(ctx)

			Convey("Then ErrNoLoader is returned", func() {
				So(errors.Is(err, ErrNoLoader), ShouldBeTrue)
			})
		})

		Convey("When the loader succeeds", func() {
			s, buf := newTestService(WithLoader(&fakeLoader{text: resultsText}))
			ds, err := s.Load(ctx)

			Convey("Then the text is parsed into a dataset", func() {
				So(err, ShouldBeNil)
				So(ds.ID, ShouldNotEqual, uuid.Nil)
				So(ds.Source, ShouldEqual, "fake://results.csv")
				So(ds.Columns, ShouldResemble, []string{"Athlete", "Team", "Placement", "Points"})
				So(ds.Rows, ShouldHaveLength, 5)
				So(ds.LoadedAt.IsZero(), ShouldBeFalse)
				So(buf.String(), ShouldContainSubstring, "dataset loaded")
			})
		})

		Convey("When the source has only a header", func() {
			s, buf := newTestService(WithLoader(&fakeLoader{text: "Team,Placement,Points\n"}))
			ds, err := s.Load(ctx)

			Convey("Then the dataset is empty and a warning is logged", func() {
				So(err, ShouldBeNil)
				So(ds.Rows, ShouldBeEmpty)
				So(buf.String(), ShouldContainSubstring, "source has no data rows")
			})
		})

		Convey("When the loader fails", func() {
			s, buf := newTestService(WithLoader(&fakeLoader{err: errUnavailable}))
			ds, err := s.Load(ctx)

			Convey("Then the error is wrapped and logged", func() {
				So(ds, ShouldBeNil)
				So(errors.Is(err, errUnavailable), ShouldBeTrue)
				So(buf.String(), ShouldContainSubstring, "failed to load source")
			})
		})
	})
}

func TestBoard(t *testing.T) {
	Convey("Given a loaded dataset", t, func() {
		ctx := context.Background()
		s, buf := newTestService(WithLoader(&fakeLoader{text: resultsText}))
		ds, err := s.Load(ctx)
		So(err, ShouldBeNil)

		Convey("When grouping by team on points", func() {
			b, err := s.Board(ctx, ds, Query{GroupKey: "Team"})

			Convey("Then entries are ranked by points", func() {
				So(err, ShouldBeNil)
				So(b.View, ShouldEqual, "Team")
				So(b.Sort, ShouldEqual, "points")
				So(b.Total, ShouldEqual, 2)
				So(b.Entries, ShouldHaveLength, 2)
				So(b.Entries[0].Rank, ShouldEqual, 1)
				So(b.Entries[0].Name, ShouldEqual, "A")
				So(b.Entries[0].Gold, ShouldEqual, 1)
				So(b.Entries[0].Bronze, ShouldEqual, 1)
				So(b.Entries[0].Points, ShouldEqual, 14)
				So(b.Entries[1].Name, ShouldEqual, "B")
				So(b.Entries[1].Points, ShouldEqual, 13)
				So(b.Entries[1].Podiums, ShouldEqual, 1)
			})

			Convey("Then the row without a team is skipped with a warning", func() {
				So(b.Skipped, ShouldEqual, 1)
				So(buf.String(), ShouldContainSubstring, "rows degraded while building standings")
				So(buf.String(), ShouldContainSubstring, "missing_group=1")
			})

			Convey("Then the podium is the leading entries", func() {
				So(b.Podium, ShouldResemble, b.Entries)
			})
		})

		Convey("When searching", func() {
			b, err := s.Board(ctx, ds, Query{GroupKey: "Athlete", Sort: "Medals", Search: "E"})

			Convey("Then ranks follow the filtered order", func() {
				So(err, ShouldBeNil)
				So(b.Sort, ShouldEqual, "medals")
				So(b.Search, ShouldEqual, "E")
				So(b.Total, ShouldEqual, 5)
				names := make([]string, len(b.Entries))
				for i, e := range b.Entries {
					names[i] = e.Name
					So(e.Rank, ShouldEqual, i+1)
				}
				So(names, ShouldResemble, []string{"Dee", "Ben", "Eve"})
			})
		})

		Convey("When the search term carries spaces", func() {
			b, err := s.Board(ctx, ds, Query{GroupKey: "Athlete", Search: " e"})

			Convey("Then the spaces must match too", func() {
				So(err, ShouldBeNil)
				So(b.Search, ShouldEqual, " e")
				So(b.Total, ShouldEqual, 5)
				So(b.Empty(), ShouldBeTrue)
			})
		})

		Convey("When the podium size is one", func() {
			s.podiumSize = 1
			b, err := s.Board(ctx, ds, Query{GroupKey: "Team", Sort: "podiums"})

			Convey("Then only the leader stands on it", func() {
				So(err, ShouldBeNil)
				So(b.Podium, ShouldHaveLength, 1)
				So(b.Podium[0].Name, ShouldEqual, "A")
			})
		})

		Convey("When the group key is not a column", func() {
			b, err := s.Board(ctx, ds, Query{GroupKey: "Country"})

			Convey("Then the board is empty and a warning is logged", func() {
				So(err, ShouldBeNil)
				So(b.Empty(), ShouldBeTrue)
				So(b.Skipped, ShouldEqual, 5)
				So(buf.String(), ShouldContainSubstring, "group key is not a column of the dataset")
			})
		})

		Convey("When recording metrics for a missing column", func() {
			_, err := s.Board(ctx, ds, Query{GroupKey: "Nationality"})
			So(err, ShouldBeNil)

			Convey("Then metrics use the shared unknown label", func() {
				labels := groupKeyLabels()
				So(labels, ShouldContainKey, unknownGroupLabel)
				So(labels, ShouldNotContainKey, "Nationality")
			})
		})

		Convey("When the group key has the wrong case", func() {
			b, err := s.Board(ctx, ds, Query{GroupKey: "team"})

			Convey("Then the warning suggests the column", func() {
				So(err, ShouldBeNil)
				So(b.Empty(), ShouldBeTrue)
				So(buf.String(), ShouldContainSubstring, "did_you_mean=Team")
			})
		})

		Convey("When the query is invalid", func() {
			_, errKey := s.Board(ctx, ds, Query{GroupKey: "  "})
			_, errSort := s.Board(ctx, ds, Query{GroupKey: "Team", Sort: "alphabetical"})
			_, errDS := s.Board(ctx, nil, Query{GroupKey: "Team"})

			Convey("Then each failure has its own error", func() {
				So(errors.Is(errKey, ErrEmptyGroupKey), ShouldBeTrue)
				So(errors.Is(errSort, standings.ErrUnknownSortMode), ShouldBeTrue)
				So(errors.Is(errDS, ErrNoDataset), ShouldBeTrue)
			})
		})
	})
}

func TestBoards(t *testing.T) {
	Convey("Given a loaded dataset", t, func() {
		ctx := context.Background()
		s, _ := newTestService(WithLoader(&fakeLoader{text: resultsText}), WithWorkers(2))
		ds, err := s.Load(ctx)
		So(err, ShouldBeNil)

		Convey("When computing several views", func() {
			keys := []string{"Team", "Athlete", "Team", "Athlete"}
			boards, err := s.Boards(ctx, ds, keys, "points", "")

			Convey("Then results follow the key order", func() {
				So(err, ShouldBeNil)
				So(boards, ShouldHaveLength, len(keys))
				for i, key := range keys {
					So(boards[i].View, ShouldEqual, key)
				}
				So(boards[0], ShouldResemble, boards[2])
			})

			Convey("Then each view matches a single computation", func() {
				single, err := s.Board(ctx, ds, Query{GroupKey: "Athlete", Sort: "points"})
				So(err, ShouldBeNil)
				So(boards[1], ShouldResemble, single)
			})
		})

		Convey("When one view is invalid", func() {
			_, err := s.Boards(ctx, ds, []string{"Team", ""}, "points", "")

			Convey("Then the whole call fails", func() {
				So(errors.Is(err, ErrEmptyGroupKey), ShouldBeTrue)
				So(strings.Contains(err.Error(), `view ""`), ShouldBeTrue)
			})
		})

		Convey("When there are no views", func() {
			boards, err := s.Boards(ctx, ds, nil, "points", "")
			So(err, ShouldBeNil)
			So(boards, ShouldBeEmpty)
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := s.Boards(cctx, ds, []string{"Team"}, "points", "")
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})

		Convey("When the dataset is missing", func() {
			_, err := s.Boards(ctx, (*model.Dataset)(nil), []string{"Team"}, "", "")
			So(errors.Is(err, ErrNoDataset), ShouldBeTrue)
		})
	})
}

// groupKeyLabels collects every group_key label value on the metrics registry.
func groupKeyLabels() map[string]bool {
	labels := make(map[string]bool)
	families, err := metrics.GetRegistry().Gather()
	if err != nil {
		return labels
	}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "group_key" {
					labels[l.GetValue()] = true
				}
			}
		}
	}
	return labels
}
