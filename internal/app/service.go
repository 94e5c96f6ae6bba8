// Package service loads results datasets and turns them into standings
// boards.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/medaltable/internal/adapters/source"
	"github.com/okian/medaltable/internal/domain/model"
	"github.com/okian/medaltable/internal/domain/standings"
	"github.com/okian/medaltable/internal/domain/tabular"
	"github.com/okian/medaltable/pkg/logger"
	"github.com/okian/medaltable/pkg/metrics"
)

const (
	defaultPodiumSize = 3

	componentSource   = "source"
	componentService  = "service"
	outcomeOK         = "ok"
	outcomeError      = "error"
	errTypeFetch      = "fetch"
	errTypeBadRequest = "bad_request"

	// Group keys that are not dataset columns share one metrics label, so
	// typos cannot grow the series count.
	unknownGroupLabel = "_unknown"
)

// Query selects one standings view of a dataset.
type Query struct {
	GroupKey string // column to group rows by, e.g. "Team"
	Sort     string // sort mode name; empty means points
	Search   string // case-insensitive name filter; empty keeps every entry
}

// Service computes standings boards. It holds no per-dataset state, so one
// Service may serve concurrent calls.
type Service struct {
	loader     source.Loader
	podiumSize int
	workers    int
	logger     logger.Logger
}

// New constructs a Service. Without WithLogger it logs to the global logger,
// which must already be initialized.
func New(opts ...Option) *Service {
	s := &Service{
		podiumSize: defaultPodiumSize,
		workers:    runtime.NumCPU(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	return s
}

// Load fetches the source text and parses it into a dataset.
func (s *Service) Load(ctx context.Context) (*model.Dataset, error) {
	if s.loader == nil {
		return nil, ErrNoLoader
	}

	start := time.Now()
	text, err := s.loader.Load(ctx)
	took := time.Since(start)
	if err != nil {
		metrics.RecordLoad(s.loader.Kind(), outcomeError, millis(took))
		metrics.RecordErrorByComponent(componentSource, errTypeFetch)
		s.logger.Error(ctx, "failed to load source",
			logger.String("location", s.loader.Location()),
			logger.Error(err),
		)
		return nil, fmt.Errorf("load %s: %w", s.loader.Location(), err)
	}
	metrics.RecordLoad(s.loader.Kind(), outcomeOK, millis(took))

	parseStart := time.Now()
	ds := &model.Dataset{
		ID:      uuid.New(),
		Source:  s.loader.Location(),
		Columns: tabular.Header(text),
		Rows:    tabular.Parse(text),
	}
	metrics.RecordParse(len(ds.Rows), millis(time.Since(parseStart)))
	ds.LoadedAt = time.Now()

	s.logger.Info(ctx, "dataset loaded",
		logger.String("dataset", ds.ID.String()),
		logger.String("location", ds.Source),
		logger.Int("rows", len(ds.Rows)),
		logger.Int("columns", len(ds.Columns)),
		logger.Duration("took", took),
	)
	if len(ds.Rows) == 0 {
		s.logger.Warn(ctx, "source has no data rows", logger.String("location", ds.Source))
	}
	return ds, nil
}

// Board aggregates ds by q.GroupKey, orders it by q.Sort, filters it by
// q.Search and ranks the result. Rows without a group value are left out and
// counted in Board.Skipped.
func (s *Service) Board(ctx context.Context, ds *model.Dataset, q Query) (model.Board, error) {
	if err := ctx.Err(); err != nil {
		return model.Board{}, err
	}
	if ds == nil {
		return model.Board{}, ErrNoDataset
	}
	key := strings.TrimSpace(q.GroupKey)
	if key == "" {
		metrics.RecordErrorByComponent(componentService, errTypeBadRequest)
		return model.Board{}, ErrEmptyGroupKey
	}
	mode := standings.Points
	if strings.TrimSpace(q.Sort) != "" {
		var err error
		if mode, err = standings.ParseSortMode(q.Sort); err != nil {
			metrics.RecordErrorByComponent(componentService, errTypeBadRequest)
			return model.Board{}, err
		}
	}

	log := s.logger.With(
		logger.String("dataset", ds.ID.String()),
		logger.String("view", key),
	)
	groupLabel := key
	if !ds.HasColumn(key) {
		groupLabel = unknownGroupLabel
	}
	if len(ds.Columns) > 0 && !ds.HasColumn(key) {
		fields := []logger.Field{logger.Strings("columns", ds.Columns)}
		if c, ok := closestColumn(key, ds.Columns); ok {
			fields = append(fields, logger.String("did_you_mean", c))
		}
		log.Warn(ctx, "group key is not a column of the dataset", fields...)
	}

	start := time.Now()
	audit := standings.Audit(ds.Rows, key)
	ranking := standings.NewRanking(standings.Aggregate(ds.Rows, key, mode))
	filtered := ranking.Filter(q.Search)
	board := model.Board{
		View:    key,
		Sort:    mode.String(),
		Search:  q.Search,
		Total:   len(ranking),
		Skipped: audit.MissingGroup,
		Podium:  filtered.TopN(s.podiumSize).Entries(),
		Entries: filtered.Entries(),
	}
	metrics.RecordAggregation(board.Sort, millis(time.Since(start)))
	metrics.UpdateStandingsEntries(groupLabel, board.Total)

	if !audit.Clean() {
		metrics.RecordRowsSkipped(groupLabel, audit.MissingGroup)
		metrics.RecordInvalidValues(standings.ColumnPlacement, audit.InvalidPlacement)
		metrics.RecordInvalidValues(standings.ColumnPoints, audit.InvalidPoints)
		log.Warn(ctx, "rows degraded while building standings",
			logger.Int("rows", audit.Rows),
			logger.Int("missing_group", audit.MissingGroup),
			logger.Int("invalid_placement", audit.InvalidPlacement),
			logger.Int("invalid_points", audit.InvalidPoints),
		)
	}
	log.Debug(ctx, "board computed",
		logger.String("sort", board.Sort),
		logger.Int("entries", len(board.Entries)),
		logger.Int("total", board.Total),
	)
	return board, nil
}

// Boards computes one board per group key, in the order of keys. Views are
// computed concurrently over the shared rows, at most s.workers at a time.
func (s *Service) Boards(ctx context.Context, ds *model.Dataset, keys []string, sort, search string) ([]model.Board, error) {
	boards := make([]model.Board, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, key := range keys {
		g.Go(func() error {
			b, err := s.Board(gctx, ds, Query{GroupKey: key, Sort: sort, Search: search})
			if err != nil {
				return fmt.Errorf("view %q: %w", key, err)
			}
			boards[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Error(ctx, "failed to compute boards", logger.Error(err))
		}
		return nil, err
	}
	return boards, nil
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
