package standings

import (
	"strings"

	"github.com/okian/medaltable/internal/domain/tabular"
)

// AuditReport counts the rows and values that Aggregate degrades silently.
type AuditReport struct {
	// Rows is the number of rows inspected.
	Rows int
	// MissingGroup counts rows skipped because the group value was empty.
	MissingGroup int
	// InvalidPlacement counts counted rows whose placement was not a number.
	InvalidPlacement int
	// InvalidPoints counts counted rows whose points were not a number.
	InvalidPoints int
}

// Clean reports whether no row was skipped or degraded.
func (a AuditReport) Clean() bool {
	return a.MissingGroup == 0 && a.InvalidPlacement == 0 && a.InvalidPoints == 0
}

// Audit inspects rows with the same rules Aggregate applies for groupKey.
func Audit(rows []tabular.Row, groupKey string) AuditReport {
	report := AuditReport{Rows: len(rows)}
	for _, row := range rows {
		if strings.TrimSpace(row.Get(groupKey)) == "" {
			report.MissingGroup++
			continue
		}
		if _, ok := placementOf(row.Get(ColumnPlacement)); !ok {
			report.InvalidPlacement++
		}
		if _, ok := pointsOf(row.Get(ColumnPoints)); !ok {
			report.InvalidPoints++
		}
	}
	return report
}
