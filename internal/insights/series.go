package insights

// Point is one emitted chart point for a statistic.
type Point struct {
	Timestamp int64   `json:"timestamp"`
	Value     float64 `json:"value"`
}

// Scale describes the vertical axis of a chart.
type Scale struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Range float64 `json:"range"`
}

// NewScale computes the axis extrema for the given values. A constant series
// gets a unit range so normalization never divides by zero.
func NewScale(values []float64) Scale {
	if len(values) == 0 {
		return Scale{Range: 1}
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	r := max - min
	if r == 0 {
		r = 1
	}
	return Scale{Min: min, Max: max, Range: r}
}

// Normalize maps a value into [0, 1] relative to the scale.
func (s Scale) Normalize(v float64) float64 {
	return (v - s.Min) / s.Range
}

// Series is the ordered, de-duplicated sequence of one statistic's values
// across a subject's snapshot history. Points are positioned evenly by index
// on the horizontal axis, not proportionally to elapsed time.
type Series struct {
	Field  string  `json:"field"`
	Points []Point `json:"points"`
	Scale  Scale   `json:"scale"`
}

// ChartReport is the renderable outcome of a history extraction: one series
// per chartable statistic, plus the statistics that qualified but did not
// accumulate enough distinct readings to chart.
type ChartReport struct {
	Series    []Series `json:"series"`
	NotEnough []string `json:"notEnough,omitempty"`
}

// fieldQualifies reports whether at least two snapshots in the history carry
// a value for the field. Fields that never repeat get no chart.
func fieldQualifies(history []*Snapshot, field string) bool {
	count := 0
	for _, snap := range history {
		if snap.Value(field) != nil {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// buildPoints walks the history in ascending time order and emits one point
// per change of the field's effective value. The effective value prefers a
// recorded delta's new value over the raw field. Consecutive unchanged
// readings collapse into a single point: the series is the step function of
// changes, not of submissions.
func buildPoints(history []*Snapshot, field string) []Point {
	var points []Point
	var previous *float64

	for _, snap := range history {
		var effective *float64
		if change, ok := snap.Changes[field]; ok {
			v := change.New
			effective = &v
		} else if raw := snap.Value(field); raw != nil {
			effective = raw
		}
		if effective == nil {
			continue
		}
		if previous == nil || *effective != *previous {
			points = append(points, Point{Timestamp: snap.Timestamp(), Value: *effective})
			previous = effective
		}
	}
	return points
}

// BuildCharts produces one series per statistic with enough signal to chart.
// The history must be ordered by ascending time.
func BuildCharts(history []*Snapshot) ChartReport {
	var report ChartReport
	for _, field := range StatFields {
		if !fieldQualifies(history, field) {
			continue
		}
		points := buildPoints(history, field)
		if len(points) < 2 {
			report.NotEnough = append(report.NotEnough, field)
			continue
		}
		values := make([]float64, len(points))
		for i, p := range points {
			values[i] = p.Value
		}
		report.Series = append(report.Series, Series{
			Field:  field,
			Points: points,
			Scale:  NewScale(values),
		})
	}
	return report
}

// ComparisonBar is one statistic's paired old/new values in the before/after
// view shown right after a save that produced deltas.
type ComparisonBar struct {
	Field   string  `json:"field"`
	Old     float64 `json:"old"`
	New     float64 `json:"new"`
	OldNorm float64 `json:"oldNorm"`
	NewNorm float64 `json:"newNorm"`
}

// Comparison normalizes all changed statistics of one update against a single
// shared scale over the union of their old and new values. Bar heights are
// comparable only as positions within that global range.
type Comparison struct {
	Bars  []ComparisonBar `json:"bars"`
	Scale Scale           `json:"scale"`
}

// BuildComparison prepares the before/after view for a set of changes.
// Returns nil when there are no changes. Bars follow StatFields order.
func BuildComparison(changes map[string]FieldChange) *Comparison {
	if len(changes) == 0 {
		return nil
	}

	var values []float64
	for _, c := range changes {
		values = append(values, c.Old, c.New)
	}
	scale := NewScale(values)

	var bars []ComparisonBar
	for _, field := range StatFields {
		c, ok := changes[field]
		if !ok {
			continue
		}
		bars = append(bars, ComparisonBar{
			Field:   field,
			Old:     c.Old,
			New:     c.New,
			OldNorm: scale.Normalize(c.Old),
			NewNorm: scale.Normalize(c.New),
		})
	}
	return &Comparison{Bars: bars, Scale: scale}
}
