package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotWithGoals builds a history entry carrying only the goalsScored stat.
func snapshotWithGoals(ts int64, goals float64) *Snapshot {
	return &Snapshot{
		StatLine:  StatLine{GoalsScored: fp(goals)},
		CreatedAt: ts,
	}
}

func TestBuildPoints_CollapsesConsecutiveEqualValues(t *testing.T) {
	history := []*Snapshot{
		snapshotWithGoals(1000, 10),
		snapshotWithGoals(2000, 10),
		snapshotWithGoals(3000, 12),
		snapshotWithGoals(4000, 12),
		snapshotWithGoals(5000, 15),
	}

	points := buildPoints(history, "goalsScored")
	require.Len(t, points, 3)
	assert.Equal(t, []Point{
		{Timestamp: 1000, Value: 10},
		{Timestamp: 3000, Value: 12},
		{Timestamp: 5000, Value: 15},
	}, points)
}

func TestBuildPoints_ReturnToEarlierValueEmits(t *testing.T) {
	// Only consecutive repeats collapse; an oscillation keeps every step.
	history := []*Snapshot{
		snapshotWithGoals(1000, 10),
		snapshotWithGoals(2000, 12),
		snapshotWithGoals(3000, 10),
	}

	points := buildPoints(history, "goalsScored")
	require.Len(t, points, 3)
}

func TestBuildPoints_PrefersRecordedDelta(t *testing.T) {
	// When a snapshot carries a recorded delta for the field, the delta's
	// new value wins over the raw stat.
	history := []*Snapshot{
		snapshotWithGoals(1000, 10),
		{
			StatLine:  StatLine{GoalsScored: fp(99)},
			Changes:   map[string]FieldChange{"goalsScored": {Old: 10, New: 12, Timestamp: 2000}},
			CreatedAt: 2000,
		},
	}

	points := buildPoints(history, "goalsScored")
	require.Len(t, points, 2)
	assert.Equal(t, 12.0, points[1].Value)
}

func TestBuildPoints_SkipsSnapshotsWithoutTheField(t *testing.T) {
	history := []*Snapshot{
		snapshotWithGoals(1000, 10),
		{StatLine: StatLine{Assists: fp(3)}, CreatedAt: 2000},
		snapshotWithGoals(3000, 12),
	}

	points := buildPoints(history, "goalsScored")
	require.Len(t, points, 2)
	assert.Equal(t, int64(3000), points[1].Timestamp)
}

func TestBuildCharts_FieldQualification(t *testing.T) {
	// goalsScored appears twice, assists only once: one series.
	history := []*Snapshot{
		{StatLine: StatLine{GoalsScored: fp(5), Assists: fp(2)}, CreatedAt: 1000},
		{StatLine: StatLine{GoalsScored: fp(8)}, CreatedAt: 2000},
	}

	report := BuildCharts(history)
	require.Len(t, report.Series, 1)
	assert.Equal(t, "goalsScored", report.Series[0].Field)
	assert.Empty(t, report.NotEnough)
}

func TestBuildCharts_ConstantSeriesIsNotEnough(t *testing.T) {
	// Two snapshots with the same value collapse to one point, which is
	// not enough to draw a line.
	history := []*Snapshot{
		snapshotWithGoals(1000, 10),
		snapshotWithGoals(2000, 10),
	}

	report := BuildCharts(history)
	assert.Empty(t, report.Series)
	assert.Equal(t, []string{"goalsScored"}, report.NotEnough)
}

func TestBuildCharts_ScalePerSeries(t *testing.T) {
	history := []*Snapshot{
		{StatLine: StatLine{GoalsScored: fp(5), MinutesPlayed: fp(900)}, CreatedAt: 1000},
		{StatLine: StatLine{GoalsScored: fp(8), MinutesPlayed: fp(1800)}, CreatedAt: 2000},
	}

	report := BuildCharts(history)
	require.Len(t, report.Series, 2)

	// Series follow StatFields order: minutesPlayed before goalsScored.
	minutes, goals := report.Series[0], report.Series[1]
	assert.Equal(t, "minutesPlayed", minutes.Field)
	assert.Equal(t, Scale{Min: 900, Max: 1800, Range: 900}, minutes.Scale)
	assert.Equal(t, "goalsScored", goals.Field)
	assert.Equal(t, Scale{Min: 5, Max: 8, Range: 3}, goals.Scale)
}

func TestNewScale_ConstantValuesGetUnitRange(t *testing.T) {
	scale := NewScale([]float64{7, 7, 7})
	assert.Equal(t, Scale{Min: 7, Max: 7, Range: 1}, scale)
	assert.Equal(t, 0.0, scale.Normalize(7))
}

func TestNewScale_Empty(t *testing.T) {
	scale := NewScale(nil)
	assert.Equal(t, Scale{Range: 1}, scale)
}

func TestBuildComparison_NilForNoChanges(t *testing.T) {
	assert.Nil(t, BuildComparison(nil))
	assert.Nil(t, BuildComparison(map[string]FieldChange{}))
}

func TestBuildComparison_SharedScale(t *testing.T) {
	changes := map[string]FieldChange{
		"goalsScored":   {Old: 5, New: 8},
		"minutesPlayed": {Old: 900, New: 1800},
	}

	cmp := BuildComparison(changes)
	require.NotNil(t, cmp)
	require.Len(t, cmp.Bars, 2)

	// One scale spans the union of all old and new values.
	assert.Equal(t, Scale{Min: 5, Max: 1800, Range: 1795}, cmp.Scale)

	// Bars follow StatFields order.
	assert.Equal(t, "minutesPlayed", cmp.Bars[0].Field)
	assert.Equal(t, "goalsScored", cmp.Bars[1].Field)

	goals := cmp.Bars[1]
	assert.Equal(t, 0.0, goals.OldNorm)
	assert.InDelta(t, 3.0/1795.0, goals.NewNorm, 1e-12)
}

func TestBuildComparison_SingleFieldNormalizesAcrossItsPair(t *testing.T) {
	cmp := BuildComparison(map[string]FieldChange{
		"assists": {Old: 2, New: 4},
	})
	require.NotNil(t, cmp)
	require.Len(t, cmp.Bars, 1)
	assert.Equal(t, 0.0, cmp.Bars[0].OldNorm)
	assert.Equal(t, 1.0, cmp.Bars[0].NewNorm)
}
