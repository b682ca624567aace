package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 { return &v }

func TestComputeChanges_FirstSnapshot(t *testing.T) {
	current := &StatLine{GoalsScored: fp(5), Assists: fp(2)}
	changes := ComputeChanges(nil, current)
	assert.Empty(t, changes, "a first snapshot has nothing to compare against")
}

func TestComputeChanges_BothSidesRequired(t *testing.T) {
	previous := &Snapshot{StatLine: StatLine{GoalsScored: fp(5)}}
	current := &StatLine{Assists: fp(2)}

	changes := ComputeChanges(previous, current)

	// goalsScored was withdrawn and assists newly appeared; neither counts.
	assert.Empty(t, changes)
}

func TestComputeChanges_EqualValuesProduceNoEntry(t *testing.T) {
	previous := &Snapshot{StatLine: StatLine{GoalsScored: fp(5), Assists: fp(2)}}
	current := &StatLine{GoalsScored: fp(5), Assists: fp(2)}

	changes := ComputeChanges(previous, current)
	assert.Empty(t, changes)
}

func TestComputeChanges_ZeroIsAValue(t *testing.T) {
	previous := &Snapshot{StatLine: StatLine{RedCards: fp(0)}}
	current := &StatLine{RedCards: fp(1)}

	changes := ComputeChanges(previous, current)
	assert.Equal(t, FieldChange{Old: 0, New: 1}, changes["redCards"])
}

func TestComputeChanges_ExactComparison(t *testing.T) {
	// The comparison has no tolerance: any bit difference is a change.
	previous := &Snapshot{StatLine: StatLine{PassAccuracyPercent: fp(82.5)}}
	current := &StatLine{PassAccuracyPercent: fp(82.5000001)}

	changes := ComputeChanges(previous, current)
	assert.Len(t, changes, 1)
	assert.Equal(t, 82.5, changes["passAccuracyPercent"].Old)
	assert.Equal(t, 82.5000001, changes["passAccuracyPercent"].New)
}

func TestComputeChanges_MultipleFields(t *testing.T) {
	previous := &Snapshot{StatLine: StatLine{
		GoalsScored: fp(5),
		Assists:     fp(2),
		KeyPasses:   fp(10),
	}}
	current := &StatLine{
		GoalsScored: fp(8),
		Assists:     fp(2),
		KeyPasses:   fp(12),
	}

	changes := ComputeChanges(previous, current)
	assert.Len(t, changes, 2)
	assert.Equal(t, FieldChange{Old: 5, New: 8}, changes["goalsScored"])
	assert.Equal(t, FieldChange{Old: 10, New: 12}, changes["keyPasses"])
}
