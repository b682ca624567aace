package insights

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionDecodeLenientStats(t *testing.T) {
	body := `{
		"seasonYear": "2025",
		"clubTeam": "BFC",
		"leagueTournament": "ISL",
		"goalsScored": 5,
		"assists": "3",
		"keyPasses": " 7.5 ",
		"tacklesWon": "abc",
		"interceptions": null,
		"cleanSheets": true
	}`

	var sub Submission
	require.NoError(t, json.Unmarshal([]byte(body), &sub))

	assert.Equal(t, "2025", sub.SeasonYear)
	assert.Equal(t, "BFC", sub.ClubTeam)
	assert.Equal(t, "ISL", sub.LeagueTournament)

	assert.Equal(t, fp(5), sub.GoalsScored)
	assert.Equal(t, fp(3), sub.Assists, "numeric strings are converted")
	assert.Equal(t, fp(7.5), sub.KeyPasses, "surrounding whitespace is tolerated")

	// Values that do not parse as numbers are treated as not provided.
	assert.Nil(t, sub.TacklesWon)
	assert.Nil(t, sub.Interceptions)
	assert.Nil(t, sub.CleanSheets)
	assert.Nil(t, sub.MatchesPlayed, "omitted fields stay nil")
}

func TestSubmissionDecodeRejectsMalformedJSON(t *testing.T) {
	var sub Submission
	assert.Error(t, json.Unmarshal([]byte(`{"seasonYear":`), &sub))
}
