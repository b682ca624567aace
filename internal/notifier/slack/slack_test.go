package slack

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/altplay/altplay/internal/insights"
	"github.com/altplay/altplay/internal/investment"
	"github.com/altplay/altplay/internal/metrics"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	postMessageCalled := false
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendInvestmentNotification_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	amount := 500.0
	record := &investment.Record{
		ID:         "inv-1",
		InvestorID: "investor-1",
		PlayerID:   "player-1",
		PlayerName: "Sunil Chhetri",
		Amount:     &amount,
		InvestedAt: 1717200000000,
	}

	err := notifier.SendInvestmentNotification(record, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendInvestmentNotification")
}

func TestFormatInvestmentNotification(t *testing.T) {
	amount := 1250.5
	record := &investment.Record{
		PlayerID:   "player-1",
		PlayerName: "Sunil Chhetri",
		Amount:     &amount,
		InvestedAt: 1717200000000,
	}
	client := &Notifier{channelID: "C123"}
	msg := client.formatInvestmentNotification(record)
	require.Len(t, msg.Blocks.BlockSet, 2, "Expected 2 blocks")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "first block should be a header")
	assert.Contains(t, header.Text.Text, "New investment")

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "second block should be a section")
	assert.Contains(t, section.Text.Text, "Sunil Chhetri")
	assert.Contains(t, section.Text.Text, "1250.50")
}

func TestFormatInvestmentNotification_NoAmount(t *testing.T) {
	record := &investment.Record{
		PlayerID:   "player-1",
		PlayerName: "Sunil Chhetri",
		InvestedAt: 1717200000000,
	}
	client := &Notifier{channelID: "C123"}
	msg := client.formatInvestmentNotification(record)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "second block should be a section")
	assert.Contains(t, section.Text.Text, "undisclosed")
}

func TestFormatPerformanceUpdate(t *testing.T) {
	snapshot := &insights.Snapshot{
		UserID:     "player-1",
		SeasonYear: "2025",
		ClubTeam:   "Bengaluru FC",
		Changes: map[string]insights.FieldChange{
			"goalsScored":   {Old: 5, New: 8, Timestamp: 1717200000000},
			"assists": {Old: 2, New: 4, Timestamp: 1717200000000},
		},
	}
	client := &Notifier{channelID: "C123"}
	msg := client.formatPerformanceUpdate(snapshot, "Sunil Chhetri")
	require.Len(t, msg.Blocks.BlockSet, 3, "Expected 3 blocks")

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Sunil Chhetri")
	assert.Contains(t, section.Text.Text, "Bengaluru FC")

	changes, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok)
	// Fields are listed alphabetically.
	assert.Contains(t, changes.Text.Text, "assists")
	assert.Contains(t, changes.Text.Text, "goalsScored")
	assert.Less(t, strings.Index(changes.Text.Text, "assists"), strings.Index(changes.Text.Text, "goalsScored"))
}

func TestFormatPerformanceUpdate_NoChanges(t *testing.T) {
	snapshot := &insights.Snapshot{
		UserID:     "player-1",
		SeasonYear: "2025",
		ClubTeam:   "Bengaluru FC",
	}
	client := &Notifier{channelID: "C123"}
	msg := client.formatPerformanceUpdate(snapshot, "Sunil Chhetri")
	require.Len(t, msg.Blocks.BlockSet, 2, "no changes block when nothing changed")
}
