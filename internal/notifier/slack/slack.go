package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/altplay/altplay/internal/insights"
	"github.com/altplay/altplay/internal/investment"
	"github.com/altplay/altplay/internal/metrics"
	"github.com/altplay/altplay/internal/notifier"
	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendInvestmentNotification announces a newly recorded investment.
func (s *Notifier) SendInvestmentNotification(record *investment.Record, dryRun bool) error {
	msg := s.formatInvestmentNotification(record)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendPerformanceUpdateNotification announces a performance snapshot whose
// stats changed since the previous one.
func (s *Notifier) SendPerformanceUpdateNotification(snapshot *insights.Snapshot, playerName string, dryRun bool) error {
	msg := s.formatPerformanceUpdate(snapshot, playerName)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatInvestmentNotification creates the Slack message for a new investment using Block Kit.
func (s *Notifier) formatInvestmentNotification(record *investment.Record) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "💸 New investment recorded! 💸", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	playerName := record.PlayerName
	if playerName == "" {
		playerName = record.PlayerID
	}
	amount := "undisclosed"
	if record.Amount != nil {
		amount = fmt.Sprintf("%.2f", *record.Amount)
	}
	details := fmt.Sprintf("*Player:* %s\n*Amount:* %s\n*When:* %s",
		playerName,
		amount,
		time.UnixMilli(record.InvestedAt).UTC().Format("Mon, Jan 2 2006 15:04 MST"),
	)
	detailText := slack.NewTextBlockObject("mrkdwn", details, false, false)
	blocks = append(blocks, slack.NewSectionBlock(detailText, nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPerformanceUpdate creates the Slack message for a changed performance snapshot.
func (s *Notifier) formatPerformanceUpdate(snapshot *insights.Snapshot, playerName string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "📈 Performance update! 📈", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	summary := fmt.Sprintf("*Player:* %s\n*Season:* %s\n*Club:* %s",
		playerName, snapshot.SeasonYear, snapshot.ClubTeam)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", summary, false, false), nil, nil))

	if len(snapshot.Changes) > 0 {
		fields := make([]string, 0, len(snapshot.Changes))
		for field := range snapshot.Changes {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		lines := ""
		for _, field := range fields {
			change := snapshot.Changes[field]
			lines += fmt.Sprintf("• *%s:* %g → %g\n", field, change.Old, change.New)
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", lines, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
