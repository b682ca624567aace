package notifier

import (
	"github.com/altplay/altplay/internal/insights"
	"github.com/altplay/altplay/internal/investment"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For newly recorded investments
	SendInvestmentNotification(record *investment.Record, dryRun bool) error
	// For performance snapshots that changed since the previous one
	SendPerformanceUpdateNotification(snapshot *insights.Snapshot, playerName string, dryRun bool) error
}
