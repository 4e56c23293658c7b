// Package notify pushes insight notifications to the household via
// the controller's notify service.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aether-home/aether/ent"
	entinsight "github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/pkg/services"
)

// Sender delivers one notification. Implemented by the controller
// client's notify service call.
type Sender interface {
	CallService(ctx context.Context, domain, service string, data map[string]interface{}) error
}

var impactRank = map[entinsight.Impact]int{
	entinsight.ImpactLow:      0,
	entinsight.ImpactMedium:   1,
	entinsight.ImpactHigh:     2,
	entinsight.ImpactCritical: 3,
}

// InsightNotifier pushes new insights after a schedule run. Nil-safe
// and fail-open: a nil notifier or a delivery failure never affects
// the run that produced the insights.
type InsightNotifier struct {
	sender   Sender
	settings *services.SettingsService
	logger   *slog.Logger
	// now is replaceable for quiet-hours tests.
	now func() time.Time
}

// New creates a notifier. sender may be nil, which disables delivery.
func New(sender Sender, settings *services.SettingsService, logger *slog.Logger) *InsightNotifier {
	return &InsightNotifier{sender: sender, settings: settings, logger: logger, now: time.Now}
}

// NotifyRun reports the insights one schedule run produced. One
// insight gets its own notification; several collapse into an
// aggregate so a deep analysis cannot spam the household.
func (n *InsightNotifier) NotifyRun(ctx context.Context, scheduleLabel string, insights []*ent.Insight) {
	if n == nil || n.sender == nil || len(insights) == 0 {
		return
	}

	cfg, err := n.settings.Notifications(ctx)
	if err != nil {
		n.logger.Warn("could not load notification settings, skipping", "error", err)
		return
	}
	if !cfg.Enabled {
		return
	}
	if inQuietHours(n.now(), cfg.QuietHoursStart, cfg.QuietHoursEnd) {
		n.logger.Debug("quiet hours, notification suppressed", "schedule", scheduleLabel)
		return
	}

	notable := filterByImpact(insights, cfg.MinImpact)
	if len(notable) == 0 {
		return
	}

	payload := map[string]interface{}{}
	if len(notable) == 1 {
		ins := notable[0]
		payload["title"] = ins.Title
		payload["message"] = ins.Description
		// The companion app deep-links the tap to this insight.
		payload["data"] = map[string]interface{}{"insight_id": ins.ID}
	} else {
		payload["title"] = fmt.Sprintf("%s: %d new insights", scheduleLabel, len(notable))
		payload["message"] = summarize(notable)
	}

	err = n.sender.CallService(ctx, "notify", "notify", payload)
	if err != nil {
		n.logger.Warn("insight notification failed", "schedule", scheduleLabel, "error", err)
	}
}

func filterByImpact(insights []*ent.Insight, minImpact string) []*ent.Insight {
	threshold, ok := impactRank[entinsight.Impact(minImpact)]
	if !ok {
		threshold = impactRank[entinsight.ImpactHigh]
	}
	var out []*ent.Insight
	for _, ins := range insights {
		if impactRank[ins.Impact] >= threshold {
			out = append(out, ins)
		}
	}
	return out
}

func summarize(insights []*ent.Insight) string {
	msg := ""
	for i, ins := range insights {
		if i >= 5 {
			msg += fmt.Sprintf("and %d more", len(insights)-5)
			break
		}
		msg += "• " + ins.Title + "\n"
	}
	return msg
}

// inQuietHours reports whether now falls inside the configured window.
// A window that ends before it starts wraps past midnight, e.g.
// 22:00 to 07:00.
func inQuietHours(now time.Time, start, end string) bool {
	if start == "" || end == "" {
		return false
	}
	startMin, ok1 := parseHHMM(start)
	endMin, ok2 := parseHHMM(end)
	if !ok1 || !ok2 || startMin == endMin {
		return false
	}

	nowMin := now.Hour()*60 + now.Minute()
	if startMin < endMin {
		return nowMin >= startMin && nowMin < endMin
	}
	return nowMin >= startMin || nowMin < endMin
}

func parseHHMM(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
