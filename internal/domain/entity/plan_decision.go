package entity

import (
	"fmt"
	"strings"
	"time"
)

// DecisionReason tags why a notification is due.
type DecisionReason string

// Decision reasons recorded on a PlanDecision.
const (
	ReasonExpired     DecisionReason = "expired"
	ReasonUsage90     DecisionReason = "usage_90"
	ReasonUsage80     DecisionReason = "usage_80"
	ReasonDateWarning DecisionReason = "date_warning"
)

// PlanDecision is the outcome of evaluating one customer's plan state at a
// point in time. It is built once per customer per run and never mutated.
type PlanDecision struct {
	ShouldSend bool             `json:"should_send"` // Whether a push notification is due.
	Title      string           `json:"title"`       // Notification title.
	Body       string           `json:"body"`        // Notification body.
	Reasons    []DecisionReason `json:"reasons"`     // Conditions that triggered the decision.
}

// HasReason reports whether the decision was triggered by the given reason.
func (d PlanDecision) HasReason(reason DecisionReason) bool {
	for _, r := range d.Reasons {
		if r == reason {
			return true
		}
	}

	return false
}

// EvaluatePlan produces the notification decision for the customer at the
// given reference time. It is pure: no I/O, no side effects, and the same
// inputs always yield the same decision.
//
// Expiry (by date or by usage) is exclusive and overrides every other branch.
// Otherwise a usage-threshold clause and a date-warning clause are evaluated
// independently and joined into a single reminder. The 90% threshold shadows
// the 80% one: an 80% clause only fires when the 90% check did not, either
// because usage is below it or because the 90% alert was already delivered.
func (c *Customer) EvaluatePlan(now time.Time) PlanDecision {
	// One normalized "today" for both the expiry check and the day wording,
	// so a run near midnight cannot disagree with itself.
	daysRemaining, hasEndDate := c.DaysRemaining(now)

	expiredByDate := hasEndDate && daysRemaining < 0
	expiredByUsage := c.CycleMaxHours > 0 && c.CurrentTotalHours >= c.CycleMaxHours

	if expiredByDate || expiredByUsage {
		causes := make([]string, 0, 2)
		if expiredByDate {
			causes = append(causes, "date")
		}
		if expiredByUsage {
			causes = append(causes, fmt.Sprintf("usage limit (%.0fL)", c.LitersUsed()))
		}

		return PlanDecision{
			ShouldSend: true,
			Title:      "Plan Expired",
			Body: fmt.Sprintf(
				"Your Drop Purity plan has expired due to %s. Please recharge to restore service.",
				strings.Join(causes, " and "),
			),
			Reasons: []DecisionReason{ReasonExpired},
		}
	}

	var (
		clauses []string
		reasons []DecisionReason
	)

	if c.CycleMaxHours > 0 {
		switch {
		case c.CurrentTotalHours >= 0.9*c.CycleMaxHours && !c.NotifiedFor90Percent:
			clauses = append(clauses, fmt.Sprintf(
				"you have used over 90%% of your allowance (%.0f/%.0fL)",
				c.LitersUsed(), c.LitersLimit(),
			))
			reasons = append(reasons, ReasonUsage90)
		case c.CurrentTotalHours >= 0.8*c.CycleMaxHours && !c.NotifiedFor80Percent:
			clauses = append(clauses, fmt.Sprintf(
				"you have used over 80%% of your allowance (%.0f/%.0fL)",
				c.LitersUsed(), c.LitersLimit(),
			))
			reasons = append(reasons, ReasonUsage80)
		}
	}

	if hasEndDate && daysRemaining <= 7 {
		dayString := fmt.Sprintf("%d days", daysRemaining)
		if daysRemaining <= 1 {
			dayString = "1 day"
		}
		clauses = append(clauses, fmt.Sprintf("your plan will expire in %s", dayString))
		reasons = append(reasons, ReasonDateWarning)
	}

	if len(clauses) == 0 {
		return PlanDecision{}
	}

	return PlanDecision{
		ShouldSend: true,
		Title:      "Plan Reminder",
		Body: fmt.Sprintf(
			"Alert: %s. Please recharge to avoid service interruption.",
			strings.Join(clauses, " and "),
		),
		Reasons: reasons,
	}
}
