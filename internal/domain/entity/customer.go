// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"
)

// LitersPerHour converts purifier operating hours to dispensed liters.
const LitersPerHour = 12.0

// Customer represents a subscriber of the water purifier service, with the
// plan timing, cumulative usage, and push registration state the notification
// engine operates on.
type Customer struct {
	CustomerID           string     `json:"customer_id"`             // Stable customer identifier.
	Name                 string     `json:"name"`                    // Display name of the customer.
	FCMToken             string     `json:"fcm_token,omitempty"`     // Push token; empty when no device is registered.
	PlanStartDate        *time.Time `json:"plan_start_date,omitempty"` // Start of the current billing cycle (day granularity).
	PlanEndDate          *time.Time `json:"plan_end_date,omitempty"`   // End of the current billing cycle; nil means open-ended.
	CurrentTotalHours    float64    `json:"current_total_hours"`     // Cumulative operating hours in this cycle.
	CycleMaxHours        float64    `json:"cycle_max_hours"`         // Hour allowance per cycle; 0 disables usage limits.
	NotifiedFor90Percent bool       `json:"notified_for_90_percent"` // Set once the 90% usage alert has been delivered.
	NotifiedFor80Percent bool       `json:"notified_for_80_percent"` // Set once the 80% usage alert has been delivered.
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// HasPushToken reports whether the customer has a registered device token.
// Customers without one are skipped before any plan evaluation.
func (c *Customer) HasPushToken() bool {
	return c.FCMToken != ""
}

// LitersUsed returns the cumulative liters dispensed in the current cycle.
func (c *Customer) LitersUsed() float64 {
	return c.CurrentTotalHours * LitersPerHour
}

// LitersLimit returns the cycle allowance in liters, or 0 when the plan has
// no usage limit.
func (c *Customer) LitersLimit() float64 {
	if c.CycleMaxHours <= 0 {
		return 0
	}

	return c.CycleMaxHours * LitersPerHour
}

// DaysRemaining returns the whole days left until the plan end date, counted
// between the day-truncated end date and the day-truncated reference time.
// The second return value is false when the plan has no end date.
func (c *Customer) DaysRemaining(today time.Time) (int, bool) {
	if c.PlanEndDate == nil {
		return 0, false
	}

	end := TruncateToDay(*c.PlanEndDate)
	day := TruncateToDay(today)

	return int(math.Ceil(end.Sub(day).Hours() / 24)), true
}

// TruncateToDay normalizes a timestamp to midnight of its calendar day.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
