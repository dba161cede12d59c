package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evaluation reference time for all tests; mid-afternoon so the
// day-truncation behavior is actually exercised.
var evalNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return &d
}

func TestEvaluatePlan_Expired(t *testing.T) {
	t.Run("expired by date", func(t *testing.T) {
		customer := &Customer{
			CustomerID:  "cust-1",
			FCMToken:    "token",
			PlanEndDate: datePtr(2026, 3, 9),
		}

		decision := customer.EvaluatePlan(evalNow)

		require.True(t, decision.ShouldSend)
		assert.Equal(t, "Plan Expired", decision.Title)
		assert.Equal(t,
			"Your Drop Purity plan has expired due to date. Please recharge to restore service.",
			decision.Body,
		)
		assert.Equal(t, []DecisionReason{ReasonExpired}, decision.Reasons)
	})

	t.Run("expired by usage", func(t *testing.T) {
		customer := &Customer{
			CustomerID:        "cust-2",
			FCMToken:          "token",
			PlanEndDate:       datePtr(2026, 4, 30),
			CurrentTotalHours: 100,
			CycleMaxHours:     100,
		}

		decision := customer.EvaluatePlan(evalNow)

		require.True(t, decision.ShouldSend)
		assert.Equal(t, "Plan Expired", decision.Title)
		assert.Equal(t,
			"Your Drop Purity plan has expired due to usage limit (1200L). Please recharge to restore service.",
			decision.Body,
		)
		assert.Equal(t, []DecisionReason{ReasonExpired}, decision.Reasons)
	})

	t.Run("expired by date and usage", func(t *testing.T) {
		customer := &Customer{
			CustomerID:        "cust-3",
			FCMToken:          "token",
			PlanEndDate:       datePtr(2026, 3, 1),
			CurrentTotalHours: 120,
			CycleMaxHours:     100,
		}

		decision := customer.EvaluatePlan(evalNow)

		require.True(t, decision.ShouldSend)
		assert.Equal(t,
			"Your Drop Purity plan has expired due to date and usage limit (1440L). Please recharge to restore service.",
			decision.Body,
		)
	})

	t.Run("expiry shadows usage threshold and date warning", func(t *testing.T) {
		// Usage is over the maximum AND the end date is within the warning
		// window; only the expired notification is produced.
		customer := &Customer{
			CustomerID:        "cust-4",
			FCMToken:          "token",
			PlanEndDate:       datePtr(2026, 3, 12),
			CurrentTotalHours: 105,
			CycleMaxHours:     100,
		}

		decision := customer.EvaluatePlan(evalNow)

		require.True(t, decision.ShouldSend)
		assert.Equal(t, "Plan Expired", decision.Title)
		assert.Equal(t, []DecisionReason{ReasonExpired}, decision.Reasons)
	})

	t.Run("end date today is not expired", func(t *testing.T) {
		customer := &Customer{
			CustomerID:  "cust-5",
			FCMToken:    "token",
			PlanEndDate: datePtr(2026, 3, 10),
		}

		decision := customer.EvaluatePlan(evalNow)

		require.True(t, decision.ShouldSend)
		assert.Equal(t, "Plan Reminder", decision.Title)
		assert.True(t, decision.HasReason(ReasonDateWarning))
	})
}

func TestEvaluatePlan_UsageThresholds(t *testing.T) {
	tests := []struct {
		name        string
		hours       float64
		notified90  bool
		notified80  bool
		wantSend    bool
		wantBody    string
		wantReasons []DecisionReason
	}{
		{
			name:        "90 percent unnotified",
			hours:       90,
			wantSend:    true,
			wantBody:    "Alert: you have used over 90% of your allowance (1080/1200L). Please recharge to avoid service interruption.",
			wantReasons: []DecisionReason{ReasonUsage90},
		},
		{
			name:        "80 percent unnotified",
			hours:       80,
			wantSend:    true,
			wantBody:    "Alert: you have used over 80% of your allowance (960/1200L). Please recharge to avoid service interruption.",
			wantReasons: []DecisionReason{ReasonUsage80},
		},
		{
			name:        "90 percent already notified falls through to 80",
			hours:       92,
			notified90:  true,
			wantSend:    true,
			wantBody:    "Alert: you have used over 80% of your allowance (1104/1200L). Please recharge to avoid service interruption.",
			wantReasons: []DecisionReason{ReasonUsage80},
		},
		{
			name:       "both thresholds already notified",
			hours:      95,
			notified90: true,
			notified80: true,
			wantSend:   false,
		},
		{
			name:     "below 80 percent",
			hours:    70,
			wantSend: false,
		},
		{
			name:       "over 80 but 80 already notified",
			hours:      85,
			notified80: true,
			wantSend:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := &Customer{
				CustomerID:           "cust-usage",
				FCMToken:             "token",
				CurrentTotalHours:    tt.hours,
				CycleMaxHours:        100,
				NotifiedFor90Percent: tt.notified90,
				NotifiedFor80Percent: tt.notified80,
			}

			decision := customer.EvaluatePlan(evalNow)

			assert.Equal(t, tt.wantSend, decision.ShouldSend)
			if tt.wantSend {
				assert.Equal(t, "Plan Reminder", decision.Title)
				assert.Equal(t, tt.wantBody, decision.Body)
				assert.Equal(t, tt.wantReasons, decision.Reasons)
			}
		})
	}
}

func TestEvaluatePlan_DateWarning(t *testing.T) {
	tests := []struct {
		name     string
		endDay   int
		wantSend bool
		wantBody string
	}{
		{
			name:     "seven days out",
			endDay:   17,
			wantSend: true,
			wantBody: "Alert: your plan will expire in 7 days. Please recharge to avoid service interruption.",
		},
		{
			name:     "one day out uses singular wording",
			endDay:   11,
			wantSend: true,
			wantBody: "Alert: your plan will expire in 1 day. Please recharge to avoid service interruption.",
		},
		{
			name:     "expires today uses singular wording",
			endDay:   10,
			wantSend: true,
			wantBody: "Alert: your plan will expire in 1 day. Please recharge to avoid service interruption.",
		},
		{
			name:     "eight days out is outside the window",
			endDay:   18,
			wantSend: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := &Customer{
				CustomerID:  "cust-date",
				FCMToken:    "token",
				PlanEndDate: datePtr(2026, 3, tt.endDay),
			}

			decision := customer.EvaluatePlan(evalNow)

			assert.Equal(t, tt.wantSend, decision.ShouldSend)
			if tt.wantSend {
				assert.Equal(t, tt.wantBody, decision.Body)
				assert.True(t, decision.HasReason(ReasonDateWarning))
			}
		})
	}
}

func TestEvaluatePlan_CombinedReminder(t *testing.T) {
	customer := &Customer{
		CustomerID:        "cust-combined",
		FCMToken:          "token",
		PlanEndDate:       datePtr(2026, 3, 15),
		CurrentTotalHours: 91,
		CycleMaxHours:     100,
	}

	decision := customer.EvaluatePlan(evalNow)

	require.True(t, decision.ShouldSend)
	assert.Equal(t, "Plan Reminder", decision.Title)
	assert.Equal(t,
		"Alert: you have used over 90% of your allowance (1092/1200L) and your plan will expire in 5 days. Please recharge to avoid service interruption.",
		decision.Body,
	)
	assert.Equal(t, []DecisionReason{ReasonUsage90, ReasonDateWarning}, decision.Reasons)
}

func TestEvaluatePlan_NothingDue(t *testing.T) {
	t.Run("healthy plan", func(t *testing.T) {
		customer := &Customer{
			CustomerID:        "cust-healthy",
			FCMToken:          "token",
			PlanEndDate:       datePtr(2026, 6, 1),
			CurrentTotalHours: 10,
			CycleMaxHours:     100,
		}

		decision := customer.EvaluatePlan(evalNow)

		assert.False(t, decision.ShouldSend)
		assert.Empty(t, decision.Reasons)
	})

	t.Run("no end date and no usage limit", func(t *testing.T) {
		customer := &Customer{
			CustomerID:        "cust-openended",
			FCMToken:          "token",
			CurrentTotalHours: 500,
		}

		decision := customer.EvaluatePlan(evalNow)

		assert.False(t, decision.ShouldSend)
	})

	t.Run("zero cycle max disables usage checks", func(t *testing.T) {
		customer := &Customer{
			CustomerID:        "cust-unlimited",
			FCMToken:          "token",
			PlanEndDate:       datePtr(2026, 6, 1),
			CurrentTotalHours: 10000,
			CycleMaxHours:     0,
		}

		decision := customer.EvaluatePlan(evalNow)

		assert.False(t, decision.ShouldSend)
	})
}

func TestEvaluatePlan_Deterministic(t *testing.T) {
	customer := &Customer{
		CustomerID:        "cust-pure",
		FCMToken:          "token",
		PlanEndDate:       datePtr(2026, 3, 13),
		CurrentTotalHours: 85,
		CycleMaxHours:     100,
	}

	first := customer.EvaluatePlan(evalNow)
	second := customer.EvaluatePlan(evalNow)

	assert.Equal(t, first, second)
}

func TestDaysRemaining(t *testing.T) {
	t.Run("no end date", func(t *testing.T) {
		customer := &Customer{CustomerID: "cust"}

		_, ok := customer.DaysRemaining(evalNow)

		assert.False(t, ok)
	})

	t.Run("truncates both sides to day boundaries", func(t *testing.T) {
		// End date carries a late-evening timestamp; only the calendar day
		// matters.
		end := time.Date(2026, 3, 12, 23, 45, 0, 0, time.UTC)
		customer := &Customer{CustomerID: "cust", PlanEndDate: &end}

		days, ok := customer.DaysRemaining(evalNow)

		require.True(t, ok)
		assert.Equal(t, 2, days)
	})

	t.Run("negative when the end date has passed", func(t *testing.T) {
		customer := &Customer{CustomerID: "cust", PlanEndDate: datePtr(2026, 3, 8)}

		days, ok := customer.DaysRemaining(evalNow)

		require.True(t, ok)
		assert.Equal(t, -2, days)
	})
}

func TestLitersConversion(t *testing.T) {
	customer := &Customer{CurrentTotalHours: 42.5, CycleMaxHours: 100}

	assert.InDelta(t, 510.0, customer.LitersUsed(), 1e-9)
	assert.InDelta(t, 1200.0, customer.LitersLimit(), 1e-9)

	unlimited := &Customer{CurrentTotalHours: 5}
	assert.Zero(t, unlimited.LitersLimit())
}
