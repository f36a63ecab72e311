// Package schedule computes the stream timing and amount parameters for an
// order. A one-time purchase is modeled as a degenerate one-second stream so
// the same escrow machinery handles both product kinds.
package schedule

import (
	"time"

	"github.com/workwork/workwork-order-service/internal/domain"
)

// ActivationDelay gives the escrow provider time to prepare the stream
// before it starts releasing funds.
const ActivationDelay = 5 * time.Minute

const daySeconds = 24 * 60 * 60

var periodSeconds = map[domain.SubscriptionPeriod]int64{
	domain.PeriodMonthly:   30 * daySeconds,
	domain.PeriodQuarterly: 90 * daySeconds,
	domain.PeriodYearly:    365 * daySeconds,
}

// monthsPerPeriod maps a period unit to its length in months, the smallest
// unit subscription durations are expressed in.
var monthsPerPeriod = map[domain.SubscriptionPeriod]int32{
	domain.PeriodMonthly:   1,
	domain.PeriodQuarterly: 3,
	domain.PeriodYearly:    12,
}

// Params are the computed stream parameters, immutable once stored on an
// order. Amounts are integer base units.
type Params struct {
	TotalAmount           int64
	AmountPerPeriod       int64
	PeriodSeconds         int64
	StartTime             time.Time
	EndTime               time.Time
	CancelableBySender    bool
	CancelableByRecipient bool
}

// Calculate derives stream parameters from the product terms. price is the
// unit price in base units; durationMonths is the subscription duration in
// months and must divide evenly into whole periods. Divisions that leave a
// remainder are rejected rather than rounded, so a stream is never silently
// under- or over-funded.
func Calculate(kind domain.ProductKind, price int64, period domain.SubscriptionPeriod, durationMonths int32, now time.Time) (*Params, error) {
	if price < 0 {
		return nil, domain.ValidationError("product price must not be negative")
	}

	startTime := now.Add(ActivationDelay).UTC()

	if kind == domain.KindOneTime {
		return &Params{
			TotalAmount:     price,
			AmountPerPeriod: price,
			PeriodSeconds:   1,
			StartTime:       startTime,
			EndTime:         startTime.Add(time.Second),
		}, nil
	}

	if kind != domain.KindSubscription {
		return nil, domain.ValidationError("unknown product kind %q", kind)
	}
	if period == "" || durationMonths == 0 {
		return nil, domain.ValidationError("subscription period and duration are required for subscription products")
	}
	if durationMonths < 0 {
		return nil, domain.ValidationError("subscription duration must be positive")
	}

	perSeconds, ok := periodSeconds[period]
	if !ok {
		return nil, domain.ValidationError("unknown subscription period %q", period)
	}

	months := monthsPerPeriod[period]
	if durationMonths%months != 0 {
		return nil, domain.ValidationError("subscription duration of %d months does not divide evenly into %s periods", durationMonths, period)
	}
	totalPeriods := int64(durationMonths / months)

	if totalPeriods > 0 && price > (1<<63-1)/totalPeriods {
		return nil, domain.ValidationError("subscription total amount overflows")
	}

	return &Params{
		TotalAmount:           price * totalPeriods,
		AmountPerPeriod:       price,
		PeriodSeconds:         perSeconds,
		StartTime:             startTime,
		EndTime:               startTime.Add(time.Duration(int64(durationMonths)*30*daySeconds) * time.Second),
		CancelableBySender:    true,
		CancelableByRecipient: true,
	}, nil
}
