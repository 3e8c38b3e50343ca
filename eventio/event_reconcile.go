package eventio

import (
	"context"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Outcome is the terminal state of one reconciliation pass.
type Outcome string

const (
	OutcomeIgnored Outcome = "ignored"
	OutcomeDeleted Outcome = "deleted"
	OutcomeShrunk  Outcome = "shrunk"
	OutcomeSplit   Outcome = "split"
	OutcomeBilled  Outcome = "billed"
)

// ReconcileResult is surfaced to the webhook caller as the acknowledgment
// body for one notification.
type ReconcileResult struct {
	Outcome       Outcome      `json:"outcome"`
	EventID       int64        `json:"event_id"`
	Reason        string       `json:"reason,omitempty"`
	ChildEventIDs []int64      `json:"child_event_ids,omitempty"`
	SplitGroup    string       `json:"split_group,omitempty"`
	Charges       []ChargeLine `json:"charges,omitempty"`
}

//counterfeiter:generate . JobFetcher

// JobFetcher retrieves finished vendor jobs whose effective end falls
// inside the given window, ordered as returned by the vendor.
type JobFetcher interface {
	FetchJobsInWindow(ctx context.Context, printerSerial string, from, to time.Time) ([]PrintJob, error)
}

//counterfeiter:generate . UsageEventStore

// UsageEventStore mutates usage events held by the facility tracker.
// UpdateTimestamps and UpdateMetadata follow the optimistic concurrency
// discipline: read, transform the fresh record, replace with its version
// token, retry on conflict up to a bounded ceiling. When merge is true the
// given fields are re-merged onto the freshly-read metadata on every
// attempt. DeleteUsageEvent treats a missing event as success.
type UsageEventStore interface {
	GetUsageEvent(ctx context.Context, eventID int64) (*UsageEvent, error)
	CreateUsageEvent(ctx context.Context, event UsageEvent) (*UsageEvent, error)
	DeleteUsageEvent(ctx context.Context, eventID int64) error
	UpdateTimestamps(ctx context.Context, eventID int64, newStart, newStop time.Time) (*UsageEvent, error)
	UpdateMetadata(ctx context.Context, eventID int64, fields map[string]interface{}, merge bool) (*UsageEvent, error)
}

//counterfeiter:generate . PricingConfigReader

// PricingConfigReader resolves the billing configuration of a resource.
type PricingConfigReader interface {
	GetResourcePricing(ctx context.Context, resourceID int64) (*ResourcePricingConfig, error)
}

//counterfeiter:generate . ChargePoster

// ChargePoster posts one charge line to the billing API, dated at the
// given instant.
type ChargePoster interface {
	PostCharge(ctx context.Context, memberID int64, chargedAt time.Time, line ChargeLine) error
}

//counterfeiter:generate . Reconciler

// Reconciler consumes one decoded notification and drives it to a terminal
// outcome.
type Reconciler interface {
	Reconcile(ctx context.Context, notification Notification) (*ReconcileResult, error)
}
