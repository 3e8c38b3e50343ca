package reconciler

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/gofrs/uuid"
	"github.com/makerlabs/print-billing/eventio"
	"github.com/makerlabs/print-billing/pricing"
)

var _ eventio.Reconciler = &Reconciler{}

// Config wires the reconciler's collaborators. All fields except Logger
// are required.
type Config struct {
	// Store mutates usage events held by the tracker
	Store eventio.UsageEventStore
	// Pricing resolves resource billing configuration
	Pricing eventio.PricingConfigReader
	// Fetcher retrieves vendor jobs for a window
	Fetcher eventio.JobFetcher
	// Poster posts charges to the billing API
	Poster eventio.ChargePoster
	// Engine computes charge lines
	Engine *pricing.Engine
	// Logger overrides the default logger
	Logger lager.Logger
}

// Reconciler drives one usage-event notification to a terminal outcome:
// ignored, deleted, shrunk, split or billed. It runs synchronously, one
// pipeline per notification, and holds no state between invocations.
type Reconciler struct {
	store   eventio.UsageEventStore
	pricing eventio.PricingConfigReader
	fetcher eventio.JobFetcher
	poster  eventio.ChargePoster
	engine  *pricing.Engine
	logger  lager.Logger
}

// New creates a Reconciler for the given config.
func New(cfg Config) (*Reconciler, error) {
	if cfg.Store == nil || cfg.Pricing == nil || cfg.Fetcher == nil || cfg.Poster == nil {
		return nil, fmt.Errorf("reconciler.New: Store, Pricing, Fetcher and Poster are all required")
	}
	if cfg.Engine == nil {
		return nil, fmt.Errorf("reconciler.New: must supply a pricing Engine")
	}
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("reconciler")
	}
	return &Reconciler{
		store:   cfg.Store,
		pricing: cfg.Pricing,
		fetcher: cfg.Fetcher,
		poster:  cfg.Poster,
		engine:  cfg.Engine,
		logger:  cfg.Logger,
	}, nil
}

// Reconcile evaluates the state machine once for the notified usage event.
func (r *Reconciler) Reconcile(ctx context.Context, notification eventio.Notification) (*eventio.ReconcileResult, error) {
	event := notification.Details.Log
	logger := r.logger.Session("reconcile", lager.Data{
		"event_id": event.ID,
		"kind":     string(notification.Kind),
	})

	result, err := r.reconcile(ctx, logger, notification)
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}
	recordOutcome(result.Outcome)
	logger.Info("done", lager.Data{
		"outcome": string(result.Outcome),
		"reason":  result.Reason,
	})
	return result, nil
}

func (r *Reconciler) reconcile(ctx context.Context, logger lager.Logger, notification eventio.Notification) (*eventio.ReconcileResult, error) {
	if !notification.Kind.Relevant() {
		return ignored(notification.Details.Log.ID, "irrelevant notification type"), nil
	}
	if err := notification.Validate(); err != nil {
		return nil, &eventio.ValidationError{Reason: err.Error()}
	}

	event := notification.Details.Log
	if event.Billed() {
		return ignored(event.ID, "already billed"), nil
	}
	if !event.Stopped() {
		return ignored(event.ID, "still running"), nil
	}

	pricingConfig, err := r.pricing.GetResourcePricing(ctx, event.ResourceID)
	if err != nil {
		return nil, err
	}

	jobs, err := r.fetcher.FetchJobsInWindow(ctx, pricingConfig.PrinterSerial, event.CreatedAt, *event.StoppedAt)
	if err != nil {
		return nil, err
	}

	switch len(jobs) {
	case 0:
		// An empty window has nothing to bill; keeping the event risks
		// colliding with a later activity that owns the real window.
		if err := r.store.DeleteUsageEvent(ctx, event.ID); err != nil {
			return nil, err
		}
		return &eventio.ReconcileResult{Outcome: eventio.OutcomeDeleted, EventID: event.ID}, nil
	case 1:
		return r.reconcileSingle(ctx, logger, event, jobs[0], *pricingConfig, notification.Details.Resource.Name)
	default:
		return r.split(ctx, logger, event, jobs)
	}
}

// reconcileSingle handles the one-job case: bill on an exact window match,
// otherwise shrink the event to the job's window and wait for the
// tracker's next notification to re-enter the state machine.
func (r *Reconciler) reconcileSingle(ctx context.Context, logger lager.Logger, event eventio.UsageEvent, job eventio.PrintJob, pricingConfig eventio.ResourcePricingConfig, deviceName string) (*eventio.ReconcileResult, error) {
	end, _ := job.EffectiveEnd()
	if sameSecond(*job.StartedAt, event.CreatedAt) && sameSecond(end, *event.StoppedAt) {
		return r.bill(ctx, logger, event, job, pricingConfig, deviceName)
	}

	if _, err := r.store.UpdateTimestamps(ctx, event.ID, *job.StartedAt, end); err != nil {
		return nil, err
	}
	return &eventio.ReconcileResult{Outcome: eventio.OutcomeShrunk, EventID: event.ID}, nil
}

func (r *Reconciler) bill(ctx context.Context, logger lager.Logger, event eventio.UsageEvent, job eventio.PrintJob, pricingConfig eventio.ResourcePricingConfig, deviceName string) (*eventio.ReconcileResult, error) {
	end, _ := job.EffectiveEnd()
	if !ordered(event.CreatedAt, *job.StartedAt, end, *event.StoppedAt) {
		orderErr := &eventio.TimestampOrderError{
			EventID:      event.ID,
			JobGUID:      job.GUID,
			CreatedAt:    event.CreatedAt,
			StartedAt:    *job.StartedAt,
			EffectiveEnd: end,
			StoppedAt:    *event.StoppedAt,
		}
		logger.Error("timestamp-order", orderErr)
		return ignored(event.ID, orderErr.Error()), nil
	}

	lines, err := r.engine.ComputeCharges(job, pricingConfig, deviceName)
	if err != nil {
		return nil, err
	}
	chargedAt, err := r.engine.ChargeTime(job)
	if err != nil {
		return nil, err
	}

	// The first line is linked to the originating event; surcharge lines
	// are posted unlinked. A failure mid-way is fatal with no compensation
	// of lines already posted.
	for i := range lines {
		if i == 0 {
			lines[i].LinkedEventID = event.ID
		}
		if err := r.poster.PostCharge(ctx, event.MemberID, chargedAt, lines[i]); err != nil {
			return nil, err
		}
		recordCharge(lines[i].Amount)
	}

	if _, err := r.store.UpdateMetadata(ctx, event.ID, map[string]interface{}{
		eventio.BilledAtKey:  chargedAt.UTC().Format(time.RFC3339),
		eventio.BilledJobKey: job.GUID,
	}, true); err != nil {
		return nil, err
	}

	return &eventio.ReconcileResult{
		Outcome: eventio.OutcomeBilled,
		EventID: event.ID,
		Charges: lines,
	}, nil
}

// split replaces the original event with one child per job, each spanning
// exactly that job's window. No charge is posted in this pass: each child
// re-triggers reconciliation independently and is expected to land in the
// single-job match branch.
func (r *Reconciler) split(ctx context.Context, logger lager.Logger, event eventio.UsageEvent, jobs []eventio.PrintJob) (*eventio.ReconcileResult, error) {
	if err := r.store.DeleteUsageEvent(ctx, event.ID); err != nil {
		return nil, err
	}

	group := uuid.Must(uuid.NewV4()).String()
	childIDs := make([]int64, 0, len(jobs))
	for _, job := range jobs {
		end, _ := job.EffectiveEnd()
		stop := end
		child, err := r.store.CreateUsageEvent(ctx, eventio.UsageEvent{
			ResourceID: event.ResourceID,
			MemberID:   event.MemberID,
			CreatedAt:  *job.StartedAt,
			StoppedAt:  &stop,
			StopType:   event.StopType,
			Metadata: map[string]interface{}{
				eventio.SplitFromKey:  event.ID,
				eventio.SplitGroupKey: group,
			},
		})
		if err != nil {
			return nil, err
		}
		childIDs = append(childIDs, child.ID)
	}
	logger.Info("split", lager.Data{
		"split_group": group,
		"child_count": len(childIDs),
	})

	return &eventio.ReconcileResult{
		Outcome:       eventio.OutcomeSplit,
		EventID:       event.ID,
		ChildEventIDs: childIDs,
		SplitGroup:    group,
	}, nil
}

func ignored(eventID int64, reason string) *eventio.ReconcileResult {
	return &eventio.ReconcileResult{
		Outcome: eventio.OutcomeIgnored,
		EventID: eventID,
		Reason:  reason,
	}
}

// sameSecond compares two instants at UTC second precision, so formatting
// and DST offsets cannot skew the match.
func sameSecond(a, b time.Time) bool {
	return a.Unix() == b.Unix()
}

func ordered(times ...time.Time) bool {
	for i := 1; i < len(times); i++ {
		if times[i-1].Unix() > times[i].Unix() {
			return false
		}
	}
	return true
}
