package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/makerlabs/print-billing/eventio"
	pkgerrors "github.com/pkg/errors"
)

var _ eventio.UsageEventStore = &Client{}

// GetUsageEvent returns the current state of one usage event, including
// its version token.
func (c *Client) GetUsageEvent(ctx context.Context, eventID int64) (*eventio.UsageEvent, error) {
	status, body, err := c.do(ctx, "GET", fmt.Sprintf("/api/v1/activity-logs/%d", eventID), nil)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, fmt.Errorf("get usage event %d: unexpected status %d", eventID, status)
	}
	event := &eventio.UsageEvent{}
	if err := json.Unmarshal(body, event); err != nil {
		return nil, pkgerrors.Wrapf(err, "error unmarshalling usage event %d", eventID)
	}
	return event, nil
}

// CreateUsageEvent records a new usage event and returns it as stored,
// with its assigned id and version token.
func (c *Client) CreateUsageEvent(ctx context.Context, event eventio.UsageEvent) (*eventio.UsageEvent, error) {
	status, body, err := c.do(ctx, "POST", "/api/v1/activity-logs", event)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, fmt.Errorf("create usage event: unexpected status %d", status)
	}
	created := &eventio.UsageEvent{}
	if err := json.Unmarshal(body, created); err != nil {
		return nil, pkgerrors.Wrap(err, "error unmarshalling created usage event")
	}
	return created, nil
}

// DeleteUsageEvent removes a usage event. A missing event counts as
// already-satisfied success.
func (c *Client) DeleteUsageEvent(ctx context.Context, eventID int64) error {
	status, _, err := c.do(ctx, "DELETE", fmt.Sprintf("/api/v1/activity-logs/%d", eventID), nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		c.logger.Info("delete-already-satisfied", lager.Data{
			"event_id": eventID,
		})
		return nil
	}
	if !success(status) {
		return fmt.Errorf("delete usage event %d: unexpected status %d", eventID, status)
	}
	return nil
}

// replaceUsageEvent writes the full event back, echoing its version token.
// The tracker rejects stale tokens with a conflict status.
func (c *Client) replaceUsageEvent(ctx context.Context, event *eventio.UsageEvent) (*eventio.UsageEvent, error) {
	status, body, err := c.do(ctx, "PUT", fmt.Sprintf("/api/v1/activity-logs/%d", event.ID), event)
	if err != nil {
		return nil, err
	}
	if status == http.StatusConflict {
		return nil, &eventio.ConflictError{EventID: event.ID}
	}
	if !success(status) {
		return nil, fmt.Errorf("replace usage event %d: unexpected status %d", event.ID, status)
	}
	updated := &eventio.UsageEvent{}
	if err := json.Unmarshal(body, updated); err != nil {
		return nil, pkgerrors.Wrapf(err, "error unmarshalling replaced usage event %d", event.ID)
	}
	return updated, nil
}

// modifyUsageEvent is the optimistic read-modify-write loop: read the
// fresh record, apply transform to it, replace with its version token, and
// on rejection back off and retry up to the configured ceiling. Correctness
// under contention relies solely on the version-token check; there is no
// queuing or fairness.
func (c *Client) modifyUsageEvent(ctx context.Context, eventID int64, transform func(*eventio.UsageEvent) error) (*eventio.UsageEvent, error) {
	logger := c.logger.Session("modify", lager.Data{
		"event_id": eventID,
	})
	for attempt := 1; ; attempt++ {
		event, err := c.GetUsageEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if err := transform(event); err != nil {
			return nil, err
		}
		updated, err := c.replaceUsageEvent(ctx, event)
		if err == nil {
			return updated, nil
		}
		var conflict *eventio.ConflictError
		if !errors.As(err, &conflict) {
			return nil, err
		}
		if attempt >= c.retryAttempts {
			return nil, &eventio.ConflictError{EventID: eventID, Attempts: attempt}
		}
		logger.Info("version-conflict", lager.Data{
			"attempt": attempt,
		})
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.retryBackoff):
		}
	}
}

// UpdateTimestamps shrinks or moves the event window.
func (c *Client) UpdateTimestamps(ctx context.Context, eventID int64, newStart, newStop time.Time) (*eventio.UsageEvent, error) {
	return c.modifyUsageEvent(ctx, eventID, func(event *eventio.UsageEvent) error {
		stop := newStop
		event.CreatedAt = newStart
		event.StoppedAt = &stop
		return nil
	})
}

// UpdateMetadata writes metadata fields. With merge set, the fields are
// merged onto the freshly-read metadata on every attempt, so a losing
// writer re-merges against the winner's state rather than a stale
// snapshot.
func (c *Client) UpdateMetadata(ctx context.Context, eventID int64, fields map[string]interface{}, merge bool) (*eventio.UsageEvent, error) {
	return c.modifyUsageEvent(ctx, eventID, func(event *eventio.UsageEvent) error {
		if !merge || event.Metadata == nil {
			event.Metadata = map[string]interface{}{}
		}
		for k, v := range fields {
			event.Metadata[k] = v
		}
		return nil
	})
}
