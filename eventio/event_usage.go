package eventio

import (
	"fmt"
	"time"
)

// Metadata keys stamped onto a usage event once it has been charged. An
// event carrying BilledAtKey must never be billed again.
const (
	BilledAtKey  = "billedAt"
	BilledJobKey = "billedJob"
)

// Metadata keys stamped onto the child events created by a split.
const (
	SplitFromKey  = "splitFrom"
	SplitGroupKey = "splitGroup"
)

// UsageEvent is one continuous equipment-use interval recorded by the
// facility tracker. StopType is empty while the interval is still open.
// LockVersion is the optimistic concurrency token: the tracker rejects any
// replace whose LockVersion is stale.
type UsageEvent struct {
	ID          int64                  `json:"id"`
	ResourceID  int64                  `json:"resourceId"`
	MemberID    int64                  `json:"memberId"`
	CreatedAt   time.Time              `json:"createdAt"`
	StoppedAt   *time.Time             `json:"stoppedAt,omitempty"`
	StopType    string                 `json:"stopType,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	LockVersion int64                  `json:"lockVersion"`
}

func (e *UsageEvent) Validate() error {
	if e.ID == 0 {
		return fmt.Errorf("usage events must have an id")
	}
	if e.ResourceID == 0 {
		return fmt.Errorf("usage events must have a resourceId")
	}
	if e.CreatedAt.IsZero() {
		return fmt.Errorf("usage events must have a createdAt time")
	}
	if e.StopType != "" {
		if e.StoppedAt == nil {
			return fmt.Errorf("stopped usage events must have a stoppedAt time")
		}
		if e.StoppedAt.Before(e.CreatedAt) {
			return fmt.Errorf("usage event stoppedAt must not be before createdAt")
		}
	}
	return nil
}

// Stopped reports whether the interval has been closed by the tracker.
func (e *UsageEvent) Stopped() bool {
	return e.StopType != "" && e.StoppedAt != nil
}

// Billed reports whether the event already carries the billed marker.
func (e *UsageEvent) Billed() bool {
	if e.Metadata == nil {
		return false
	}
	_, ok := e.Metadata[BilledAtKey]
	return ok
}

// NotificationKind is the type field of an inbound tracker webhook.
type NotificationKind string

const (
	NotificationCreated NotificationKind = "created"
	NotificationUpdated NotificationKind = "updated"
)

// Relevant reports whether this notification kind is processed at all.
// Every other kind is acknowledged and dropped.
func (k NotificationKind) Relevant() bool {
	return k == NotificationCreated || k == NotificationUpdated
}

// Resource is the subset of the tracker resource carried on a notification.
type Resource struct {
	Name string `json:"name"`
}

// Notification is one inbound tracker webhook payload, decoded once at the
// HTTP boundary. Downstream code never touches the raw JSON.
type Notification struct {
	Kind    NotificationKind    `json:"type"`
	Details NotificationDetails `json:"details"`
}

type NotificationDetails struct {
	Log      UsageEvent `json:"log"`
	Resource Resource   `json:"resource"`
}

func (n *Notification) Validate() error {
	if n.Kind == "" {
		return fmt.Errorf("notifications must have a type")
	}
	return n.Details.Log.Validate()
}
