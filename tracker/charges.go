package tracker

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/makerlabs/print-billing/eventio"
)

var _ eventio.ChargePoster = &Client{}

// chargeRequest is the billing API's create-charge payload.
type chargeRequest struct {
	MemberID    int64   `json:"memberId"`
	DateTime    string  `json:"dateTime"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	LogID       int64   `json:"logId,omitempty"`
}

// PostCharge creates one charge against the member, dated in the
// configured display timezone. A rejected charge is fatal to the
// invocation and already-posted charges are not compensated.
func (c *Client) PostCharge(ctx context.Context, memberID int64, chargedAt time.Time, line eventio.ChargeLine) error {
	payload := chargeRequest{
		MemberID:    memberID,
		DateTime:    chargedAt.In(c.location).Format(time.RFC3339),
		Description: line.Description,
		Price:       line.Amount,
		LogID:       line.LinkedEventID,
	}
	status, _, err := c.do(ctx, "POST", "/api/v1/charges", payload)
	if err != nil {
		return &eventio.BillingPostError{Err: err}
	}
	if !success(status) {
		return &eventio.BillingPostError{StatusCode: status}
	}
	c.logger.Info("charge-posted", lager.Data{
		"member_id":       memberID,
		"amount":          line.Amount,
		"linked_event_id": line.LinkedEventID,
	})
	return nil
}
