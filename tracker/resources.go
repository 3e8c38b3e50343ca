package tracker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/makerlabs/print-billing/eventio"
	pkgerrors "github.com/pkg/errors"
)

var _ eventio.PricingConfigReader = &Client{}

// resource is the subset of a tracker resource record this client needs.
type resource struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Metadata resourceMetadata `json:"metadata"`
}

type resourceMetadata struct {
	Billing *eventio.ResourcePricingConfig `json:"billing,omitempty"`
}

// GetResourcePricing fetches the resource and decodes the billing section
// of its metadata. A resource without usable billing metadata is a
// ValidationError: the notification is acknowledged, never retried.
func (c *Client) GetResourcePricing(ctx context.Context, resourceID int64) (*eventio.ResourcePricingConfig, error) {
	status, body, err := c.do(ctx, "GET", fmt.Sprintf("/api/v1/resources/%d", resourceID), nil)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, fmt.Errorf("get resource %d: unexpected status %d", resourceID, status)
	}
	res := &resource{}
	if err := json.Unmarshal(body, res); err != nil {
		return nil, pkgerrors.Wrapf(err, "error unmarshalling resource %d", resourceID)
	}
	if res.Metadata.Billing == nil {
		return nil, &eventio.ValidationError{
			Reason: fmt.Sprintf("resource %d has no billing metadata", resourceID),
		}
	}
	if err := res.Metadata.Billing.Validate(); err != nil {
		return nil, &eventio.ValidationError{
			Reason: fmt.Sprintf("resource %d: %s", resourceID, err),
		}
	}
	return res.Metadata.Billing, nil
}
