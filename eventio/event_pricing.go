package eventio

import "fmt"

// BillingMode selects how charges are derived from a job.
type BillingMode string

const (
	// BillingModeDefault bills a single line at the material-specific rate
	// when an override exists, falling back to the default rate.
	BillingModeDefault BillingMode = "default"
	// BillingModeSurcharge always bills a base line at the default rate and
	// adds a separate material surcharge line when an override exists.
	BillingModeSurcharge BillingMode = "surcharge"
)

// MaterialPrice is a per-material price override.
type MaterialPrice struct {
	Name       string  `json:"name"`
	PricePerMl float64 `json:"pricePerMl"`
}

// ResourcePricingConfig is the billing configuration attached to a tracker
// resource's metadata.
type ResourcePricingConfig struct {
	PrinterSerial     string                   `json:"printerSerial"`
	DefaultPricePerMl float64                  `json:"defaultPricePerMl"`
	BillingMode       BillingMode              `json:"billingMode"`
	MaterialOverrides map[string]MaterialPrice `json:"materialOverrides,omitempty"`
}

func (c *ResourcePricingConfig) Validate() error {
	if c.PrinterSerial == "" {
		return fmt.Errorf("pricing config must have a printerSerial")
	}
	if c.DefaultPricePerMl < 0 {
		return fmt.Errorf("pricing config defaultPricePerMl must not be negative")
	}
	switch c.BillingMode {
	case BillingModeDefault, BillingModeSurcharge:
	case "":
		return fmt.Errorf("pricing config must have a billingMode")
	default:
		return fmt.Errorf("unknown billingMode: %s", c.BillingMode)
	}
	return nil
}

// ChargeLine is one monetary line to post to the billing API.
// LinkedEventID of zero posts the charge unlinked.
type ChargeLine struct {
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	LinkedEventID int64   `json:"linked_event_id,omitempty"`
}
