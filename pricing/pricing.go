package pricing

import (
	"bytes"
	"fmt"
	"math"
	"text/template"
	"time"

	"github.com/makerlabs/print-billing/eventio"
	"github.com/pkg/errors"
)

const (
	DefaultBaseDescriptionTemplate      = `{{.Job}} on {{.Device}}`
	DefaultSurchargeDescriptionTemplate = `Material surcharge for {{.Job}}: {{printf "%.1f" .VolumeMl}}ml {{.Material}}`
)

// Config allows tuning of the engine. Zero values fall back to the default
// description templates and UTC.
type Config struct {
	// BaseDescriptionTemplate renders the description of the base charge
	// line. It may reference .Job and .Device.
	BaseDescriptionTemplate string
	// SurchargeDescriptionTemplate renders the description of a material
	// surcharge line. It may additionally reference .VolumeMl and .Material.
	SurchargeDescriptionTemplate string
	// Location is the timezone charges are dated in.
	Location *time.Location
}

// Engine computes charge lines from a finished print job and a resource
// pricing config. It performs no I/O.
type Engine struct {
	base      *template.Template
	surcharge *template.Template
	location  *time.Location
}

type descriptionData struct {
	Job      string
	Device   string
	VolumeMl float64
	Material string
}

// New creates an Engine for the given config.
func New(cfg Config) (*Engine, error) {
	if cfg.BaseDescriptionTemplate == "" {
		cfg.BaseDescriptionTemplate = DefaultBaseDescriptionTemplate
	}
	if cfg.SurchargeDescriptionTemplate == "" {
		cfg.SurchargeDescriptionTemplate = DefaultSurchargeDescriptionTemplate
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	base, err := template.New("base").Parse(cfg.BaseDescriptionTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base description template")
	}
	surcharge, err := template.New("surcharge").Parse(cfg.SurchargeDescriptionTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "invalid surcharge description template")
	}
	return &Engine{
		base:      base,
		surcharge: surcharge,
		location:  cfg.Location,
	}, nil
}

// ComputeCharges returns one or two charge lines for the job.
//
// In default mode a single line is billed at the material override rate
// when one exists, otherwise at the default rate. In surcharge mode a base
// line is always billed at the default rate and, when an override exists,
// a second line charges the delta between the override and the default
// rate over the full volume, so the total equals the material rate.
func (e *Engine) ComputeCharges(job eventio.PrintJob, cfg eventio.ResourcePricingConfig, deviceName string) ([]eventio.ChargeLine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	data := descriptionData{
		Job:      job.Name,
		Device:   deviceName,
		VolumeMl: job.VolumeMl,
	}
	override, hasOverride := cfg.MaterialOverrides[job.Material]
	if hasOverride {
		data.Material = override.Name
	}

	baseDescription, err := render(e.base, data)
	if err != nil {
		return nil, err
	}

	switch cfg.BillingMode {
	case eventio.BillingModeSurcharge:
		lines := []eventio.ChargeLine{{
			Description: baseDescription,
			Amount:      round2(job.VolumeMl * cfg.DefaultPricePerMl),
		}}
		if hasOverride {
			surchargeDescription, err := render(e.surcharge, data)
			if err != nil {
				return nil, err
			}
			lines = append(lines, eventio.ChargeLine{
				Description: surchargeDescription,
				Amount:      round2(job.VolumeMl * (override.PricePerMl - cfg.DefaultPricePerMl)),
			})
		}
		return lines, nil
	default:
		unitPrice := cfg.DefaultPricePerMl
		if hasOverride {
			unitPrice = override.PricePerMl
		}
		return []eventio.ChargeLine{{
			Description: baseDescription,
			Amount:      round2(job.VolumeMl * unitPrice),
		}}, nil
	}
}

// ChargeTime is the instant a charge for this job is dated at, rendered in
// the configured timezone.
func (e *Engine) ChargeTime(job eventio.PrintJob) (time.Time, error) {
	end, ok := job.EffectiveEnd()
	if !ok {
		return time.Time{}, fmt.Errorf("job %s has no effective end", job.GUID)
	}
	return end.In(e.location), nil
}

func render(t *template.Template, data descriptionData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "rendering %s description", t.Name())
	}
	return buf.String(), nil
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
