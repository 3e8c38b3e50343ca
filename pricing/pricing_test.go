package pricing_test

import (
	"time"

	"github.com/makerlabs/print-billing/eventio"
	. "github.com/makerlabs/print-billing/pricing"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Engine", func() {

	var (
		engine   *Engine
		job      eventio.PrintJob
		started  = time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)
		finished = time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	)

	BeforeEach(func() {
		var err error
		engine, err = New(Config{})
		Expect(err).ToNot(HaveOccurred())

		job = eventio.PrintJob{
			GUID:       "job-1",
			Name:       "bracket-v2",
			Material:   "FLGPCL04",
			VolumeMl:   12.5,
			StartedAt:  &started,
			FinishedAt: &finished,
		}
	})

	Describe("default billing mode", func() {
		It("bills the full volume at the default rate", func() {
			lines, err := engine.ComputeCharges(job, eventio.ResourcePricingConfig{
				PrinterSerial:     "Form3-XYZ",
				DefaultPricePerMl: 1.00,
				BillingMode:       eventio.BillingModeDefault,
			}, "Form 3")
			Expect(err).ToNot(HaveOccurred())
			Expect(lines).To(HaveLen(1))
			Expect(lines[0].Amount).To(Equal(12.50))
			Expect(lines[0].Description).To(Equal("bracket-v2 on Form 3"))
		})

		It("prefers a material override rate", func() {
			lines, err := engine.ComputeCharges(job, eventio.ResourcePricingConfig{
				PrinterSerial:     "Form3-XYZ",
				DefaultPricePerMl: 1.00,
				BillingMode:       eventio.BillingModeDefault,
				MaterialOverrides: map[string]eventio.MaterialPrice{
					"FLGPCL04": {Name: "Clear Resin", PricePerMl: 0.13},
				},
			}, "Form 3")
			Expect(err).ToNot(HaveOccurred())
			Expect(lines).To(HaveLen(1))
			Expect(lines[0].Amount).To(Equal(1.63))
		})

		It("ignores overrides for other materials", func() {
			lines, err := engine.ComputeCharges(job, eventio.ResourcePricingConfig{
				PrinterSerial:     "Form3-XYZ",
				DefaultPricePerMl: 0.50,
				BillingMode:       eventio.BillingModeDefault,
				MaterialOverrides: map[string]eventio.MaterialPrice{
					"FLTOTL05": {Name: "Tough Resin", PricePerMl: 0.90},
				},
			}, "Form 3")
			Expect(err).ToNot(HaveOccurred())
			Expect(lines).To(HaveLen(1))
			Expect(lines[0].Amount).To(Equal(6.25))
		})
	})

	Describe("surcharge billing mode", func() {
		var cfg eventio.ResourcePricingConfig

		BeforeEach(func() {
			cfg = eventio.ResourcePricingConfig{
				PrinterSerial:     "Form3-XYZ",
				DefaultPricePerMl: 0.10,
				BillingMode:       eventio.BillingModeSurcharge,
				MaterialOverrides: map[string]eventio.MaterialPrice{
					"FLGPCL04": {Name: "Clear Resin", PricePerMl: 0.23},
				},
			}
		})

		It("bills a base line plus the delta over the default rate", func() {
			lines, err := engine.ComputeCharges(job, cfg, "Form 3")
			Expect(err).ToNot(HaveOccurred())
			Expect(lines).To(HaveLen(2))
			Expect(lines[0].Amount).To(Equal(1.25))
			Expect(lines[1].Amount).To(Equal(1.63))
			Expect(lines[1].Description).To(Equal("Material surcharge for bracket-v2: 12.5ml Clear Resin"))
		})

		It("bills only the base line without an override", func() {
			job.Material = "FLTOTL05"
			lines, err := engine.ComputeCharges(job, cfg, "Form 3")
			Expect(err).ToNot(HaveOccurred())
			Expect(lines).To(HaveLen(1))
			Expect(lines[0].Amount).To(Equal(1.25))
		})
	})

	Describe("rounding", func() {
		It("rounds half up to two decimal places", func() {
			job.VolumeMl = 0.05
			lines, err := engine.ComputeCharges(job, eventio.ResourcePricingConfig{
				PrinterSerial:     "Form3-XYZ",
				DefaultPricePerMl: 0.10,
				BillingMode:       eventio.BillingModeDefault,
			}, "Form 3")
			Expect(err).ToNot(HaveOccurred())
			Expect(lines[0].Amount).To(Equal(0.01))
		})
	})

	Describe("ChargeTime", func() {
		It("renders the effective end in the configured timezone", func() {
			vienna, err := time.LoadLocation("Europe/Vienna")
			Expect(err).ToNot(HaveOccurred())
			engine, err := New(Config{Location: vienna})
			Expect(err).ToNot(HaveOccurred())

			chargedAt, err := engine.ChargeTime(job)
			Expect(err).ToNot(HaveOccurred())
			Expect(chargedAt.Location()).To(Equal(vienna))
			Expect(chargedAt.Unix()).To(Equal(finished.Unix()))
		})

		It("fails for a job without an effective end", func() {
			job.FinishedAt = nil
			_, err := engine.ChargeTime(job)
			Expect(err).To(MatchError("job job-1 has no effective end"))
		})
	})

	Describe("Config", func() {
		It("rejects an unparsable template", func() {
			_, err := New(Config{BaseDescriptionTemplate: "{{.Job"})
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown billing mode", func() {
			_, err := engine.ComputeCharges(job, eventio.ResourcePricingConfig{
				PrinterSerial:     "Form3-XYZ",
				DefaultPricePerMl: 1.00,
				BillingMode:       "per-minute",
			}, "Form 3")
			Expect(err).To(MatchError("unknown billingMode: per-minute"))
		})
	})
})
