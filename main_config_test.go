package main

import (
	"fmt"
	"os"
	"time"

	"github.com/makerlabs/print-billing/printcloud"
	"github.com/makerlabs/print-billing/tracker"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {

	BeforeEach(func() {
		os.Setenv("TRACKER_API_ADDRESS", "https://tracker.example.com")
		os.Setenv("TRACKER_TOKEN", "tracker-token")
		os.Setenv("PRINTCLOUD_API_ADDRESS", "https://printcloud.example.com")
		os.Setenv("PRINTCLOUD_USERNAME", "billing@example.com")
		os.Setenv("PRINTCLOUD_PASSWORD", "hunter2")
		os.Setenv("WEBHOOK_SECRET", "s3cret")
		os.Unsetenv("TRACKER_TIMEOUT")
		os.Unsetenv("TRACKER_RETRY_ATTEMPTS")
		os.Unsetenv("TRACKER_RETRY_BACKOFF")
		os.Unsetenv("PRINTCLOUD_PAGE_SIZE")
		os.Unsetenv("PRINTCLOUD_TIMEOUT")
		os.Unsetenv("BILLING_TIMEZONE")
		os.Unsetenv("BASE_DESCRIPTION_TEMPLATE")
		os.Unsetenv("SURCHARGE_DESCRIPTION_TEMPLATE")
		os.Unsetenv("LISTEN_HOST")
		os.Unsetenv("PORT")
	})

	It("should set sensible defaults for the config when only required variables are set", func() {
		cfg, err := NewConfigFromEnv()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Logger).ToNot(BeNil())
		Expect(cfg.Tracker.APIAddress).To(Equal("https://tracker.example.com"))
		Expect(cfg.Tracker.Token).To(Equal("tracker-token"))
		Expect(cfg.Tracker.Timeout).To(Equal(tracker.DefaultTimeout))
		Expect(cfg.Tracker.RetryAttempts).To(Equal(tracker.DefaultRetryAttempts))
		Expect(cfg.Tracker.RetryBackoff).To(Equal(tracker.DefaultRetryBackoff))
		Expect(cfg.Tracker.Location).To(Equal(time.UTC))
		Expect(cfg.PrintCloud.APIAddress).To(Equal("https://printcloud.example.com"))
		Expect(cfg.PrintCloud.PageSize).To(Equal(printcloud.DefaultPageSize))
		Expect(cfg.PrintCloud.Timeout).To(Equal(printcloud.DefaultTimeout))
		Expect(cfg.Pricing.Location).To(Equal(time.UTC))
		Expect(cfg.WebhookSecret).To(Equal("s3cret"))
		Expect(cfg.ServerPort).To(Equal(8881))
		Expect(cfg.ServerHost).To(Equal(""))
		Expect(cfg.ListenAddr).To(Equal(fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)))
	})

	It("should apply environment overrides", func() {
		os.Setenv("TRACKER_TIMEOUT", "10s")
		os.Setenv("TRACKER_RETRY_ATTEMPTS", "3")
		os.Setenv("TRACKER_RETRY_BACKOFF", "50ms")
		os.Setenv("PRINTCLOUD_PAGE_SIZE", "100")
		os.Setenv("BILLING_TIMEZONE", "Europe/Vienna")
		os.Setenv("BASE_DESCRIPTION_TEMPLATE", "{{.Job}}")
		os.Setenv("LISTEN_HOST", "127.0.0.1")
		os.Setenv("PORT", "9999")

		cfg, err := NewConfigFromEnv()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Tracker.Timeout).To(Equal(10 * time.Second))
		Expect(cfg.Tracker.RetryAttempts).To(Equal(3))
		Expect(cfg.Tracker.RetryBackoff).To(Equal(50 * time.Millisecond))
		Expect(cfg.PrintCloud.PageSize).To(Equal(100))
		Expect(cfg.Tracker.Location.String()).To(Equal("Europe/Vienna"))
		Expect(cfg.Pricing.Location).To(Equal(cfg.Tracker.Location))
		Expect(cfg.Pricing.BaseDescriptionTemplate).To(Equal("{{.Job}}"))
		Expect(cfg.ListenAddr).To(Equal("127.0.0.1:9999"))
	})

	DescribeTable("should return error when a required variable is missing",
		func(variableName string) {
			os.Unsetenv(variableName)
			_, err := NewConfigFromEnv()
			Expect(err).To(MatchError(
				fmt.Sprintf("environment variable %s is required", variableName)))
		},
		Entry("no tracker address", "TRACKER_API_ADDRESS"),
		Entry("no tracker token", "TRACKER_TOKEN"),
		Entry("no print cloud address", "PRINTCLOUD_API_ADDRESS"),
		Entry("no print cloud username", "PRINTCLOUD_USERNAME"),
		Entry("no print cloud password", "PRINTCLOUD_PASSWORD"),
		Entry("no webhook secret", "WEBHOOK_SECRET"),
	)

	DescribeTable("should return error when failing to parse durations",
		func(variableName string) {
			os.Setenv(variableName, "bad-duration")
			defer os.Unsetenv(variableName)
			_, err := NewConfigFromEnv()
			Expect(err).To(MatchError("time: invalid duration \"bad-duration\""))
		},
		Entry("bad tracker timeout", "TRACKER_TIMEOUT"),
		Entry("bad tracker retry backoff", "TRACKER_RETRY_BACKOFF"),
		Entry("bad print cloud timeout", "PRINTCLOUD_TIMEOUT"),
	)

	DescribeTable("should return error when failing to parse integers",
		func(variableName string) {
			os.Setenv(variableName, "NaN")
			defer os.Unsetenv(variableName)
			_, err := NewConfigFromEnv()
			Expect(err).To(MatchError(ContainSubstring("invalid syntax")))
		},
		Entry("bad retry attempts", "TRACKER_RETRY_ATTEMPTS"),
		Entry("bad page size", "PRINTCLOUD_PAGE_SIZE"),
		Entry("bad ServerPort", "PORT"),
	)

	It("should return error for an unknown timezone", func() {
		os.Setenv("BILLING_TIMEZONE", "Mars/Olympus_Mons")
		defer os.Unsetenv("BILLING_TIMEZONE")
		_, err := NewConfigFromEnv()
		Expect(err).To(MatchError(ContainSubstring("Mars/Olympus_Mons")))
	})
})
