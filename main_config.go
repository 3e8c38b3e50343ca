package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/makerlabs/print-billing/pricing"
	"github.com/makerlabs/print-billing/printcloud"
	"github.com/makerlabs/print-billing/tracker"
	"github.com/pkg/errors"

	"code.cloudfoundry.org/lager"
)

type Config struct {
	Logger        lager.Logger
	Tracker       tracker.Config
	PrintCloud    printcloud.Config
	Pricing       pricing.Config
	WebhookSecret string
	ServerPort    int
	ServerHost    string
	ListenAddr    string
}

func NewConfigFromEnv() (cfg Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(fmt.Sprintf("%v", r))
		}
	}()

	location := getEnvLocation("BILLING_TIMEZONE")

	cfg = Config{
		Logger: lager.NewLogger("default"),
		Tracker: tracker.Config{
			APIAddress:    getEnvString("TRACKER_API_ADDRESS"),
			Token:         getEnvString("TRACKER_TOKEN"),
			Timeout:       getEnvWithDefaultDuration("TRACKER_TIMEOUT", tracker.DefaultTimeout),
			RetryAttempts: getEnvWithDefaultInt("TRACKER_RETRY_ATTEMPTS", tracker.DefaultRetryAttempts),
			RetryBackoff:  getEnvWithDefaultDuration("TRACKER_RETRY_BACKOFF", tracker.DefaultRetryBackoff),
			Location:      location,
		},
		PrintCloud: printcloud.Config{
			APIAddress: getEnvString("PRINTCLOUD_API_ADDRESS"),
			Username:   getEnvString("PRINTCLOUD_USERNAME"),
			Password:   getEnvString("PRINTCLOUD_PASSWORD"),
			PageSize:   getEnvWithDefaultInt("PRINTCLOUD_PAGE_SIZE", printcloud.DefaultPageSize),
			Timeout:    getEnvWithDefaultDuration("PRINTCLOUD_TIMEOUT", printcloud.DefaultTimeout),
		},
		Pricing: pricing.Config{
			BaseDescriptionTemplate:      getEnvWithDefaultString("BASE_DESCRIPTION_TEMPLATE", ""),
			SurchargeDescriptionTemplate: getEnvWithDefaultString("SURCHARGE_DESCRIPTION_TEMPLATE", ""),
			Location:                     location,
		},
		WebhookSecret: getEnvString("WEBHOOK_SECRET"),
		ServerPort:    getEnvWithDefaultInt("PORT", 8881),
		ServerHost:    getEnvWithDefaultString("LISTEN_HOST", ""),
	}
	cfg.ListenAddr = fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
	return cfg, nil
}

func getEnvWithDefaultDuration(k string, def time.Duration) time.Duration {
	v := getEnvWithDefaultString(k, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	return d
}

func getEnvWithDefaultInt(k string, def int) int {
	v := getEnvWithDefaultString(k, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	return n
}

func getEnvWithDefaultString(k string, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getEnvString(k string) string {
	v := getEnvWithDefaultString(k, "")
	if v == "" {
		panic(fmt.Sprintf("environment variable %s is required", k))
	}
	return v
}

func getEnvLocation(k string) *time.Location {
	v := getEnvWithDefaultString(k, "")
	if v == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(v)
	if err != nil {
		panic(err)
	}
	return location
}

func getDefaultLogger() lager.Logger {
	logger := lager.NewLogger("print-billing")
	logLevel := lager.INFO
	if strings.ToLower(os.Getenv("LOG_LEVEL")) == "debug" {
		logLevel = lager.DEBUG
	}
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, logLevel))

	return logger
}
