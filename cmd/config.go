package cmd

import (
	"strconv"

	"tableside/internal/pkg/errs"
)

// Config carries every runtime setting the application reads at startup.
// String fields come straight from the environment; numeric fields are
// parsed on access.
type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	MenuPath            string
	StaffToken          string
	BonusThreshold      string
	ThirdStageLabel     string
	PollIntervalSeconds string
}

// defaultPollIntervalSeconds is used when POLL_INTERVAL_SECONDS is unset.
const defaultPollIntervalSeconds = 10

// PollInterval returns the watch interval in seconds, between 5 and 10.
// Values outside that band would either hammer the store or make the kitchen
// monitor feel dead.
func (c Config) PollInterval() (int, error) {
	if c.PollIntervalSeconds == "" {
		return defaultPollIntervalSeconds, nil
	}

	interval, err := strconv.Atoi(c.PollIntervalSeconds)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("POLL_INTERVAL_SECONDS", err)
	}

	if interval < 5 || interval > 10 {
		return 0, errs.NewValueIsOutOfRangeError("POLL_INTERVAL_SECONDS", interval, 5, 10)
	}

	return interval, nil
}

// BonusThresholdValue returns the configured free-item threshold, or -1 when
// unset so the caller falls back to the default policy.
func (c Config) BonusThresholdValue() (int64, error) {
	if c.BonusThreshold == "" {
		return -1, nil
	}

	threshold, err := strconv.ParseInt(c.BonusThreshold, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("BONUS_THRESHOLD", err)
	}

	return threshold, nil
}
