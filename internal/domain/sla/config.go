package sla

import (
	"fmt"
	"time"

	"openfare/internal/shared/errors"
)

// SLAType identifies a category of service-level obligation an operator
// must honor.
type SLAType string

const (
	SLATypeRefundTimeout     SLAType = "REFUND_TIMEOUT"
	SLATypeComplaintResponse SLAType = "COMPLAINT_RESPONSE"
)

func (t SLAType) IsValid() bool {
	return t == SLATypeRefundTimeout || t == SLATypeComplaintResponse
}

// Config defines the threshold and penalty for one SLA type.
type Config struct {
	id             uint
	slaType        SLAType
	thresholdHours float64
	penalty        float64
	createdAt      time.Time
	updatedAt      time.Time
}

func NewConfig(slaType SLAType, thresholdHours, penalty float64) (*Config, error) {
	if !slaType.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid SLA type: %s", slaType))
	}
	if thresholdHours <= 0 {
		return nil, errors.NewValidationError("threshold hours must be positive")
	}
	if penalty < 0 {
		return nil, errors.NewValidationError("penalty cannot be negative")
	}
	now := time.Now()
	return &Config{
		slaType:        slaType,
		thresholdHours: thresholdHours,
		penalty:        penalty,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructConfig(
	id uint,
	slaType SLAType,
	thresholdHours float64,
	penalty float64,
	createdAt time.Time,
	updatedAt time.Time,
) *Config {
	return &Config{
		id:             id,
		slaType:        slaType,
		thresholdHours: thresholdHours,
		penalty:        penalty,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (c *Config) ID() uint                { return c.id }
func (c *Config) Type() SLAType           { return c.slaType }
func (c *Config) ThresholdHours() float64 { return c.thresholdHours }
func (c *Config) Penalty() float64        { return c.penalty }
func (c *Config) CreatedAt() time.Time    { return c.createdAt }
func (c *Config) UpdatedAt() time.Time    { return c.updatedAt }

// Threshold returns the configured limit as a duration.
func (c *Config) Threshold() time.Duration {
	return time.Duration(c.thresholdHours * float64(time.Hour))
}

// Exceeded reports whether the elapsed time breaks this SLA.
func (c *Config) Exceeded(elapsed time.Duration) bool {
	return elapsed > c.Threshold()
}

func (c *Config) UpdateThreshold(thresholdHours, penalty float64) error {
	if thresholdHours <= 0 {
		return errors.NewValidationError("threshold hours must be positive")
	}
	if penalty < 0 {
		return errors.NewValidationError("penalty cannot be negative")
	}
	c.thresholdHours = thresholdHours
	c.penalty = penalty
	c.updatedAt = time.Now()
	return nil
}

func (c *Config) SetID(id uint) {
	if c.id == 0 {
		c.id = id
	}
}
