package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"quotehub/internal/domain/value"
)

// Premium amounts are whole currency units.
type Premium struct {
	Monthly  int64
	SixMonth int64
	Annual   int64
}

type Coverage struct {
	Liability     string
	Collision     int64 // deductible, 0 = not included
	Comprehensive int64 // deductible, 0 = not included
	Uninsured     bool
	Medical       int64 // limit, 0 = not included
}

type Quote struct {
	Carrier   string
	Premium   Premium
	Coverage  Coverage
	Discounts []string
	Rating    value.Rating
	QuoteID   string
	Source    value.Source
	Timestamp time.Time

	// Vendor specific, nil/empty when the source does not populate them.
	AIScore          *float64
	Recommendation   string
	Bindable         *bool
	RiskScore        *float64
	EffectiveDate    string
	PredictedRenewal *int64
}

// CarrierKey is the case-insensitive identity used for deduplication.
func (q Quote) CarrierKey() string {
	return strings.ToLower(q.Carrier)
}

// Validate rejects quotes whose fields cannot be scored meaningfully.
func (q Quote) Validate() error {
	var errs []error

	if strings.TrimSpace(q.Carrier) == "" {
		errs = append(errs, errors.New("carrier is empty"))
	}

	if q.Premium.Monthly < 0 || q.Premium.SixMonth < 0 || q.Premium.Annual < 0 {
		errs = append(errs, fmt.Errorf("negative premium %+v", q.Premium))
	}

	if _, err := value.ParseLiability(q.Coverage.Liability); err != nil {
		errs = append(errs, err)
	}

	if q.Coverage.Collision < 0 || q.Coverage.Comprehensive < 0 || q.Coverage.Medical < 0 {
		errs = append(errs, errors.New("negative coverage amount"))
	}

	return errors.Join(errs...)
}

// Clone returns a copy that shares no mutable state with q.
func (q Quote) Clone() Quote {
	c := q

	if q.Discounts != nil {
		c.Discounts = append([]string(nil), q.Discounts...)
	}

	c.AIScore = clonePtr(q.AIScore)
	c.Bindable = clonePtr(q.Bindable)
	c.RiskScore = clonePtr(q.RiskScore)
	c.PredictedRenewal = clonePtr(q.PredictedRenewal)

	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	return lo.ToPtr(*p)
}
