// Package subscription defines the subscription aggregate: a date-driven
// state machine over ACTIVE/CANCELLED status and trial/regular kind.
package subscription

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/shared"
	"github.com/lobelia-inc/lobelia/internal/shared/biztime"
)

// Validity windows are fixed policy, not configuration.
const (
	RegularDurationDays = 30
	TrialDurationDays   = 7
)

// Subscription links a user to a plan for a dated validity window.
// Subscriptions are never physically deleted; cancellation is a status
// flag and is terminal.
type Subscription struct {
	shared.Entity
	userID    uuid.UUID
	planID    uuid.UUID
	startDate time.Time
	endDate   time.Time
	status    Status
	isTrial   bool
}

// NewRegular creates an active regular subscription valid for 30 days
// from now.
func NewRegular(userID, planID uuid.UUID) (*Subscription, error) {
	return newSubscription(userID, planID, RegularDurationDays, false)
}

// NewTrial creates an active trial subscription valid for 7 days from now.
func NewTrial(userID, planID uuid.UUID) (*Subscription, error) {
	return newSubscription(userID, planID, TrialDurationDays, true)
}

func newSubscription(userID, planID uuid.UUID, durationDays int, isTrial bool) (*Subscription, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == uuid.Nil {
		return nil, fmt.Errorf("plan ID is required")
	}

	start := biztime.NowUTC()
	return &Subscription{
		Entity:    shared.NewEntity(),
		userID:    userID,
		planID:    planID,
		startDate: start,
		endDate:   biztime.AddDays(start, durationDays),
		status:    StatusActive,
		isTrial:   isTrial,
	}, nil
}

// Reconstruct rebuilds a subscription from persistence.
func Reconstruct(id, userID, planID uuid.UUID, status Status,
	startDate, endDate time.Time, isTrial bool,
	createdAt, updatedAt time.Time, isActive bool) (*Subscription, error) {

	if id == uuid.Nil {
		return nil, fmt.Errorf("subscription ID cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == uuid.Nil {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return &Subscription{
		Entity:    shared.ReconstructEntity(id, createdAt, updatedAt, isActive),
		userID:    userID,
		planID:    planID,
		startDate: startDate,
		endDate:   endDate,
		status:    status,
		isTrial:   isTrial,
	}, nil
}

// UserID returns the owning user id.
func (s *Subscription) UserID() uuid.UUID {
	return s.userID
}

// PlanID returns the subscribed plan id.
func (s *Subscription) PlanID() uuid.UUID {
	return s.planID
}

// StartDate returns the start of the validity window.
func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

// EndDate returns the end of the validity window.
func (s *Subscription) EndDate() time.Time {
	return s.endDate
}

// Status returns the subscription status.
func (s *Subscription) Status() Status {
	return s.status
}

// IsTrial reports whether this is a trial subscription.
func (s *Subscription) IsTrial() bool {
	return s.isTrial
}

// IsCancelled reports whether the subscription has been cancelled.
func (s *Subscription) IsCancelled() bool {
	return s.status == StatusCancelled
}

// IsExpired reports whether the end date's calendar day is strictly
// before today. A subscription ending today is not expired. Time of day
// is ignored on both sides.
func (s *Subscription) IsExpired() bool {
	return biztime.DateBefore(s.endDate, biztime.NowUTC())
}

// Renew extends the subscription. A trial is upgraded to a regular
// subscription with a fresh 30-day window; a regular subscription keeps
// its start date and gains 30 days on top of its current end date, even
// when that end date is already in the past.
func (s *Subscription) Renew() error {
	if s.IsCancelled() {
		return ErrRenewCancelled
	}

	if s.isTrial {
		s.upgrade()
	} else {
		s.extend()
	}
	s.Touch()
	return nil
}

// Cancel marks the subscription cancelled. Idempotent; cancellation is
// terminal.
func (s *Subscription) Cancel() {
	if s.status == StatusCancelled {
		return
	}
	s.status = StatusCancelled
	s.Touch()
}

// ConvertToTrial downgrades a regular subscription to a 7-day trial
// window starting now.
func (s *Subscription) ConvertToTrial() error {
	if s.isTrial {
		return ErrAlreadyTrial
	}

	s.isTrial = true
	s.startDate = biztime.NowUTC()
	s.endDate = biztime.AddDays(s.startDate, TrialDurationDays)
	s.Touch()
	return nil
}

func (s *Subscription) upgrade() {
	s.isTrial = false
	s.startDate = biztime.NowUTC()
	s.endDate = biztime.AddDays(s.startDate, RegularDurationDays)
}

func (s *Subscription) extend() {
	s.endDate = biztime.AddDays(s.endDate, RegularDurationDays)
}

// Equals reports identity equality between two subscriptions.
func (s *Subscription) Equals(other *Subscription) bool {
	if other == nil {
		return false
	}
	return s.ID() == other.ID()
}
