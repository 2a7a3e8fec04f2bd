package plan

import "errors"

var (
	ErrPlanNotFound  = errors.New("plan not found")
	ErrDuplicatePlan = errors.New("plan name already exists")
	ErrEmptyPlanName = errors.New("plan name is required")
)
