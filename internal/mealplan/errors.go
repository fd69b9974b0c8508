package mealplan

import "errors"

// Errors returned by the Planner. Callers test them with errors.Is.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrPlanMissing    = errors.New("plan missing")
	ErrDayNotInPlan   = errors.New("day not in plan")
	// ErrLLMUnavailable is advisory only: it is reported through plan
	// advisories and never returned from a public operation.
	ErrLLMUnavailable = errors.New("llm unavailable")
	ErrInternal       = errors.New("internal error")
)
