package errors

import "fmt"

var (
	ErrStorage     = fmt.Errorf("storage failure")
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no offensive words configured")
	ErrBadRuleSet  = fmt.Errorf("invalid rule set")
	ErrNotAdmin    = fmt.Errorf("sender is not a chat administrator")
)
