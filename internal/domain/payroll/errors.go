package payroll

import "errors"

var (
	ErrAdjustmentNotFound = errors.New("payroll adjustment not found")
)
