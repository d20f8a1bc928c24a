package domain

import (
	interfaces "epochs/internal/domain/interfaces"
	types "epochs/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	State       = types.State
	Decoded     = types.Decoded
	SchemeInfo  = types.SchemeInfo
	BatchReport = types.BatchReport
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DecodeService = interfaces.DecodeService
	StateStore    = interfaces.StateStore
)

// DefaultState returns the state of a fresh install.
func DefaultState() State { return types.DefaultState() }
