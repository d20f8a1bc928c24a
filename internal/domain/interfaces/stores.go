package interfaces

import domaintypes "epochs/internal/domain/types"

// StateStore persists the last decoded input.
type StateStore interface {
	SaveState(state domaintypes.State) error
	// LoadState reports false when nothing has been saved yet.
	LoadState() (domaintypes.State, bool, error)
}
