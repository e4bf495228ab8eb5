package fsroute

import "errors"

var (
	// ErrNotFound is returned when the scanned root directory does not exist
	ErrNotFound = errors.New("not found")
	// ErrModuleLoad is returned when a route module fails to load or execute
	ErrModuleLoad = errors.New("module load failed")
	// ErrInvalidModule is returned when a loaded module's exports do not
	// satisfy the handle-kind contract
	ErrInvalidModule = errors.New("invalid module")
)
