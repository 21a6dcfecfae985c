package engine

import "errors"

// Categorical failures. Engine operations return these (usually wrapped with
// context via fmt.Errorf and %w); callers branch with errors.Is. The engine
// never logs or swallows its own errors — presentation layers own display.
var (
	// ErrNoPlayer means the operation requires a created character.
	ErrNoPlayer = errors.New("no player created")
	// ErrNotFound means a referenced catalog id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientFunds means credits are below a required cost.
	ErrInsufficientFunds = errors.New("insufficient credits")
	// ErrInsufficientSkill means a hard contract requirement gate failed.
	ErrInsufficientSkill = errors.New("insufficient skill")
	// ErrNoCrisis means crisis resolution was requested with none active.
	ErrNoCrisis = errors.New("no active crisis")
	// ErrInvalidSelection means an out-of-range crisis option index.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrCorruptSave means a persistence document is missing required fields.
	ErrCorruptSave = errors.New("corrupt save document")
)
