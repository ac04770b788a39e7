package scoring

import "errors"

// Error taxonomy for scoring operations. Every failure returned by the engine
// wraps exactly one of these sentinels so callers can map them with errors.Is.
var (
	// ErrInvalidState means the operation is not legal for the match's
	// current lifecycle status.
	ErrInvalidState = errors.New("invalid match state")

	// ErrInvalidReference means an ID does not resolve to an entity belonging
	// to this match.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrRuleViolation means a playing rule rejects the input.
	ErrRuleViolation = errors.New("rule violation")

	// ErrNotFound means the targeted match, innings or delivery does not exist.
	ErrNotFound = errors.New("not found")
)
