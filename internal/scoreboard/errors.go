package scoreboard

import "errors"

// Directive rejections. All are non-fatal: the engine state is unchanged
// whenever one of these is returned.
var (
	ErrStarted         = errors.New("competition has started")
	ErrNotStarted      = errors.New("competition has not started")
	ErrEnded           = errors.New("competition has ended")
	ErrDuplicateTeam   = errors.New("duplicated team name")
	ErrTeamNotFound    = errors.New("cannot find the team")
	ErrProblemNotFound = errors.New("cannot find the problem")
	ErrInvalidOutcome  = errors.New("unknown submission outcome")
	ErrFrozen          = errors.New("scoreboard has been frozen")
	ErrNotFrozen       = errors.New("scoreboard has not been frozen")
)
