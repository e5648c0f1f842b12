// Package workflow holds the status-transition rules for projects,
// applications and skill swaps. Every function is pure: it inspects the
// snapshots it is given, mutates them in place when a transition is legal,
// and reports the extra writes the caller must persist. Persistence and
// transactions belong to the services layer.
package workflow

import "errors"

var (
	ErrProjectNotActive = errors.New("project is not active")
	ErrOwnerCannotApply = errors.New("project owner cannot apply to own project")
	ErrAlreadyMember    = errors.New("already an active member of this project")
	ErrAlreadyApplied   = errors.New("a pending application already exists for this project")
	ErrProjectFull      = errors.New("project has reached its maximum number of members")
	ErrNotProjectOwner  = errors.New("only the project creator can perform this action")
	ErrAlreadyReviewed  = errors.New("application has already been reviewed")
	ErrNotApplicant     = errors.New("only the applicant can withdraw an application")
	ErrInvalidDecision  = errors.New("decision must be accepted or rejected")

	ErrSwapNotPending   = errors.New("skill swap is no longer pending")
	ErrSwapTaken        = errors.New("skill swap already has a responder")
	ErrOwnSwap          = errors.New("cannot respond to your own skill swap")
	ErrSwapNotAccepted  = errors.New("skill swap is not accepted")
	ErrNotSwapParty     = errors.New("only swap participants can perform this action")
	ErrNotSwapRequester = errors.New("only the requester can cancel a skill swap")
	ErrSwapTerminal     = errors.New("skill swap is in a terminal state")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrTooFewMembers     = errors.New("max_members must be at least 2")
	ErrMissingField      = errors.New("required field is missing")
)
