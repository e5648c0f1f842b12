package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/teamswap/teamswap/internal/services"
	"github.com/teamswap/teamswap/internal/workflow"
	"github.com/teamswap/teamswap/pkg/response"
	"gorm.io/gorm"
)

// handleError maps service errors onto the response envelope. Workflow
// rule violations are conflicts with current state, not client mistakes,
// so they come back as 409 with the rule's message.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "not found")
	case errors.Is(err, workflow.ErrNotProjectOwner),
		errors.Is(err, workflow.ErrNotApplicant),
		errors.Is(err, workflow.ErrNotSwapParty),
		errors.Is(err, workflow.ErrNotSwapRequester):
		response.Forbidden(c, err.Error())
	case errors.Is(err, workflow.ErrInvalidDecision),
		errors.Is(err, workflow.ErrMissingField),
		errors.Is(err, workflow.ErrTooFewMembers):
		response.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, workflow.ErrProjectNotActive),
		errors.Is(err, workflow.ErrOwnerCannotApply),
		errors.Is(err, workflow.ErrAlreadyMember),
		errors.Is(err, workflow.ErrAlreadyApplied),
		errors.Is(err, workflow.ErrProjectFull),
		errors.Is(err, workflow.ErrAlreadyReviewed),
		errors.Is(err, workflow.ErrSwapNotPending),
		errors.Is(err, workflow.ErrSwapTaken),
		errors.Is(err, workflow.ErrOwnSwap),
		errors.Is(err, workflow.ErrSwapNotAccepted),
		errors.Is(err, workflow.ErrSwapTerminal),
		errors.Is(err, workflow.ErrInvalidTransition):
		response.Conflict(c, err.Error())
	default:
		response.Error(c, err)
	}
}
