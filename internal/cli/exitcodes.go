package cli

import (
	"errors"

	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
	boardservice "github.com/thenoetrevino/hito/internal/services/board"
	itemservice "github.com/thenoetrevino/hito/internal/services/item"
	laneservice "github.com/thenoetrevino/hito/internal/services/lane"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or no organization/board context.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Unknown organization, board, item or lane IDs.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, bad colors, or a move targeting a lane the
	// board does not have.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command. The
// message has already been reported by the OutputFormatter.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string { return e.Err.Error() }

func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return classify(err)
}

// classify picks the exit code and error code for a service error
func classify(err error) int {
	switch {
	case errors.Is(err, models.ErrOrganizationNotFound),
		errors.Is(err, models.ErrBoardNotFound),
		errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrTagNotFound):
		return ExitNotFound
	case errors.Is(err, roadmap.ErrUnknownLane),
		errors.Is(err, roadmap.ErrEmptyName),
		errors.Is(err, roadmap.ErrNameTooLong),
		errors.Is(err, roadmap.ErrInvalidColor),
		errors.Is(err, itemservice.ErrEmptyTitle),
		errors.Is(err, itemservice.ErrTitleTooLong),
		errors.Is(err, itemservice.ErrEmptyTarget),
		errors.Is(err, itemservice.ErrNothingToVote),
		errors.Is(err, laneservice.ErrBuiltInLane),
		errors.Is(err, laneservice.ErrNotRoadmapLane),
		errors.Is(err, boardservice.ErrEmptyName),
		errors.Is(err, boardservice.ErrNameTooLong):
		return ExitValidation
	case errors.Is(err, ErrNoContext),
		errors.Is(err, itemservice.ErrInvalidItemID),
		errors.Is(err, itemservice.ErrInvalidBoardID),
		errors.Is(err, laneservice.ErrInvalidOrgID),
		errors.Is(err, laneservice.ErrInvalidLaneID),
		errors.Is(err, boardservice.ErrInvalidOrgID),
		errors.Is(err, boardservice.ErrInvalidBoardID):
		return ExitUsage
	}
	return ExitError
}
