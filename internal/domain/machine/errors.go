package machine

import "errors"

var (
	// ErrMachineNotFound is returned when a machine id is unknown
	ErrMachineNotFound = errors.New("machine not found")

	// ErrNoRecipeSelected is returned when toggling a machine that has no
	// recipe assigned; such a machine can never be active
	ErrNoRecipeSelected = errors.New("no recipe selected")

	// ErrUnknownMachineType is returned for a machine type outside the catalog
	ErrUnknownMachineType = errors.New("unknown machine type")

	// ErrRecipeMismatch is returned when assigning a recipe that runs on a
	// different machine type
	ErrRecipeMismatch = errors.New("recipe does not match machine type")
)
