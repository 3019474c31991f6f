package catalog

import "errors"

var (
	// ErrInvalidRecipe is returned when a recipe is missing an id or outputs
	ErrInvalidRecipe = errors.New("invalid recipe")

	// ErrInvalidDuration is returned when a recipe duration is not positive
	ErrInvalidDuration = errors.New("recipe duration must be positive")

	// ErrMineWithInputs is returned when a mine recipe declares inputs
	ErrMineWithInputs = errors.New("mine recipes cannot have inputs")

	// ErrInvalidMachineType is returned for an unknown machine type
	ErrInvalidMachineType = errors.New("invalid machine type")

	// ErrUnknownResource is returned when a recipe references a resource
	// that is not in the catalog
	ErrUnknownResource = errors.New("unknown resource")
)
