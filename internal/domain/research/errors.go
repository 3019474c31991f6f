package research

import "errors"

var (
	// ErrResearchNotFound is returned when a research id is unknown
	ErrResearchNotFound = errors.New("research not found")

	// ErrLaboratoryNotFound is returned when a laboratory id is unknown
	ErrLaboratoryNotFound = errors.New("laboratory not found")

	// ErrNotUnlocked is returned when starting a research whose
	// prerequisites are not yet completed
	ErrNotUnlocked = errors.New("research not unlocked")

	// ErrAlreadyDone is returned when starting a research that is already
	// completed or in progress
	ErrAlreadyDone = errors.New("research already completed or in progress")

	// ErrSpecializationMismatch is returned when a specialized laboratory
	// is asked to run a research outside its category
	ErrSpecializationMismatch = errors.New("laboratory cannot run this research category")

	// ErrLaboratoryBusy is returned when a laboratory is at its concurrent
	// research capacity
	ErrLaboratoryBusy = errors.New("laboratory at capacity")

	// ErrUnknownLaboratoryType is returned for a laboratory type outside
	// the catalog
	ErrUnknownLaboratoryType = errors.New("unknown laboratory type")
)
