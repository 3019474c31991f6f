package catalog

// Recipe describes one production cycle: the inputs consumed, the outputs
// produced, the cycle duration in seconds and the machine type that runs it.
type Recipe struct {
	ID          string
	Name        string
	Inputs      []Stack
	Outputs     []Stack
	Duration    float64 // seconds
	MachineType MachineType
}

// IsMine reports whether this recipe runs on a mine. Mine recipes have no
// inputs and always satisfy the production precondition.
func (r Recipe) IsMine() bool {
	return r.MachineType == MachineTypeMine
}

// Validate checks the recipe invariants
func (r Recipe) Validate() error {
	if r.ID == "" {
		return ErrInvalidRecipe
	}
	if r.Duration <= 0 {
		return ErrInvalidDuration
	}
	if r.IsMine() && len(r.Inputs) > 0 {
		return ErrMineWithInputs
	}
	if !r.MachineType.IsValid() {
		return ErrInvalidMachineType
	}
	if len(r.Outputs) == 0 {
		return ErrInvalidRecipe
	}
	return nil
}
