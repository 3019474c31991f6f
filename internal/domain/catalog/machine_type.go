package catalog

// MachineType identifies the kind of production machine a recipe runs on
type MachineType string

const (
	MachineTypeMine      MachineType = "mine"
	MachineTypeFurnace   MachineType = "furnace"
	MachineTypeAssembler MachineType = "assembler"
)

// AllMachineTypes lists every machine type in a stable order
func AllMachineTypes() []MachineType {
	return []MachineType{MachineTypeMine, MachineTypeFurnace, MachineTypeAssembler}
}

// IsValid reports whether the machine type is one of the known kinds
func (t MachineType) IsValid() bool {
	switch t {
	case MachineTypeMine, MachineTypeFurnace, MachineTypeAssembler:
		return true
	}
	return false
}

func (t MachineType) String() string {
	return string(t)
}
