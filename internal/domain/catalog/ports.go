package catalog

// Reader is the read-only catalog access used by the production scheduler,
// the market engine and the presentation layer.
type Reader interface {
	Resource(id string) (Resource, bool)
	Recipe(id string) (Recipe, bool)
	Resources() []Resource
	ResourceIDs() []string
	Recipes() []Recipe
	RecipesForMachineType(t MachineType) []Recipe
}
