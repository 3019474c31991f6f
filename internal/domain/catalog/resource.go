package catalog

// Resource is a static, immutable catalog entry describing a resource identity
type Resource struct {
	ID   string
	Name string
	Icon string
}

// Stack pairs a resource with a quantity. Recipes, research requirements and
// special orders are all expressed in stacks.
type Stack struct {
	ResourceID string
	Quantity   int
}
