package catalog

import "fmt"

// Catalog is the static lookup table of resources and recipes. It carries no
// mutable state; a single instance is shared by every component.
type Catalog struct {
	resources     map[string]Resource
	recipes       map[string]Recipe
	resourceOrder []string
	recipeOrder   []string
}

// NewCatalog builds a catalog from resource and recipe definitions,
// validating every recipe and cross-checking resource references.
func NewCatalog(resources []Resource, recipes []Recipe) (*Catalog, error) {
	c := &Catalog{
		resources: make(map[string]Resource, len(resources)),
		recipes:   make(map[string]Recipe, len(recipes)),
	}

	for _, res := range resources {
		if res.ID == "" {
			return nil, fmt.Errorf("resource with empty id: %w", ErrUnknownResource)
		}
		if _, exists := c.resources[res.ID]; exists {
			return nil, fmt.Errorf("duplicate resource %q", res.ID)
		}
		c.resources[res.ID] = res
		c.resourceOrder = append(c.resourceOrder, res.ID)
	}

	for _, rec := range recipes {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("recipe %q: %w", rec.ID, err)
		}
		if _, exists := c.recipes[rec.ID]; exists {
			return nil, fmt.Errorf("duplicate recipe %q", rec.ID)
		}
		for _, s := range append(append([]Stack{}, rec.Inputs...), rec.Outputs...) {
			if _, ok := c.resources[s.ResourceID]; !ok {
				return nil, fmt.Errorf("recipe %q references %q: %w", rec.ID, s.ResourceID, ErrUnknownResource)
			}
		}
		c.recipes[rec.ID] = rec
		c.recipeOrder = append(c.recipeOrder, rec.ID)
	}

	return c, nil
}

// Resource returns the resource with the given id
func (c *Catalog) Resource(id string) (Resource, bool) {
	r, ok := c.resources[id]
	return r, ok
}

// Recipe returns the recipe with the given id
func (c *Catalog) Recipe(id string) (Recipe, bool) {
	r, ok := c.recipes[id]
	return r, ok
}

// Resources returns all resources in definition order
func (c *Catalog) Resources() []Resource {
	out := make([]Resource, 0, len(c.resourceOrder))
	for _, id := range c.resourceOrder {
		out = append(out, c.resources[id])
	}
	return out
}

// ResourceIDs returns all resource ids in definition order
func (c *Catalog) ResourceIDs() []string {
	out := make([]string, len(c.resourceOrder))
	copy(out, c.resourceOrder)
	return out
}

// Recipes returns all recipes in definition order
func (c *Catalog) Recipes() []Recipe {
	out := make([]Recipe, 0, len(c.recipeOrder))
	for _, id := range c.recipeOrder {
		out = append(out, c.recipes[id])
	}
	return out
}

// RecipesForMachineType returns the recipes runnable on the given machine type
func (c *Catalog) RecipesForMachineType(t MachineType) []Recipe {
	var out []Recipe
	for _, id := range c.recipeOrder {
		if c.recipes[id].MachineType == t {
			out = append(out, c.recipes[id])
		}
	}
	return out
}
