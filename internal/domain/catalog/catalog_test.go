package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoquest/factoquest-go/internal/domain/catalog"
)

func TestNewCatalog_RejectsRecipeWithUnknownResource(t *testing.T) {
	// Arrange
	resources := []catalog.Resource{{ID: "iron_ore", Name: "Iron Ore"}}
	recipes := []catalog.Recipe{{
		ID:          "smelt",
		Name:        "Smelt",
		Inputs:      []catalog.Stack{{ResourceID: "unobtainium", Quantity: 1}},
		Outputs:     []catalog.Stack{{ResourceID: "iron_ore", Quantity: 1}},
		Duration:    1,
		MachineType: catalog.MachineTypeFurnace,
	}}

	// Act
	_, err := catalog.NewCatalog(resources, recipes)

	// Assert
	assert.ErrorIs(t, err, catalog.ErrUnknownResource)
}

func TestNewCatalog_RejectsMineRecipeWithInputs(t *testing.T) {
	// Arrange
	resources := []catalog.Resource{{ID: "iron_ore", Name: "Iron Ore"}}
	recipes := []catalog.Recipe{{
		ID:          "bad_mine",
		Name:        "Bad Mine",
		Inputs:      []catalog.Stack{{ResourceID: "iron_ore", Quantity: 1}},
		Outputs:     []catalog.Stack{{ResourceID: "iron_ore", Quantity: 1}},
		Duration:    1,
		MachineType: catalog.MachineTypeMine,
	}}

	// Act
	_, err := catalog.NewCatalog(resources, recipes)

	// Assert
	assert.ErrorIs(t, err, catalog.ErrMineWithInputs)
}

func TestNewCatalog_RejectsNonPositiveDuration(t *testing.T) {
	// Arrange
	resources := []catalog.Resource{{ID: "iron_ore", Name: "Iron Ore"}}
	recipes := []catalog.Recipe{{
		ID:          "instant",
		Name:        "Instant",
		Outputs:     []catalog.Stack{{ResourceID: "iron_ore", Quantity: 1}},
		Duration:    0,
		MachineType: catalog.MachineTypeMine,
	}}

	// Act
	_, err := catalog.NewCatalog(resources, recipes)

	// Assert
	assert.ErrorIs(t, err, catalog.ErrInvalidDuration)
}

func TestDefaultCatalog_IsInternallyConsistent(t *testing.T) {
	// Act
	cat := catalog.Default()

	// Assert - every recipe resolves and respects its machine type
	require.NotEmpty(t, cat.Recipes())
	for _, recipe := range cat.Recipes() {
		require.NoError(t, recipe.Validate())
		for _, stack := range recipe.Outputs {
			_, ok := cat.Resource(stack.ResourceID)
			assert.True(t, ok, "recipe %s outputs unknown resource %s", recipe.ID, stack.ResourceID)
		}
	}
}

func TestRecipesForMachineType_FiltersByType(t *testing.T) {
	// Arrange
	cat := catalog.Default()

	// Act
	mineRecipes := cat.RecipesForMachineType(catalog.MachineTypeMine)

	// Assert
	require.NotEmpty(t, mineRecipes)
	for _, r := range mineRecipes {
		assert.True(t, r.IsMine())
		assert.Empty(t, r.Inputs)
	}
}
