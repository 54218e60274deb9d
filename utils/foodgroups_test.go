package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoodGroupsIn(t *testing.T) {
	found := FoodGroupsIn("grilled chicken salad with olive oil")
	assert.True(t, found["proteins"])
	assert.True(t, found["vegetables"])
	assert.True(t, found["healthy fats"])
	assert.False(t, found["dairy"])
	assert.False(t, found["fruits"])

	found = FoodGroupsIn("Banana Oatmeal with Milk")
	assert.True(t, found["fruits"])
	assert.True(t, found["grains"])
	assert.True(t, found["dairy"])

	assert.Empty(t, FoodGroupsIn("black coffee"))
	assert.Empty(t, FoodGroupsIn(""))
}

func TestFoodGroupNames(t *testing.T) {
	names := FoodGroupNames()
	assert.Len(t, names, 6)
	assert.Equal(t, "fruits", names[0])

	// Callers get a copy, not the backing slice.
	names[0] = "mutated"
	assert.Equal(t, "fruits", FoodGroupNames()[0])
}
