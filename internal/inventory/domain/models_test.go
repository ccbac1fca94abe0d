package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayOrder(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "waffles", IsActive: false},
		{ID: 2, Name: "Tea", IsActive: true},
		{ID: 3, Name: "apple pie", IsActive: false},
		{ID: 4, Name: "Cake", IsActive: true},
	}

	sorted := DisplayOrder(items)

	var names []string
	for _, item := range sorted {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Cake", "Tea", "apple pie", "waffles"}, names)

	// Input order is untouched.
	assert.Equal(t, "waffles", items[0].Name)
}
