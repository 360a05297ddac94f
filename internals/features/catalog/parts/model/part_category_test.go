package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"rear_bumper", "rear-bumpers", "REAR_BUMPER"} {
		c, ok := ParseCategory(in)
		assert.True(t, ok, in)
		assert.Equal(t, CategoryRearBumper, c, in)
	}
	_, ok := ParseCategory("engine")
	assert.False(t, ok)
}

func TestCategoryNames(t *testing.T) {
	assert.Len(t, Categories, 7)
	assert.Equal(t, "side-skirts", CategorySideSkirt.Slug())
	assert.Equal(t, "discs_id", CategoryDiscs.Column())
}
