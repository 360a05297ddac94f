package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	for _, s := range []string{"color", "spoiler", "discs", "restyling", "bumper", "rear_bumper", "side_skirt", "tinting"} {
		slot, ok := ParseSlot(s)
		assert.True(t, ok, s)
		assert.Equal(t, Slot(s), slot)
		assert.NotEmpty(t, slot.Relation(), s)
	}
	for _, s := range []string{"", "engine", "spoilers", "rear-bumpers"} {
		_, ok := ParseSlot(s)
		assert.False(t, ok, s)
	}
}

func TestSlotIDPointsAtColumnField(t *testing.T) {
	var m CustomizationModel
	id := uint(5)
	for _, slot := range Slots {
		ptr := m.SlotID(slot)
		require.NotNil(t, ptr, slot)
		*ptr = &id
	}
	assert.Equal(t, &id, m.ColorID)
	assert.Equal(t, &id, m.RearBumperID)
	assert.Equal(t, "rear_bumper_id", Slot("rear_bumper").Column())
}
