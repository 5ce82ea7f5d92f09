package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moonhub/inventory-hub/internal/domain/entity"
)

func TestValidMovementType(t *testing.T) {
	assert.True(t, entity.ValidMovementType(entity.MovementTypeIn))
	assert.True(t, entity.ValidMovementType(entity.MovementTypeOut))
	assert.True(t, entity.ValidMovementType(entity.MovementTypeAdjustment))
	assert.False(t, entity.ValidMovementType("TRANSFER"))
	assert.False(t, entity.ValidMovementType("in"))
	assert.False(t, entity.ValidMovementType(""))
}

func TestSignedQuantity(t *testing.T) {
	assert.Equal(t, 5, entity.SignedQuantity(entity.MovementTypeIn, 5))
	assert.Equal(t, -5, entity.SignedQuantity(entity.MovementTypeOut, 5))
	// ADJUSTMENT is always additive, never a delta correction
	assert.Equal(t, 5, entity.SignedQuantity(entity.MovementTypeAdjustment, 5))
}
