package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gin's binding validator reads the "binding" struct tag
type addItemPayload struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,quantity"`
	Rating    int    `json:"rating" binding:"omitempty,rating"`
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(addItemPayload{Quantity: 0, Rating: 9})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["productId"])
	assert.Equal(t, "is required", details["quantity"])
	assert.Equal(t, "must be between 1 and 5", details["rating"])
}

func TestToDetailsQuantityFloor(t *testing.T) {
	Init()
	v := binding.Validator.Engine().(*validator.Validate)

	err := v.Struct(addItemPayload{ProductID: "p", Quantity: -2})
	require.Error(t, err)
	details := ToDetails(err)
	assert.Equal(t, "must be at least 1", details["quantity"])
}

func TestToDetailsNonValidationError(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("boom")))
}
