package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetModel(t *testing.T) {
	ctor, err := GetModel("plsa")

	assert.NoError(t, err)
	assert.NotNil(t, ctor)
}

func TestGetModelUnknown(t *testing.T) {
	_, err := GetModel("nosuchmodel")

	assert.Error(t, err)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "initialized", StateInitialized.String())
	assert.Equal(t, "iterating", StateIterating.String())
	assert.Equal(t, "converged", StateConverged.String())
	assert.Equal(t, "budget exhausted", StateBudgetExhausted.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(42).String())
}
