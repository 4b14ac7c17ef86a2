package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetInputFlags() {
	offFlag, neighFlag, eleFlag = false, false, false
}

func TestResolveInputRejectsNoMode(t *testing.T) {
	resetInputFlags()
	defer resetInputFlags()
	_, _, err := resolveInput([]string{"mesh.off"})
	assert.Error(t, err)
}

func TestResolveInputRejectsMultipleModes(t *testing.T) {
	resetInputFlags()
	defer resetInputFlags()
	offFlag, neighFlag = true, true
	_, _, err := resolveInput([]string{"mesh.off"})
	assert.Error(t, err)
}

func TestResolveInputOFF(t *testing.T) {
	resetInputFlags()
	defer resetInputFlags()
	offFlag = true
	in, base, err := resolveInput([]string{"square.off"})
	assert.NoError(t, err)
	assert.Equal(t, "off", in.mode)
	assert.Equal(t, "square.off", in.off)
	assert.Equal(t, "square", base)
}

func TestResolveInputNeighRequiresAllThreeFiles(t *testing.T) {
	resetInputFlags()
	defer resetInputFlags()
	neighFlag = true
	_, _, err := resolveInput([]string{"square.node", "square.ele"})
	assert.Error(t, err)

	in, base, err := resolveInput([]string{"square.node", "square.ele", "square.neigh"})
	assert.NoError(t, err)
	assert.Equal(t, "neigh", in.mode)
	assert.Equal(t, "square", base)
}

func TestResolveInputEle(t *testing.T) {
	resetInputFlags()
	defer resetInputFlags()
	eleFlag = true
	in, base, err := resolveInput([]string{"square.node", "square.ele"})
	assert.NoError(t, err)
	assert.Equal(t, "ele", in.mode)
	assert.Equal(t, "square", base)
}
