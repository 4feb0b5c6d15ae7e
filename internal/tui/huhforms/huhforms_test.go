package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateLaneForm_DefaultsColor(t *testing.T) {
	v := &LaneFormValues{}
	form := CreateLaneForm(v)
	assert.NotNil(t, form)
	assert.Equal(t, "#7D56F4", v.Color)

	kept := &LaneFormValues{Color: "#000000"}
	CreateLaneForm(kept)
	assert.Equal(t, "#000000", kept.Color)
}

func TestCreateItemForm(t *testing.T) {
	assert.NotNil(t, CreateItemForm(&ItemFormValues{}))
}

func TestKeyMapWithShiftEnter(t *testing.T) {
	km := KeyMapWithShiftEnter()
	assert.Contains(t, km.Text.NewLine.Keys(), "shift+enter")
}
