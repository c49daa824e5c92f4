package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"luxeroom/internal/domains/staff/model"
)

func TestDirectory(t *testing.T) {
	staff := model.Directory()

	assert.Len(t, staff, 10)

	for _, member := range staff {
		assert.NotEmpty(t, member.ID)
		assert.NotEmpty(t, member.Name)
		assert.NotEmpty(t, member.PinHash)
	}
}

func TestFindByPin(t *testing.T) {
	directory := model.Directory()

	staff, found := model.FindByPin(directory, "8291")

	assert.True(t, found)
	assert.Equal(t, "s1", staff.ID)
	assert.Equal(t, "Bestey", staff.Name)
}

func TestFindByPinUnknown(t *testing.T) {
	directory := model.Directory()

	_, found := model.FindByPin(directory, "0000")

	assert.False(t, found)
}

func TestFindByID(t *testing.T) {
	directory := model.Directory()

	staff, found := model.FindByID(directory, "s10")
	assert.True(t, found)
	assert.Equal(t, "Ibbe", staff.Name)

	_, found = model.FindByID(directory, "s99")
	assert.False(t, found)
}
