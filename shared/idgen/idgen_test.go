package idgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"luxeroom/shared/idgen"
)

func TestUUIDGeneratorUnique(t *testing.T) {
	gen := idgen.New()

	first := gen.NewID()
	second := gen.NewID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("bk")

	assert.Equal(t, "bk-1", gen.NewID())
	assert.Equal(t, "bk-2", gen.NewID())
}
