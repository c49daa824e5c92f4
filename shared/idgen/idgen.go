package idgen

//go:generate go run go.uber.org/mock/mockgen -source=./idgen.go -destination=./mocks/idgen_mock.go -package=mocks

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out unique entity ids. The production implementation is
// UUID-backed; tests inject a sequential one for deterministic output.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

func New() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.New().String()
}

// Sequential is a deterministic Generator for tests.
type Sequential struct {
	prefix  string
	counter atomic.Int64
}

func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

func (s *Sequential) NewID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.counter.Add(1))
}
