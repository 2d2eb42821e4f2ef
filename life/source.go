package life

import "math/rand"

// BoolSource produces unbiased booleans on demand. Random construction
// draws one value per cell; nothing else in the package consumes
// randomness.
type BoolSource interface {
	Bool() bool
}

// NewSource returns a BoolSource backed by its own math/rand generator
// seeded with seed. Two sources with the same seed produce the same
// sequence, which makes randomly constructed boards reproducible.
func NewSource(seed int64) BoolSource {
	return &seededSource{r: rand.New(rand.NewSource(seed))}
}

type seededSource struct {
	r *rand.Rand
}

func (s *seededSource) Bool() bool {
	return s.r.Intn(2) == 1
}

// globalSource draws from the shared math/rand generator.
type globalSource struct{}

func (globalSource) Bool() bool {
	return rand.Intn(2) == 1
}
