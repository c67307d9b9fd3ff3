package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

// Randomness in fixtures is seeded from ginkgo so a failing run can be
// replayed with the same --seed.
var (
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
	Rand   = rand.New(Source)
	Faker  = faker.NewWithSeed(Source)
)
