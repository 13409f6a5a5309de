package macaddr

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"rotatemac/internal/nicvendor"
)

const (
	// suffixGroups is the number of generated groups following the vendor prefix.
	suffixGroups = 3
	// digitBound is exclusive: every generated digit is in 0-8.
	digitBound = 9
)

// MacAddress is a generated address together with the vendor its prefix belongs to.
//
// The suffix groups are pairs of decimal digits rather than hex octets, e.g.
// "00:1b:77:37:05:81". Tools that parse addresses as hex accept them.
type MacAddress struct {
	Vendor  nicvendor.Vendor
	Address string
}

func (m MacAddress) String() string {
	return m.Address
}

// Generator produces random vendor-prefixed addresses.
type Generator struct {
	rng nicvendor.Source
}

// NewGenerator returns a generator drawing from rng, or from the global
// math/rand/v2 source when rng is nil.
func NewGenerator(rng nicvendor.Source) *Generator {
	if rng == nil {
		rng = globalSource{}
	}
	return &Generator{rng: rng}
}

// Generate picks a vendor and appends three random digit pairs to its prefix.
func (g *Generator) Generate() MacAddress {
	vendor := nicvendor.Pick(g.rng)

	groups := make([]string, suffixGroups)
	for i := range groups {
		first := g.rng.IntN(digitBound)
		second := g.rng.IntN(digitBound)
		groups[i] = strconv.Itoa(first) + strconv.Itoa(second)
	}

	return MacAddress{
		Vendor:  vendor,
		Address: vendor.Prefix() + ":" + strings.Join(groups, ":"),
	}
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}
