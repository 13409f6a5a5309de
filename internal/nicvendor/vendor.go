package nicvendor

import (
	"encoding/hex"
	"strings"

	"github.com/google/gopacket/macs"
)

// Vendor is a NIC manufacturer whose MAC address prefix is used for generated addresses.
type Vendor int

const (
	Intel Vendor = iota
	Foxconn
	HewlettPackard
	Cisco
	Amd
)

type vendorInfo struct {
	name   string
	prefix string
}

var vendors = [...]vendorInfo{
	Intel:          {name: "Intel", prefix: "00:1b:77"},
	Foxconn:        {name: "Foxconn", prefix: "00:01:6c"},
	HewlettPackard: {name: "HP", prefix: "00:1b:78"},
	Cisco:          {name: "Cisco", prefix: "00:10:29"},
	Amd:            {name: "AMD", prefix: "00:0c:87"},
}

// Source is the randomness a vendor pick draws from. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// All returns every known vendor in declaration order.
func All() []Vendor {
	all := make([]Vendor, len(vendors))
	for i := range vendors {
		all[i] = Vendor(i)
	}
	return all
}

// Pick chooses a vendor uniformly at random.
func Pick(rng Source) Vendor {
	return Vendor(rng.IntN(len(vendors)))
}

func (v Vendor) valid() bool {
	return v >= 0 && int(v) < len(vendors)
}

// Prefix returns the three colon separated octets identifying the vendor.
func (v Vendor) Prefix() string {
	if !v.valid() {
		return ""
	}
	return vendors[v].prefix
}

func (v Vendor) String() string {
	if !v.valid() {
		return "Unknown"
	}
	return vendors[v].name
}

// Organization returns the organization the prefix is registered to in gopacket's
// OUI table, or an empty string when the prefix is not listed there.
func (v Vendor) Organization() string {
	raw, err := hex.DecodeString(strings.ReplaceAll(v.Prefix(), ":", ""))
	if err != nil || len(raw) != 3 {
		return ""
	}
	var oui [3]byte
	copy(oui[:], raw)
	return macs.ValidMACPrefixMap[oui]
}
