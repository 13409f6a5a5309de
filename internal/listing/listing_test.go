package listing

import (
	"bytes"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"rotatemac/internal/netdev"
	"rotatemac/internal/nicvendor"
)

func TestVendors(t *testing.T) {
	var out bytes.Buffer
	Vendors(&out)

	for _, v := range nicvendor.All() {
		assert.Contains(t, out.String(), v.String())
		assert.Contains(t, out.String(), v.Prefix())
	}
}

func TestInterfaces(t *testing.T) {
	hw, err := net.ParseMAC("00:1b:77:37:05:81")
	assert.NoError(t, err)

	var out bytes.Buffer
	Interfaces(&out, []netdev.Device{
		{Index: 1, Name: "lo", MTU: 65536},
		{Index: 2, Name: "eth0", MTU: 1500, HardwareAddr: hw},
	})

	assert.Contains(t, out.String(), "eth0")
	assert.Contains(t, out.String(), "1500")
	assert.Contains(t, out.String(), "00:1b:77:37:05:81")
}
