package listing

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"rotatemac/internal/netdev"
	"rotatemac/internal/nicvendor"
)

const unregistered = "(not in OUI table)"

// Vendors writes a table of the vendors addresses are generated for.
func Vendors(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("NIC vendors")
	t.AppendHeader(table.Row{"#", "Vendor", "Prefix", "Registered organization"})

	for i, v := range nicvendor.All() {
		org := v.Organization()
		if org == "" {
			org = unregistered
		}
		t.AppendRow(table.Row{i + 1, v, v.Prefix(), org})
	}
	t.Render()
}

// Interfaces writes a table of network interfaces.
func Interfaces(w io.Writer, devices []netdev.Device) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Network interfaces")
	t.AppendHeader(table.Row{"#", "Name", "Index", "MTU", "MAC Address"})

	for i, d := range devices {
		t.AppendRow(table.Row{i + 1, d.Name, d.Index, d.MTU, d.HardwareAddr.String()})
	}
	t.Render()
}
