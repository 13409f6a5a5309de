package netdev

import (
	"errors"
	"fmt"

	"github.com/vishvananda/netlink"
)

// Lookup finds a single interface by name over netlink.
func Lookup(name string) (Device, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		var notFound netlink.LinkNotFoundError
		if errors.As(err, &notFound) {
			return Device{}, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return Device{}, fmt.Errorf("failed to look up %s: %w", name, err)
	}
	return fromAttrs(link.Attrs()), nil
}

// List returns every interface known to the kernel.
func List() ([]Device, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	devices := make([]Device, 0, len(links))
	for _, link := range links {
		devices = append(devices, fromAttrs(link.Attrs()))
	}
	return devices, nil
}

func fromAttrs(attrs *netlink.LinkAttrs) Device {
	return Device{
		Index:        attrs.Index,
		Name:         attrs.Name,
		MTU:          attrs.MTU,
		HardwareAddr: attrs.HardwareAddr,
	}
}
