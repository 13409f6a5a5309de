//go:build !linux

package netdev

import (
	"fmt"
	"net"
)

// Lookup finds a single interface by name.
func Lookup(name string) (Device, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		if isMissingInterface(err) {
			return Device{}, fmt.Errorf("%s: %w: %w", name, ErrNotFound, err)
		}
		return Device{}, fmt.Errorf("failed to look up %s: %w", name, err)
	}
	return fromInterface(*iface), nil
}

// List returns every interface known to the system.
func List() ([]Device, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}
	devices := make([]Device, 0, len(ifaces))
	for _, iface := range ifaces {
		devices = append(devices, fromInterface(iface))
	}
	return devices, nil
}

func fromInterface(iface net.Interface) Device {
	return Device{
		Index:        iface.Index,
		Name:         iface.Name,
		MTU:          iface.MTU,
		HardwareAddr: iface.HardwareAddr,
	}
}
