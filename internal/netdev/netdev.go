package netdev

import (
	"errors"
	"net"
	"os"
)

// ErrNotFound is returned by Lookup when no interface has the given name.
var ErrNotFound = errors.New("network interface not found")

// Device is a network interface as reported by the OS.
type Device struct {
	Index        int
	Name         string
	MTU          int
	HardwareAddr net.HardwareAddr
}

// isMissingInterface reports whether err is a by-name lookup failure from the net
// package rather than a failure to read the interface table.
func isMissingInterface(err error) bool {
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	return !errors.As(opErr.Err, &sysErr)
}
