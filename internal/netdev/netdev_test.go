package netdev

import (
	"errors"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_IncludesLoopback(t *testing.T) {
	devices, err := List()
	if err != nil {
		t.Skipf("interfaces not available: %v", err)
	}
	require.NotEmpty(t, devices)

	found := false
	for _, d := range devices {
		if d.Name == "lo" || d.Name == "lo0" {
			found = true
		}
	}
	assert.True(t, found, "expected a loopback interface in %v", devices)
}

func TestLookup_Missing(t *testing.T) {
	_, err := Lookup("rotatemac-missing0")
	require.Error(t, err)
	if !errors.Is(err, ErrNotFound) {
		t.Skipf("interface lookup unavailable: %v", err)
	}
}

func TestIsMissingInterface(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "no such interface",
			err:  &net.OpError{Op: "route", Net: "ip+net", Err: errors.New("no such network interface")},
			want: true,
		},
		{
			name: "invalid name",
			err:  &net.OpError{Op: "route", Net: "ip+net", Err: errors.New("invalid network interface name")},
			want: true,
		},
		{
			name: "interface table unreadable",
			err:  &net.OpError{Op: "route", Net: "ip+net", Err: os.NewSyscallError("routerib", syscall.EPERM)},
			want: false,
		},
		{
			name: "not from the net package",
			err:  errors.New("no such network interface"),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isMissingInterface(tt.err))
		})
	}
}

func TestLookup_Loopback(t *testing.T) {
	devices, err := List()
	if err != nil || len(devices) == 0 {
		t.Skip("interfaces not available")
	}

	got, err := Lookup(devices[0].Name)
	require.NoError(t, err)
	assert.Equal(t, devices[0].Name, got.Name)
	assert.Equal(t, devices[0].Index, got.Index)
}
