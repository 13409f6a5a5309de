package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinux_Build(t *testing.T) {
	got := Linux{}.Build("eth0", "00:1b:77:12:34:56")
	assert.Equal(t, []string{"ip", "link", "set", "dev", "eth0", "addr", "00:1b:77:12:34:56"}, got)
}

func TestUnix_Build(t *testing.T) {
	got := Unix{}.Build("en0", "00:10:29:00:11:22")
	assert.Equal(t, []string{"ifconfig", "en0", "ether", "00:10:29:00:11:22"}, got)
}

func TestForOS(t *testing.T) {
	tests := []struct {
		goos string
		want Factory
	}{
		{"linux", Linux{}},
		{"darwin", Unix{}},
		{"freebsd", Unix{}},
		{"openbsd", Unix{}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.IsType(t, tt.want, ForOS(tt.goos))
		})
	}
}
