package command

// Factory builds the argument list of the OS command that sets a device's MAC address.
type Factory interface {
	Build(deviceName, newAddress string) []string
}

// Linux sets addresses with iproute2.
type Linux struct{}

func (Linux) Build(deviceName, newAddress string) []string {
	return []string{"ip", "link", "set", "dev", deviceName, "addr", newAddress}
}

// Unix sets addresses with BSD ifconfig, as found on macOS.
type Unix struct{}

func (Unix) Build(deviceName, newAddress string) []string {
	return []string{"ifconfig", deviceName, "ether", newAddress}
}

// ForOS returns the factory for the given runtime.GOOS value.
func ForOS(goos string) Factory {
	if goos == "linux" {
		return Linux{}
	}
	return Unix{}
}
