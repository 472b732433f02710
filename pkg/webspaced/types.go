package webspaced

// ImageAlias is a human-friendly name for an image.
type ImageAlias struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Image is a summary of an image webspaces can be created from.
type Image struct {
	Aliases []ImageAlias `json:"aliases"`
	// Fingerprint is the SHA-256 hash of the image.
	Fingerprint string            `json:"fingerprint"`
	Properties  map[string]string `json:"properties"`
	// Size in bytes
	Size int64 `json:"size"`
}

// AliasNames returns the names of the image's aliases.
func (i *Image) AliasNames() []string {
	names := make([]string, 0, len(i.Aliases))
	for _, a := range i.Aliases {
		names = append(names, a.Name)
	}
	return names
}

// Description returns the image's description property, if set.
func (i *Image) Description() (string, bool) {
	d, ok := i.Properties["description"]
	return d, ok
}

// InitRequest is the body of a webspace creation request.
type InitRequest struct {
	// Image fingerprint (or alias) to create the webspace from.
	Image string `json:"image"`
	// Password for the root user. Nil means no password is set.
	Password *string `json:"password,omitempty"`
	// SSHKey is a public key to install in the webspace.
	SSHKey string `json:"sshKey,omitempty"`
}

// Usage describes a webspace's resource usage.
type Usage struct {
	// CPU time in nanoseconds
	CPU   int64            `json:"cpu"`
	Disks map[string]int64 `json:"disks"`
	// Memory usage in bytes
	Memory    int64 `json:"memory"`
	Processes int64 `json:"processes"`
}

// InterfaceCounters holds a network interface's traffic counters.
type InterfaceCounters struct {
	BytesReceived int64 `json:"bytesReceived"`
	BytesSent     int64 `json:"bytesSent"`
}

// InterfaceAddress is an address assigned to a network interface.
type InterfaceAddress struct {
	Family  string `json:"family"`
	Address string `json:"address"`
	Netmask string `json:"netmask"`
	Scope   string `json:"scope,omitempty"`
}

// IsIPv6 reports whether the address belongs to the inet6 family.
func (a InterfaceAddress) IsIPv6() bool {
	return a.Family == "inet6"
}

// NetworkInterface describes one of a webspace's network interfaces.
type NetworkInterface struct {
	MAC       string             `json:"mac"`
	MTU       int                `json:"mtu"`
	State     string             `json:"state"`
	Counters  InterfaceCounters  `json:"counters"`
	Addresses []InterfaceAddress `json:"addresses"`
}

// State is a webspace's run state and resource usage.
type State struct {
	Running bool `json:"running"`
	// Uptime in seconds
	Uptime            float64                     `json:"uptime"`
	Usage             Usage                       `json:"usage"`
	NetworkInterfaces map[string]NetworkInterface `json:"networkInterfaces"`
}

// Config holds a webspace's user-tunable options.
type Config struct {
	// StartupDelay is how long (in seconds) to wait after booting before
	// forwarding requests.
	StartupDelay float64 `json:"startupDelay"`
	HTTPPort     uint16  `json:"httpPort"`
	HTTPSPort    uint16  `json:"httpsPort"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type addPortResponse struct {
	EPort uint16 `json:"ePort"`
}
