package compute

// DeviceType describes the class of a compute device.
type DeviceType string

const (
	DeviceTypeGPU         DeviceType = "GPU"
	DeviceTypeCPU         DeviceType = "CPU"
	DeviceTypeAccelerator DeviceType = "Accelerator"
	DeviceTypeDefault     DeviceType = "Default"
	DeviceTypeAll         DeviceType = "All"
	DeviceTypeUnknown     DeviceType = "Unknown"
)

// Matches reports whether a device of type dt satisfies the filter.
func (dt DeviceType) Matches(filter DeviceType) bool {
	if filter == DeviceTypeAll || filter == "" {
		return true
	}
	return dt == filter
}

// DeviceInfo captures metadata about a compute device.
type DeviceInfo struct {
	Name            string
	Vendor          string
	Version         string
	Type            DeviceType
	MaxComputeUnits uint32
}

// PlatformInfo captures metadata about a platform and its devices.
type PlatformInfo struct {
	Name    string
	Vendor  string
	Version string
	Devices []DeviceInfo
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}

// MemMode is the device-side access mode of a buffer.
type MemMode uint8

const (
	// MemReadOnly marks a buffer the kernel only reads.
	MemReadOnly MemMode = iota
	// MemWriteOnly marks a buffer the kernel only writes.
	MemWriteOnly
)

func (m MemMode) String() string {
	switch m {
	case MemReadOnly:
		return "read-only"
	case MemWriteOnly:
		return "write-only"
	default:
		return "unknown"
	}
}

// QueueOptions controls command queue creation.
type QueueOptions struct {
	// Profiling enables device-side start/end timestamps on events
	// produced by this queue.
	Profiling bool
}
