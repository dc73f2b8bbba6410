package compute

import (
	"fmt"
	"strings"
)

// Backend is implemented by compute backends (OpenCL, mock).
// It is responsible for device discovery and context creation.
type Backend interface {
	Info() BackendInfo
	Available() bool
	// Platforms returns discovered platforms with their devices.
	Platforms() ([]PlatformInfo, error)
	// Devices returns all devices matching the filter, in enumeration order.
	Devices(filter DeviceType) ([]Device, error)
	NewContext(device Device) (Context, error)
}

// Device is an opaque handle to one compute device.
type Device interface {
	Info() DeviceInfo
}

// Context owns the device association; queues, programs and buffers are
// created against exactly one context.
type Context interface {
	Device() Device
	NewQueue(opts QueueOptions) (Queue, error)
	// BuildProgram compiles kernel source text for this context's device.
	BuildProgram(source, options string) (Program, error)
	// NewBuffer allocates a device buffer of elems float32 values.
	NewBuffer(mode MemMode, elems int) (Buffer, error)
	Close() error
}

// Program is a compiled executable unit.
type Program interface {
	// Kernel resolves a named entry point into a kernel handle.
	Kernel(name string) (Kernel, error)
	Close() error
}

// Kernel names one entry point and binds positional arguments before dispatch.
type Kernel interface {
	Name() string
	// SetArgs binds positional arguments. Supported argument types are
	// Buffer and float32.
	SetArgs(args ...any) error
	Close() error
}

// Buffer is a device-resident memory region. Host and device copies are
// synchronized only via explicit enqueue operations on a Queue.
type Buffer interface {
	Len() int
	Mode() MemMode
	Close() error
}

// Queue is an ordered submission channel to the device. Enqueue calls
// return immediately; execution order is defined by the wait-lists, not
// by call order.
type Queue interface {
	// Size reports the queue size when the backend supports querying it.
	// Unsupported or failing queries report ok=false, never an error.
	Size() (uint, bool)
	// EnqueueWrite enqueues a non-blocking host-to-device copy of src.
	EnqueueWrite(dst Buffer, src []float32, waitList []Event) (Event, error)
	// EnqueueKernel enqueues a one-dimensional range execution of
	// globalSize work items with a runtime-default work-group size.
	EnqueueKernel(k Kernel, globalSize int, waitList []Event) (Event, error)
	// EnqueueRead enqueues a non-blocking device-to-host copy into dst.
	// dst must not be read until the returned event completes.
	EnqueueRead(src Buffer, dst []float32, waitList []Event) (Event, error)
	Close() error
}

// Event tracks one enqueued operation's completion state.
type Event interface {
	// Wait blocks until the operation completes and returns its error.
	Wait() error
	// ProfilingStart returns the device-side start timestamp in nanoseconds.
	// Valid only on events from a profiling-enabled queue.
	ProfilingStart() (uint64, error)
	// ProfilingEnd returns the device-side end timestamp in nanoseconds.
	ProfilingEnd() (uint64, error)
	Close() error
}

// BackendName identifies a backend implementation in the factory.
type BackendName string

const (
	BackendMock   BackendName = "mock"
	BackendOpenCL BackendName = "opencl"
)

// NormalizeBackendName maps arbitrary user input to a canonical backend name.
func NormalizeBackendName(name string) BackendName {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cl", "gpu", "opencl":
		return BackendOpenCL
	case "mock", "cpu":
		return BackendMock
	default:
		return BackendName(name)
	}
}

// SupportedBackends returns the list of backends understood by the factory.
func SupportedBackends() []BackendName {
	return []BackendName{BackendOpenCL, BackendMock}
}

// NewBackend constructs the requested backend.
func NewBackend(name string) (Backend, error) {
	switch NormalizeBackendName(name) {
	case BackendMock:
		return NewMockBackend(), nil
	case BackendOpenCL:
		return newOpenCLBackend()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}
}
