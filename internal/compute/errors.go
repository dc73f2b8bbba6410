package compute

import "errors"

var (
	// ErrNoDeviceFound is returned when device resolution matches nothing.
	ErrNoDeviceFound = errors.New("clsaxpy: no matching compute device found")

	// ErrContextCreation is returned when the backend fails to create a context.
	ErrContextCreation = errors.New("clsaxpy: context creation failed")

	// ErrQueueCreation is returned when the backend fails to create a command queue.
	ErrQueueCreation = errors.New("clsaxpy: command queue creation failed")

	// ErrBuildFailure is returned when kernel source fails to compile or link.
	// The wrapped detail carries the backend build log when available.
	ErrBuildFailure = errors.New("clsaxpy: program build failed")

	// ErrKernelResolution is returned when the named entry point is absent
	// from the compiled program.
	ErrKernelResolution = errors.New("clsaxpy: kernel entry point not found")

	// ErrBufferAllocation is returned when a device buffer cannot be allocated.
	ErrBufferAllocation = errors.New("clsaxpy: buffer allocation failed")

	// ErrTransfer is returned when a host/device transfer cannot be enqueued.
	ErrTransfer = errors.New("clsaxpy: buffer transfer failed")

	// ErrKernelLaunch is returned when argument binding or dispatch fails.
	ErrKernelLaunch = errors.New("clsaxpy: kernel launch failed")

	// ErrProfilingUnavailable is returned when event timestamps are queried
	// on a queue created without profiling enabled.
	ErrProfilingUnavailable = errors.New("clsaxpy: profiling not enabled on queue")

	// ErrUnknownBackend is returned when the name does not match a known backend.
	ErrUnknownBackend = errors.New("clsaxpy: unknown compute backend")

	// ErrBackendUnavailable indicates the backend is known but not usable
	// on this host or in this build.
	ErrBackendUnavailable = errors.New("clsaxpy: compute backend unavailable")

	// ErrNotBuilt indicates the binary was built without OpenCL support.
	ErrNotBuilt = errors.New("clsaxpy: opencl support requires building with '-tags gpu'")
)
