package compute

import (
	"fmt"
	"log/slog"
)

// Config parameterizes one SAXPY run.
type Config struct {
	// N is the element count of the three vectors.
	N int
	// A is the scalar multiplier.
	A float32
	// DeviceType filters device resolution; the first match wins.
	DeviceType DeviceType
	// Profiling enables device-side kernel timing.
	Profiling bool
	// BuildOptions is passed verbatim to the program build.
	BuildOptions string
	// X and Y override the input vectors. When nil the reference inputs
	// are used: x[i]=1.0, y[i]=1.0+i.
	X []float32
	Y []float32
}

// DefaultConfig reproduces the reference run: N=1024, a=300, GPU device,
// profiling enabled.
func DefaultConfig() Config {
	return Config{
		N:          1024,
		A:          300.0,
		DeviceType: DeviceTypeGPU,
		Profiling:  true,
	}
}

func (c *Config) validate() error {
	if c.N <= 0 {
		return fmt.Errorf("element count must be positive, got %d", c.N)
	}
	if c.X != nil && len(c.X) != c.N {
		return fmt.Errorf("len(x)=%d does not match n=%d", len(c.X), c.N)
	}
	if c.Y != nil && len(c.Y) != c.N {
		return fmt.Errorf("len(y)=%d does not match n=%d", len(c.Y), c.N)
	}
	return nil
}

func (c *Config) inputs() (x, y []float32) {
	x, y = c.X, c.Y
	if x == nil {
		x = make([]float32, c.N)
		for i := range x {
			x[i] = 1.0
		}
	}
	if y == nil {
		y = make([]float32, c.N)
		for i := range y {
			y[i] = 1.0 + float32(i)
		}
	}
	return x, y
}

// Result carries the output vector and run metadata.
type Result struct {
	Out    []float32
	Device DeviceInfo

	// QueueSize is best-effort; QueueSizeKnown is false when the backend
	// does not support the query.
	QueueSize      uint
	QueueSizeKnown bool

	// KernelNanos is the device-side kernel duration. Valid only when
	// the run was profiled.
	KernelNanos uint64
	Profiled    bool
}

// Run executes the full orchestration sequence against the backend:
// device resolution, context and queue setup, program build, data staging,
// dispatch and retrieval. Any backend failure aborts the run; the returned
// error wraps the failing phase's sentinel kind.
func Run(backend Backend, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Phase 1: device resolution, first enumerated match.
	devices, err := backend.Devices(cfg.DeviceType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDeviceFound, err)
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: device type %s", ErrNoDeviceFound, cfg.DeviceType)
	}
	device := devices[0]
	slog.Debug("resolved device",
		"name", device.Info().Name,
		"vendor", device.Info().Vendor,
		"type", device.Info().Type)

	// Phase 2: context and command queue.
	ctx, err := backend.NewContext(device)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContextCreation, err)
	}
	defer ctx.Close()

	queue, err := ctx.NewQueue(QueueOptions{Profiling: cfg.Profiling})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueueCreation, err)
	}
	defer queue.Close()

	// Queue size introspection is best-effort; unsupported is not an error.
	queueSize, queueSizeKnown := queue.Size()
	if queueSizeKnown {
		slog.Debug("created queue", "size", queueSize)
	} else {
		slog.Debug("created queue", "size", "unknown")
	}

	// Phase 3: program build and kernel resolution.
	program, err := ctx.BuildProgram(SaxpySource, cfg.BuildOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildFailure, err)
	}
	defer program.Close()

	kernel, err := program.Kernel(SaxpyKernelName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrKernelResolution, SaxpyKernelName, err)
	}
	defer kernel.Close()
	slog.Debug("built program", "kernel", SaxpyKernelName)

	// Phase 4: data staging.
	bufX, err := ctx.NewBuffer(MemReadOnly, cfg.N)
	if err != nil {
		return nil, fmt.Errorf("%w: x: %v", ErrBufferAllocation, err)
	}
	defer bufX.Close()

	bufY, err := ctx.NewBuffer(MemReadOnly, cfg.N)
	if err != nil {
		return nil, fmt.Errorf("%w: y: %v", ErrBufferAllocation, err)
	}
	defer bufY.Close()

	bufZ, err := ctx.NewBuffer(MemWriteOnly, cfg.N)
	if err != nil {
		return nil, fmt.Errorf("%w: z: %v", ErrBufferAllocation, err)
	}
	defer bufZ.Close()

	// The dependency DAG of the run: (write x, write y) -> kernel -> read.
	var graph eventGraph
	writeX := graph.addTransfer("write x")
	writeY := graph.addTransfer("write y")
	dispatch := graph.addDispatch(SaxpyKernelName, writeX, writeY)
	read := graph.addTransfer("read z", dispatch)
	defer graph.closeEvents()

	x, y := cfg.inputs()

	if err := enqueueWrite(queue, bufX, x, writeX); err != nil {
		return nil, err
	}
	if err := enqueueWrite(queue, bufY, y, writeY); err != nil {
		return nil, err
	}

	// Phase 5: dispatch and retrieval. Argument order is the kernel's
	// positional contract: z, x, y, a.
	if err := kernel.SetArgs(bufZ, bufX, bufY, cfg.A); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKernelLaunch, err)
	}

	dispatchWait, err := dispatch.waitList()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKernelLaunch, err)
	}
	kernelEvent, err := queue.EnqueueKernel(kernel, cfg.N, dispatchWait)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKernelLaunch, err)
	}
	if err := dispatch.bind(kernelEvent); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKernelLaunch, err)
	}

	out := make([]float32, cfg.N)
	readWait, err := read.waitList()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransfer, err)
	}
	readEvent, err := queue.EnqueueRead(bufZ, out, readWait)
	if err != nil {
		return nil, fmt.Errorf("%w: read z: %v", ErrTransfer, err)
	}
	if err := read.bind(readEvent); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransfer, err)
	}

	// The single suspension point: out must not be touched before this
	// wait returns.
	if err := readEvent.Wait(); err != nil {
		return nil, fmt.Errorf("%w: waiting for read: %v", ErrTransfer, err)
	}

	result := &Result{
		Out:            out,
		Device:         device.Info(),
		QueueSize:      queueSize,
		QueueSizeKnown: queueSizeKnown,
	}

	if cfg.Profiling {
		start, err := kernelEvent.ProfilingStart()
		if err != nil {
			return nil, err
		}
		end, err := kernelEvent.ProfilingEnd()
		if err != nil {
			return nil, err
		}
		result.KernelNanos = end - start
		result.Profiled = true
		slog.Debug("kernel profiled", "start_ns", start, "end_ns", end)
	}

	return result, nil
}

func enqueueWrite(queue Queue, dst Buffer, src []float32, node *eventNode) error {
	wait, err := node.waitList()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransfer, node.label, err)
	}
	ev, err := queue.EnqueueWrite(dst, src, wait)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransfer, node.label, err)
	}
	if err := node.bind(ev); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransfer, node.label, err)
	}
	return nil
}
