package compute

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sys/cpu"
)

// MockFaults injects a failure into one backend operation. Each non-nil
// field makes the corresponding call fail with that error.
type MockFaults struct {
	Context  error
	Queue    error
	Build    error
	Alloc    error
	Write    error
	Dispatch error
	Read     error
}

// MockOption configures a MockBackend.
type MockOption func(*MockBackend)

// WithDevices replaces the default device set.
func WithDevices(devices ...DeviceInfo) MockOption {
	return func(b *MockBackend) {
		b.devices = devices
	}
}

// WithFaults installs injected failures.
func WithFaults(f MockFaults) MockOption {
	return func(b *MockBackend) {
		b.faults = f
	}
}

// WithWriteDelay delays every host-to-device write by d before it executes.
// Used to verify that dispatch genuinely waits on its wait-list.
func WithWriteDelay(d time.Duration) MockOption {
	return func(b *MockBackend) {
		b.writeDelay = d
	}
}

// WithQueueSize makes queue-size introspection succeed with the given value.
// By default the mock reports the size as unknown.
func WithQueueSize(size uint) MockOption {
	return func(b *MockBackend) {
		b.queueSize = size
		b.queueSizeKnown = true
	}
}

// MockBackend is a CPU-backed compute backend for development and tests.
// It satisfies the backend interfaces with genuinely asynchronous queue
// semantics: every enqueue returns immediately and executes on its own
// goroutine, ordered only by the wait-list events.
type MockBackend struct {
	devices        []DeviceInfo
	faults         MockFaults
	writeDelay     time.Duration
	queueSize      uint
	queueSizeKnown bool
}

// NewMockBackend returns a mock backend with a single fake GPU device.
func NewMockBackend(opts ...MockOption) *MockBackend {
	b := &MockBackend{
		devices: []DeviceInfo{{
			Name:            "MockGPU",
			Vendor:          "clsaxpy",
			Version:         fmt.Sprintf("mock (%s host)", hostSIMDFeature()),
			Type:            DeviceTypeGPU,
			MaxComputeUnits: uint32(runtime.NumCPU()),
		}},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// hostSIMDFeature reports the widest SIMD extension of the host CPU.
func hostSIMDFeature() string {
	switch {
	case cpu.X86.HasAVX2:
		return "AVX2"
	case cpu.X86.HasSSE42:
		return "SSE4.2"
	case cpu.ARM64.HasASIMD:
		return "NEON"
	default:
		return "scalar"
	}
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock compute backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Platforms() ([]PlatformInfo, error) {
	return []PlatformInfo{{
		Name:    "clsaxpy mock platform",
		Vendor:  "clsaxpy",
		Version: "0.1",
		Devices: b.devices,
	}}, nil
}

func (b *MockBackend) Devices(filter DeviceType) ([]Device, error) {
	var out []Device
	for _, info := range b.devices {
		if info.Type.Matches(filter) {
			out = append(out, &mockDevice{info: info})
		}
	}
	return out, nil
}

func (b *MockBackend) NewContext(device Device) (Context, error) {
	if b.faults.Context != nil {
		return nil, b.faults.Context
	}
	dev, ok := device.(*mockDevice)
	if !ok {
		return nil, fmt.Errorf("device %T does not belong to the mock backend", device)
	}
	return &mockContext{backend: b, device: dev}, nil
}

type mockDevice struct {
	info DeviceInfo
}

func (d *mockDevice) Info() DeviceInfo {
	return d.info
}

type mockContext struct {
	backend *MockBackend
	device  *mockDevice
}

func (c *mockContext) Device() Device {
	return c.device
}

func (c *mockContext) NewQueue(opts QueueOptions) (Queue, error) {
	if c.backend.faults.Queue != nil {
		return nil, c.backend.faults.Queue
	}
	return &mockQueue{backend: c.backend, profiling: opts.Profiling}, nil
}

func (c *mockContext) BuildProgram(source, options string) (Program, error) {
	if c.backend.faults.Build != nil {
		return nil, c.backend.faults.Build
	}
	kernels := parseKernelNames(source)
	if len(kernels) == 0 {
		return nil, fmt.Errorf("source defines no kernels\nbuild log: no kernel declarations found")
	}
	return &mockProgram{kernels: kernels}, nil
}

func (c *mockContext) NewBuffer(mode MemMode, elems int) (Buffer, error) {
	if c.backend.faults.Alloc != nil {
		return nil, c.backend.faults.Alloc
	}
	if elems <= 0 {
		return nil, fmt.Errorf("invalid buffer size %d", elems)
	}
	return &mockBuffer{mode: mode, data: make([]float32, elems)}, nil
}

func (c *mockContext) Close() error {
	return nil
}

// parseKernelNames extracts entry point names from kernel source with a
// lexical scan; the mock does not compile anything.
func parseKernelNames(source string) []string {
	var names []string
	fields := strings.Fields(source)
	for i := 0; i+2 < len(fields); i++ {
		if (fields[i] == "kernel" || fields[i] == "__kernel") && fields[i+1] == "void" {
			name := fields[i+2]
			if cut := strings.IndexByte(name, '('); cut >= 0 {
				name = name[:cut]
			}
			if name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

type mockProgram struct {
	kernels []string
}

func (p *mockProgram) Kernel(name string) (Kernel, error) {
	for _, candidate := range p.kernels {
		if candidate == name {
			return &mockKernel{name: name}, nil
		}
	}
	return nil, fmt.Errorf("program defines %v", p.kernels)
}

func (p *mockProgram) Close() error {
	return nil
}

type mockKernel struct {
	name  string
	z     *mockBuffer
	x     *mockBuffer
	y     *mockBuffer
	a     float32
	bound bool
}

func (k *mockKernel) Name() string {
	return k.name
}

// SetArgs expects the saxpy contract: output buffer, two input buffers,
// scalar. Mismatches surface at dispatch time on real runtimes; the mock
// rejects them here, which the pipeline reports as a launch failure either
// way.
func (k *mockKernel) SetArgs(args ...any) error {
	if len(args) != 4 {
		return fmt.Errorf("kernel %s takes 4 arguments, got %d", k.name, len(args))
	}
	bufs := make([]*mockBuffer, 3)
	for i := 0; i < 3; i++ {
		buf, ok := args[i].(*mockBuffer)
		if !ok {
			return fmt.Errorf("argument %d: want mock buffer, got %T", i, args[i])
		}
		bufs[i] = buf
	}
	a, ok := args[3].(float32)
	if !ok {
		return fmt.Errorf("argument 3: want float32, got %T", args[3])
	}
	k.z, k.x, k.y, k.a = bufs[0], bufs[1], bufs[2], a
	k.bound = true
	return nil
}

func (k *mockKernel) Close() error {
	return nil
}

type mockBuffer struct {
	mode MemMode
	data []float32
}

func (b *mockBuffer) Len() int {
	return len(b.data)
}

func (b *mockBuffer) Mode() MemMode {
	return b.mode
}

func (b *mockBuffer) Close() error {
	b.data = nil
	return nil
}

type mockQueue struct {
	backend   *MockBackend
	profiling bool
}

func (q *mockQueue) Size() (uint, bool) {
	return q.backend.queueSize, q.backend.queueSizeKnown
}

// enqueue runs op on its own goroutine once every wait-list event has
// completed. Deliberately no FIFO ordering between operations on the same
// queue: a missing wait-list edge is observable as a data race or a wrong
// result, never silently papered over by submission order.
func (q *mockQueue) enqueue(delay time.Duration, waitList []Event, op func() error) *mockEvent {
	ev := &mockEvent{done: make(chan struct{}), profiled: q.profiling}
	go func() {
		defer close(ev.done)
		for _, dep := range waitList {
			if err := dep.Wait(); err != nil {
				ev.err = fmt.Errorf("wait-list dependency failed: %w", err)
				return
			}
		}
		if delay > 0 {
			time.Sleep(delay)
		}
		start := deviceNanos()
		ev.err = op()
		end := deviceNanos()
		if q.profiling {
			ev.start, ev.end = start, end
		}
	}()
	return ev
}

func (q *mockQueue) EnqueueWrite(dst Buffer, src []float32, waitList []Event) (Event, error) {
	if q.backend.faults.Write != nil {
		return nil, q.backend.faults.Write
	}
	buf, ok := dst.(*mockBuffer)
	if !ok {
		return nil, fmt.Errorf("buffer %T does not belong to the mock backend", dst)
	}
	if len(src) > buf.Len() {
		return nil, fmt.Errorf("write of %d elements exceeds buffer of %d", len(src), buf.Len())
	}
	return q.enqueue(q.backend.writeDelay, waitList, func() error {
		copy(buf.data, src)
		return nil
	}), nil
}

func (q *mockQueue) EnqueueKernel(k Kernel, globalSize int, waitList []Event) (Event, error) {
	if q.backend.faults.Dispatch != nil {
		return nil, q.backend.faults.Dispatch
	}
	kern, ok := k.(*mockKernel)
	if !ok {
		return nil, fmt.Errorf("kernel %T does not belong to the mock backend", k)
	}
	if !kern.bound {
		return nil, fmt.Errorf("kernel %s dispatched with unbound arguments", kern.name)
	}
	if globalSize <= 0 || globalSize > kern.z.Len() || globalSize > kern.x.Len() || globalSize > kern.y.Len() {
		return nil, fmt.Errorf("invalid global work size %d", globalSize)
	}
	return q.enqueue(0, waitList, func() error {
		for i := 0; i < globalSize; i++ {
			kern.z.data[i] = kern.a*kern.x.data[i] + kern.y.data[i]
		}
		return nil
	}), nil
}

func (q *mockQueue) EnqueueRead(src Buffer, dst []float32, waitList []Event) (Event, error) {
	if q.backend.faults.Read != nil {
		return nil, q.backend.faults.Read
	}
	buf, ok := src.(*mockBuffer)
	if !ok {
		return nil, fmt.Errorf("buffer %T does not belong to the mock backend", src)
	}
	if len(dst) > buf.Len() {
		return nil, fmt.Errorf("read of %d elements exceeds buffer of %d", len(dst), buf.Len())
	}
	return q.enqueue(0, waitList, func() error {
		copy(dst, buf.data[:len(dst)])
		return nil
	}), nil
}

func (q *mockQueue) Close() error {
	return nil
}

// mockEpoch anchors the simulated device clock; timestamps are monotonic
// like real device counters, unlike the host wall clock.
var mockEpoch = time.Now()

func deviceNanos() uint64 {
	return uint64(time.Since(mockEpoch).Nanoseconds())
}

type mockEvent struct {
	done     chan struct{}
	err      error
	profiled bool
	start    uint64
	end      uint64
}

func (e *mockEvent) Wait() error {
	<-e.done
	return e.err
}

// ProfilingStart blocks until the event completes, matching runtimes where
// timestamps only become available on completion.
func (e *mockEvent) ProfilingStart() (uint64, error) {
	if !e.profiled {
		return 0, ErrProfilingUnavailable
	}
	if err := e.Wait(); err != nil {
		return 0, err
	}
	return e.start, nil
}

func (e *mockEvent) ProfilingEnd() (uint64, error) {
	if !e.profiled {
		return 0, ErrProfilingUnavailable
	}
	if err := e.Wait(); err != nil {
		return 0, err
	}
	return e.end, nil
}

func (e *mockEvent) Close() error {
	return nil
}
