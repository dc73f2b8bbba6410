package compute

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// TestRun_Reference is the end-to-end reference scenario: N=1024, x[i]=1.0,
// y[i]=1.0+i, a=300.0.
func TestRun_Reference(t *testing.T) {
	result, err := Run(NewMockBackend(), DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Out) != 1024 {
		t.Fatalf("len(Out) = %d, want 1024", len(result.Out))
	}
	if result.Out[0] != 301.0 {
		t.Errorf("Out[0] = %g, want 301", result.Out[0])
	}
	if result.Out[1023] != 1324.0 {
		t.Errorf("Out[1023] = %g, want 1324", result.Out[1023])
	}
	if !result.Profiled {
		t.Errorf("reference run was not profiled")
	}
	if result.QueueSizeKnown {
		t.Errorf("mock queue size should degrade to unknown")
	}
	if result.Device.Name != "MockGPU" {
		t.Errorf("Device.Name = %q, want MockGPU", result.Device.Name)
	}
}

// TestRun_Correctness checks z[i] = a*x[i] + y[i] over assorted sizes,
// scalars and input patterns.
func TestRun_Correctness(t *testing.T) {
	cases := []struct {
		name string
		n    int
		a    float32
		fill func(i int) (x, y float32)
	}{
		{"n=1", 1, 2.5, func(i int) (float32, float32) { return 4.0, -1.0 }},
		{"negative scalar", 33, -3.0, func(i int) (float32, float32) { return float32(i), float32(2 * i) }},
		{"zero scalar", 257, 0.0, func(i int) (float32, float32) { return 7.0, float32(i) - 100 }},
		{"large", 4096, 0.5, func(i int) (float32, float32) { return float32(i % 17), float32(i % 13) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x := make([]float32, tc.n)
			y := make([]float32, tc.n)
			for i := range x {
				x[i], y[i] = tc.fill(i)
			}

			cfg := DefaultConfig()
			cfg.N = tc.n
			cfg.A = tc.a
			cfg.X = x
			cfg.Y = y

			result, err := Run(NewMockBackend(), cfg)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			for i := range result.Out {
				want := tc.a*x[i] + y[i]
				if result.Out[i] != want {
					t.Fatalf("Out[%d] = %g, want %g", i, result.Out[i], want)
				}
			}
		})
	}
}

func TestRun_NoDeviceFound(t *testing.T) {
	backend := NewMockBackend(WithDevices(DeviceInfo{
		Name: "MockCPU",
		Type: DeviceTypeCPU,
	}))

	cfg := DefaultConfig()
	cfg.DeviceType = DeviceTypeGPU

	if _, err := Run(backend, cfg); !errors.Is(err, ErrNoDeviceFound) {
		t.Errorf("Run error = %v, want ErrNoDeviceFound", err)
	}
}

// TestRun_ErrorKinds injects a failure into each backend operation and
// checks the pipeline surfaces the matching sentinel.
func TestRun_ErrorKinds(t *testing.T) {
	boom := fmt.Errorf("injected failure")

	cases := []struct {
		name   string
		faults MockFaults
		want   error
	}{
		{"context", MockFaults{Context: boom}, ErrContextCreation},
		{"queue", MockFaults{Queue: boom}, ErrQueueCreation},
		{"build", MockFaults{Build: boom}, ErrBuildFailure},
		{"alloc", MockFaults{Alloc: boom}, ErrBufferAllocation},
		{"write", MockFaults{Write: boom}, ErrTransfer},
		{"dispatch", MockFaults{Dispatch: boom}, ErrKernelLaunch},
		{"read", MockFaults{Read: boom}, ErrTransfer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := NewMockBackend(WithFaults(tc.faults))
			_, err := Run(backend, DefaultConfig())
			if !errors.Is(err, tc.want) {
				t.Errorf("Run error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRun_ProfilingDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profiling = false

	result, err := Run(NewMockBackend(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Profiled {
		t.Errorf("unprofiled run reported Profiled=true")
	}
	if result.KernelNanos != 0 {
		t.Errorf("KernelNanos = %d without profiling", result.KernelNanos)
	}
}

func TestRun_ProfilingEndAfterStart(t *testing.T) {
	result, err := Run(NewMockBackend(), DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// KernelNanos is end-start of an unsigned pair; a wrapped value would
	// be enormous.
	if result.KernelNanos > uint64(time.Hour.Nanoseconds()) {
		t.Errorf("KernelNanos = %d, timestamps look inverted", result.KernelNanos)
	}
}

func TestRun_QueueSizeReported(t *testing.T) {
	backend := NewMockBackend(WithQueueSize(32))
	result, err := Run(backend, DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.QueueSizeKnown || result.QueueSize != 32 {
		t.Errorf("queue size = (%d, %v), want (32, true)", result.QueueSize, result.QueueSizeKnown)
	}
}

// TestRun_DelayedWrites runs the full pipeline with slowed transfers; the
// wait-list dependency graph must still produce the correct result.
func TestRun_DelayedWrites(t *testing.T) {
	backend := NewMockBackend(WithWriteDelay(50 * time.Millisecond))

	cfg := DefaultConfig()
	cfg.N = 64

	result, err := Run(backend, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, got := range result.Out {
		want := 300.0*1.0 + (1.0 + float32(i))
		if got != want {
			t.Fatalf("Out[%d] = %g, want %g", i, got, want)
		}
	}
}

func TestRun_ConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero n", func(c *Config) { c.N = 0 }},
		{"negative n", func(c *Config) { c.N = -4 }},
		{"short x", func(c *Config) { c.X = make([]float32, 3) }},
		{"short y", func(c *Config) { c.Y = make([]float32, 3) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mod(&cfg)
			if _, err := Run(NewMockBackend(), cfg); err == nil {
				t.Errorf("Run accepted an invalid config")
			}
		})
	}
}

func TestRun_KernelResolutionError(t *testing.T) {
	// A backend whose program lacks the expected entry point.
	backend := NewMockBackend()
	devices, err := backend.Devices(DeviceTypeGPU)
	if err != nil || len(devices) == 0 {
		t.Fatalf("Devices: %v", err)
	}
	ctx, err := backend.NewContext(devices[0])
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	program, err := ctx.BuildProgram("kernel void other() {}", "")
	if err != nil {
		t.Fatalf("BuildProgram: %v", err)
	}
	if _, err := program.Kernel(SaxpyKernelName); err == nil {
		t.Errorf("resolved %q from a program that does not define it", SaxpyKernelName)
	}
}
