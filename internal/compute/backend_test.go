package compute

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeBackendName(t *testing.T) {
	cases := []struct {
		in   string
		want BackendName
	}{
		{"", BackendOpenCL},
		{"opencl", BackendOpenCL},
		{"OpenCL", BackendOpenCL},
		{"  gpu ", BackendOpenCL},
		{"cl", BackendOpenCL},
		{"mock", BackendMock},
		{"cpu", BackendMock},
		{"vulkan", BackendName("vulkan")},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := NormalizeBackendName(tc.in); got != tc.want {
				t.Errorf("NormalizeBackendName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewBackend_Unknown(t *testing.T) {
	if _, err := NewBackend("vulkan"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewBackend(vulkan) error = %v, want ErrUnknownBackend", err)
	}
}

func TestNewBackend_Mock(t *testing.T) {
	backend, err := NewBackend("mock")
	if err != nil {
		t.Fatalf("NewBackend(mock): %v", err)
	}
	if !backend.Available() {
		t.Errorf("mock backend reports unavailable")
	}
	platforms, err := backend.Platforms()
	if err != nil {
		t.Fatalf("Platforms: %v", err)
	}
	if len(platforms) != 1 || len(platforms[0].Devices) != 1 {
		t.Errorf("mock backend should expose one platform with one device")
	}
}

func TestSaxpySource_Contract(t *testing.T) {
	if !strings.Contains(SaxpySource, "kernel void "+SaxpyKernelName) {
		t.Errorf("kernel source does not declare %q", SaxpyKernelName)
	}
	if !strings.Contains(SaxpySource, "a*x[i] + y[i]") {
		t.Errorf("kernel source does not compute a*x+y")
	}
}
