//go:build !gpu

package compute

import (
	"errors"
	"testing"
)

func TestNewBackend_OpenCLNotBuilt(t *testing.T) {
	_, err := NewBackend("opencl")
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("error = %v, want ErrBackendUnavailable", err)
	}
	if !errors.Is(err, ErrNotBuilt) {
		t.Errorf("error = %v, want ErrNotBuilt in the chain", err)
	}
}
