//go:build !gpu

package compute

import "fmt"

func newOpenCLBackend() (Backend, error) {
	return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, ErrNotBuilt)
}
