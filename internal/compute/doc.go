// Package compute provides the backend-agnostic orchestration layer for
// dispatching the embedded SAXPY kernel on a compute device.
//
// The package defines a narrow backend capability set (device resolution,
// context/queue setup, program build, buffer allocation, asynchronous
// transfers and dispatch with event wait-lists) and ships two backends:
// a CPU-backed mock with real asynchronous queue semantics, and a cgo
// OpenCL backend enabled with the "gpu" build tag.
package compute
