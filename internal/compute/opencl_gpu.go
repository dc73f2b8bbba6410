//go:build gpu

package compute

/*
#cgo LDFLAGS: -lOpenCL
#define CL_TARGET_OPENCL_VERSION 120
#define CL_USE_DEPRECATED_OPENCL_1_2_APIS
#include <CL/cl.h>
#include <stdlib.h>

#ifndef CL_QUEUE_SIZE
#define CL_QUEUE_SIZE 0x1094
#endif

static const char* clsaxpy_cl_error_string(cl_int status) {
	switch (status) {
	case CL_SUCCESS: return "CL_SUCCESS";
	case CL_DEVICE_NOT_FOUND: return "CL_DEVICE_NOT_FOUND";
	case CL_DEVICE_NOT_AVAILABLE: return "CL_DEVICE_NOT_AVAILABLE";
	case CL_COMPILER_NOT_AVAILABLE: return "CL_COMPILER_NOT_AVAILABLE";
	case CL_MEM_OBJECT_ALLOCATION_FAILURE: return "CL_MEM_OBJECT_ALLOCATION_FAILURE";
	case CL_OUT_OF_RESOURCES: return "CL_OUT_OF_RESOURCES";
	case CL_OUT_OF_HOST_MEMORY: return "CL_OUT_OF_HOST_MEMORY";
	case CL_PROFILING_INFO_NOT_AVAILABLE: return "CL_PROFILING_INFO_NOT_AVAILABLE";
	case CL_MEM_COPY_OVERLAP: return "CL_MEM_COPY_OVERLAP";
	case CL_IMAGE_FORMAT_MISMATCH: return "CL_IMAGE_FORMAT_MISMATCH";
	case CL_IMAGE_FORMAT_NOT_SUPPORTED: return "CL_IMAGE_FORMAT_NOT_SUPPORTED";
	case CL_BUILD_PROGRAM_FAILURE: return "CL_BUILD_PROGRAM_FAILURE";
	case CL_MAP_FAILURE: return "CL_MAP_FAILURE";
	case CL_INVALID_VALUE: return "CL_INVALID_VALUE";
	case CL_INVALID_DEVICE_TYPE: return "CL_INVALID_DEVICE_TYPE";
	case CL_INVALID_PLATFORM: return "CL_INVALID_PLATFORM";
	case CL_INVALID_DEVICE: return "CL_INVALID_DEVICE";
	case CL_INVALID_CONTEXT: return "CL_INVALID_CONTEXT";
	case CL_INVALID_QUEUE_PROPERTIES: return "CL_INVALID_QUEUE_PROPERTIES";
	case CL_INVALID_COMMAND_QUEUE: return "CL_INVALID_COMMAND_QUEUE";
	case CL_INVALID_HOST_PTR: return "CL_INVALID_HOST_PTR";
	case CL_INVALID_MEM_OBJECT: return "CL_INVALID_MEM_OBJECT";
	case CL_INVALID_IMAGE_FORMAT_DESCRIPTOR: return "CL_INVALID_IMAGE_FORMAT_DESCRIPTOR";
	case CL_INVALID_IMAGE_SIZE: return "CL_INVALID_IMAGE_SIZE";
	case CL_INVALID_SAMPLER: return "CL_INVALID_SAMPLER";
	case CL_INVALID_BINARY: return "CL_INVALID_BINARY";
	case CL_INVALID_BUILD_OPTIONS: return "CL_INVALID_BUILD_OPTIONS";
	case CL_INVALID_PROGRAM: return "CL_INVALID_PROGRAM";
	case CL_INVALID_PROGRAM_EXECUTABLE: return "CL_INVALID_PROGRAM_EXECUTABLE";
	case CL_INVALID_KERNEL_NAME: return "CL_INVALID_KERNEL_NAME";
	case CL_INVALID_KERNEL_DEFINITION: return "CL_INVALID_KERNEL_DEFINITION";
	case CL_INVALID_KERNEL: return "CL_INVALID_KERNEL";
	case CL_INVALID_ARG_INDEX: return "CL_INVALID_ARG_INDEX";
	case CL_INVALID_ARG_VALUE: return "CL_INVALID_ARG_VALUE";
	case CL_INVALID_ARG_SIZE: return "CL_INVALID_ARG_SIZE";
	case CL_INVALID_KERNEL_ARGS: return "CL_INVALID_KERNEL_ARGS";
	case CL_INVALID_WORK_DIMENSION: return "CL_INVALID_WORK_DIMENSION";
	case CL_INVALID_WORK_GROUP_SIZE: return "CL_INVALID_WORK_GROUP_SIZE";
	case CL_INVALID_WORK_ITEM_SIZE: return "CL_INVALID_WORK_ITEM_SIZE";
	case CL_INVALID_GLOBAL_OFFSET: return "CL_INVALID_GLOBAL_OFFSET";
	case CL_INVALID_EVENT_WAIT_LIST: return "CL_INVALID_EVENT_WAIT_LIST";
	case CL_INVALID_EVENT: return "CL_INVALID_EVENT";
	case CL_INVALID_OPERATION: return "CL_INVALID_OPERATION";
	case CL_INVALID_GL_OBJECT: return "CL_INVALID_GL_OBJECT";
	case CL_INVALID_BUFFER_SIZE: return "CL_INVALID_BUFFER_SIZE";
	case CL_INVALID_MIP_LEVEL: return "CL_INVALID_MIP_LEVEL";
	case CL_INVALID_GLOBAL_WORK_SIZE: return "CL_INVALID_GLOBAL_WORK_SIZE";
	default: return "CL_UNKNOWN_ERROR";
	}
}

static cl_command_queue clsaxpy_create_queue(cl_context ctx, cl_device_id device, cl_command_queue_properties props, cl_int *status) {
#if CL_TARGET_OPENCL_VERSION >= 200
	const cl_queue_properties qprops[] = {CL_QUEUE_PROPERTIES, (cl_queue_properties)props, 0};
	return clCreateCommandQueueWithProperties(ctx, device, qprops, status);
#else
	return clCreateCommandQueue(ctx, device, props, status);
#endif
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

// openclBackend drives a real OpenCL runtime through cgo. The vendor ICD is
// resolved by the dynamic linker; a missing driver surfaces as a context or
// enumeration failure at run time.
type openclBackend struct{}

func newOpenCLBackend() (Backend, error) {
	return &openclBackend{}, nil
}

func (b *openclBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "opencl",
		Version:     "1.2",
		Description: "OpenCL backend (cgo, libOpenCL)",
	}
}

func (b *openclBackend) Available() bool {
	records, err := enumeratePlatformRecords()
	if err != nil {
		return false
	}
	for _, platform := range records {
		if len(platform.devices) > 0 {
			return true
		}
	}
	return false
}

func (b *openclBackend) Platforms() ([]PlatformInfo, error) {
	records, err := enumeratePlatformRecords()
	if err != nil {
		return nil, err
	}

	out := make([]PlatformInfo, len(records))
	for i, platform := range records {
		devices := make([]DeviceInfo, len(platform.devices))
		for j, device := range platform.devices {
			devices[j] = device.info
		}
		info := platform.info
		info.Devices = devices
		out[i] = info
	}
	return out, nil
}

func (b *openclBackend) Devices(filter DeviceType) ([]Device, error) {
	records, err := enumeratePlatformRecords()
	if err != nil {
		return nil, err
	}

	var out []Device
	for _, platform := range records {
		for _, device := range platform.devices {
			if device.info.Type.Matches(filter) {
				out = append(out, &openclDevice{id: device.id, info: device.info})
			}
		}
	}
	return out, nil
}

func (b *openclBackend) NewContext(device Device) (Context, error) {
	dev, ok := device.(*openclDevice)
	if !ok {
		return nil, fmt.Errorf("device %T does not belong to the opencl backend", device)
	}

	var status C.cl_int
	ctx := C.clCreateContext(nil, 1, &dev.id, nil, nil, &status)
	if status != C.CL_SUCCESS {
		return nil, statusError("clCreateContext", status)
	}
	return &openclContext{ctx: ctx, device: dev}, nil
}

type openclDevice struct {
	id   C.cl_device_id
	info DeviceInfo
}

func (d *openclDevice) Info() DeviceInfo {
	return d.info
}

type openclContext struct {
	ctx    C.cl_context
	device *openclDevice
}

func (c *openclContext) Device() Device {
	return c.device
}

func (c *openclContext) NewQueue(opts QueueOptions) (Queue, error) {
	var props C.cl_command_queue_properties
	if opts.Profiling {
		props |= C.CL_QUEUE_PROFILING_ENABLE
	}

	var status C.cl_int
	queue := C.clsaxpy_create_queue(c.ctx, c.device.id, props, &status)
	if status != C.CL_SUCCESS {
		return nil, statusError("clCreateCommandQueue", status)
	}
	return &openclQueue{queue: queue}, nil
}

func (c *openclContext) BuildProgram(source, options string) (Program, error) {
	csource := C.CString(source)
	defer C.free(unsafe.Pointer(csource))

	var status C.cl_int
	prog := C.clCreateProgramWithSource(c.ctx, 1, &csource, nil, &status)
	if status != C.CL_SUCCESS {
		return nil, statusError("clCreateProgramWithSource", status)
	}

	coptions := C.CString(options)
	defer C.free(unsafe.Pointer(coptions))

	status = C.clBuildProgram(prog, 1, &c.device.id, coptions, nil, nil)
	if status != C.CL_SUCCESS {
		log := c.buildLog(prog)
		C.clReleaseProgram(prog)
		if log != "" {
			return nil, fmt.Errorf("%v\nbuild log:\n%s", statusError("clBuildProgram", status), log)
		}
		return nil, statusError("clBuildProgram", status)
	}

	return &openclProgram{prog: prog}, nil
}

func (c *openclContext) buildLog(prog C.cl_program) string {
	var size C.size_t
	status := C.clGetProgramBuildInfo(prog, c.device.id, C.CL_PROGRAM_BUILD_LOG, 0, nil, &size)
	if status != C.CL_SUCCESS || size == 0 {
		return ""
	}

	buf := make([]byte, int(size))
	status = C.clGetProgramBuildInfo(prog, c.device.id, C.CL_PROGRAM_BUILD_LOG, size, unsafe.Pointer(&buf[0]), nil)
	if status != C.CL_SUCCESS {
		return ""
	}
	return trimNull(buf)
}

func (c *openclContext) NewBuffer(mode MemMode, elems int) (Buffer, error) {
	if elems <= 0 {
		return nil, fmt.Errorf("invalid buffer size %d", elems)
	}

	var flags C.cl_mem_flags
	switch mode {
	case MemReadOnly:
		flags = C.CL_MEM_READ_ONLY
	case MemWriteOnly:
		flags = C.CL_MEM_WRITE_ONLY
	default:
		return nil, fmt.Errorf("unsupported memory mode %v", mode)
	}

	var status C.cl_int
	mem := C.clCreateBuffer(c.ctx, flags, C.size_t(elems)*clFloatSize, nil, &status)
	if status != C.CL_SUCCESS {
		return nil, statusError("clCreateBuffer", status)
	}
	return &openclBuffer{mem: mem, mode: mode, elems: elems}, nil
}

func (c *openclContext) Close() error {
	if c.ctx != nil {
		C.clReleaseContext(c.ctx)
		c.ctx = nil
	}
	return nil
}

var clFloatSize = C.size_t(unsafe.Sizeof(C.cl_float(0)))

type openclProgram struct {
	prog C.cl_program
}

func (p *openclProgram) Kernel(name string) (Kernel, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var status C.cl_int
	kern := C.clCreateKernel(p.prog, cname, &status)
	if status != C.CL_SUCCESS {
		return nil, statusError("clCreateKernel", status)
	}
	return &openclKernel{kern: kern, name: name}, nil
}

func (p *openclProgram) Close() error {
	if p.prog != nil {
		C.clReleaseProgram(p.prog)
		p.prog = nil
	}
	return nil
}

type openclKernel struct {
	kern C.cl_kernel
	name string
}

func (k *openclKernel) Name() string {
	return k.name
}

func (k *openclKernel) SetArgs(args ...any) error {
	for i, arg := range args {
		var status C.cl_int
		switch v := arg.(type) {
		case *openclBuffer:
			mem := v.mem
			status = C.clSetKernelArg(k.kern, C.cl_uint(i), C.size_t(unsafe.Sizeof(mem)), unsafe.Pointer(&mem))
		case float32:
			f := C.cl_float(v)
			status = C.clSetKernelArg(k.kern, C.cl_uint(i), C.size_t(unsafe.Sizeof(f)), unsafe.Pointer(&f))
		default:
			return fmt.Errorf("argument %d: unsupported type %T", i, arg)
		}
		if status != C.CL_SUCCESS {
			return statusError(fmt.Sprintf("clSetKernelArg(%d)", i), status)
		}
	}
	return nil
}

func (k *openclKernel) Close() error {
	if k.kern != nil {
		C.clReleaseKernel(k.kern)
		k.kern = nil
	}
	return nil
}

type openclBuffer struct {
	mem   C.cl_mem
	mode  MemMode
	elems int
}

func (b *openclBuffer) Len() int {
	return b.elems
}

func (b *openclBuffer) Mode() MemMode {
	return b.mode
}

func (b *openclBuffer) Close() error {
	if b.mem != nil {
		C.clReleaseMemObject(b.mem)
		b.mem = nil
	}
	return nil
}

type openclQueue struct {
	queue C.cl_command_queue
}

func (q *openclQueue) Size() (uint, bool) {
	// Only on-device queues support CL_QUEUE_SIZE; a host queue answers
	// with an error, which degrades to "unknown" rather than failing.
	var size C.cl_uint
	status := C.clGetCommandQueueInfo(q.queue, C.CL_QUEUE_SIZE, C.size_t(unsafe.Sizeof(size)), unsafe.Pointer(&size), nil)
	if status != C.CL_SUCCESS {
		return 0, false
	}
	return uint(size), true
}

func (q *openclQueue) EnqueueWrite(dst Buffer, src []float32, waitList []Event) (Event, error) {
	buf, ok := dst.(*openclBuffer)
	if !ok {
		return nil, fmt.Errorf("buffer %T does not belong to the opencl backend", dst)
	}
	if len(src) == 0 || len(src) > buf.elems {
		return nil, fmt.Errorf("write of %d elements into buffer of %d", len(src), buf.elems)
	}

	waits, err := clWaitList(waitList)
	if err != nil {
		return nil, err
	}

	var evt C.cl_event
	status := C.clEnqueueWriteBuffer(q.queue, buf.mem, C.cl_bool(C.CL_FALSE), 0,
		C.size_t(len(src))*clFloatSize, unsafe.Pointer(&src[0]),
		C.cl_uint(len(waits)), waitListPtr(waits), &evt)
	if status != C.CL_SUCCESS {
		return nil, statusError("clEnqueueWriteBuffer", status)
	}

	// The runtime reads src asynchronously; the event keeps the slice
	// reachable until completion.
	return &openclEvent{event: evt, hostRef: src}, nil
}

func (q *openclQueue) EnqueueKernel(k Kernel, globalSize int, waitList []Event) (Event, error) {
	kern, ok := k.(*openclKernel)
	if !ok {
		return nil, fmt.Errorf("kernel %T does not belong to the opencl backend", k)
	}
	if globalSize <= 0 {
		return nil, fmt.Errorf("invalid global work size %d", globalSize)
	}

	waits, err := clWaitList(waitList)
	if err != nil {
		return nil, err
	}

	// One dimension, runtime-default local size.
	global := C.size_t(globalSize)
	var evt C.cl_event
	status := C.clEnqueueNDRangeKernel(q.queue, kern.kern, 1, nil, &global, nil,
		C.cl_uint(len(waits)), waitListPtr(waits), &evt)
	if status != C.CL_SUCCESS {
		return nil, statusError("clEnqueueNDRangeKernel", status)
	}
	return &openclEvent{event: evt}, nil
}

func (q *openclQueue) EnqueueRead(src Buffer, dst []float32, waitList []Event) (Event, error) {
	buf, ok := src.(*openclBuffer)
	if !ok {
		return nil, fmt.Errorf("buffer %T does not belong to the opencl backend", src)
	}
	if len(dst) == 0 || len(dst) > buf.elems {
		return nil, fmt.Errorf("read of %d elements from buffer of %d", len(dst), buf.elems)
	}

	waits, err := clWaitList(waitList)
	if err != nil {
		return nil, err
	}

	var evt C.cl_event
	status := C.clEnqueueReadBuffer(q.queue, buf.mem, C.cl_bool(C.CL_FALSE), 0,
		C.size_t(len(dst))*clFloatSize, unsafe.Pointer(&dst[0]),
		C.cl_uint(len(waits)), waitListPtr(waits), &evt)
	if status != C.CL_SUCCESS {
		return nil, statusError("clEnqueueReadBuffer", status)
	}
	return &openclEvent{event: evt, hostRef: dst}, nil
}

func (q *openclQueue) Close() error {
	if q.queue != nil {
		C.clReleaseCommandQueue(q.queue)
		q.queue = nil
	}
	return nil
}

func clWaitList(events []Event) ([]C.cl_event, error) {
	if len(events) == 0 {
		return nil, nil
	}
	out := make([]C.cl_event, len(events))
	for i, ev := range events {
		oe, ok := ev.(*openclEvent)
		if !ok {
			return nil, fmt.Errorf("event %T does not belong to the opencl backend", ev)
		}
		out[i] = oe.event
	}
	return out, nil
}

func waitListPtr(waits []C.cl_event) *C.cl_event {
	if len(waits) == 0 {
		return nil
	}
	return &waits[0]
}

type openclEvent struct {
	event   C.cl_event
	hostRef []float32
}

func (e *openclEvent) Wait() error {
	evt := e.event
	status := C.clWaitForEvents(1, &evt)
	if status != C.CL_SUCCESS {
		return statusError("clWaitForEvents", status)
	}
	e.hostRef = nil
	return nil
}

func (e *openclEvent) ProfilingStart() (uint64, error) {
	return e.profilingInfo(C.CL_PROFILING_COMMAND_START, "clGetEventProfilingInfo(start)")
}

func (e *openclEvent) ProfilingEnd() (uint64, error) {
	return e.profilingInfo(C.CL_PROFILING_COMMAND_END, "clGetEventProfilingInfo(end)")
}

func (e *openclEvent) profilingInfo(param C.cl_profiling_info, op string) (uint64, error) {
	var t C.cl_ulong
	status := C.clGetEventProfilingInfo(e.event, param, C.size_t(unsafe.Sizeof(t)), unsafe.Pointer(&t), nil)
	if status == C.CL_PROFILING_INFO_NOT_AVAILABLE {
		return 0, fmt.Errorf("%w: %v", ErrProfilingUnavailable, statusError(op, status))
	}
	if status != C.CL_SUCCESS {
		return 0, statusError(op, status)
	}
	return uint64(t), nil
}

func (e *openclEvent) Close() error {
	if e.event != nil {
		C.clReleaseEvent(e.event)
		e.event = nil
	}
	e.hostRef = nil
	return nil
}

type platformRecord struct {
	id      C.cl_platform_id
	info    PlatformInfo
	devices []deviceRecord
}

type deviceRecord struct {
	id   C.cl_device_id
	info DeviceInfo
}

func enumeratePlatformRecords() ([]platformRecord, error) {
	var count C.cl_uint
	status := C.clGetPlatformIDs(0, nil, &count)
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetPlatformIDs(count)", status)
	}
	if count == 0 {
		return nil, nil
	}

	platformIDs := make([]C.cl_platform_id, int(count))
	status = C.clGetPlatformIDs(count, &platformIDs[0], nil)
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetPlatformIDs(list)", status)
	}

	records := make([]platformRecord, 0, int(count))
	for _, pid := range platformIDs {
		name, err := getPlatformString(pid, C.CL_PLATFORM_NAME)
		if err != nil {
			return nil, err
		}
		vendor, err := getPlatformString(pid, C.CL_PLATFORM_VENDOR)
		if err != nil {
			return nil, err
		}
		version, err := getPlatformString(pid, C.CL_PLATFORM_VERSION)
		if err != nil {
			return nil, err
		}

		rec := platformRecord{
			id: pid,
			info: PlatformInfo{
				Name:    name,
				Vendor:  vendor,
				Version: version,
			},
		}

		devices, err := enumerateDevices(pid)
		if err != nil {
			if errors.Is(err, errPlatformEmpty) {
				records = append(records, rec)
				continue
			}
			return nil, err
		}

		rec.devices = devices
		rec.info.Devices = make([]DeviceInfo, len(devices))
		for i, device := range devices {
			rec.info.Devices[i] = device.info
		}

		records = append(records, rec)
	}

	return records, nil
}

var errPlatformEmpty = errors.New("platform has no devices")

func enumerateDevices(platform C.cl_platform_id) ([]deviceRecord, error) {
	var count C.cl_uint
	status := C.clGetDeviceIDs(platform, C.CL_DEVICE_TYPE_ALL, 0, nil, &count)
	if status == C.CL_DEVICE_NOT_FOUND {
		return nil, errPlatformEmpty
	}
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetDeviceIDs(count)", status)
	}
	if count == 0 {
		return nil, errPlatformEmpty
	}

	deviceIDs := make([]C.cl_device_id, int(count))
	status = C.clGetDeviceIDs(platform, C.CL_DEVICE_TYPE_ALL, count, &deviceIDs[0], nil)
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetDeviceIDs(list)", status)
	}

	devices := make([]deviceRecord, 0, int(count))
	for _, id := range deviceIDs {
		info, err := buildDeviceInfo(id)
		if err != nil {
			return nil, err
		}
		devices = append(devices, deviceRecord{
			id:   id,
			info: info,
		})
	}

	return devices, nil
}

func buildDeviceInfo(id C.cl_device_id) (DeviceInfo, error) {
	name, err := getDeviceString(id, C.CL_DEVICE_NAME)
	if err != nil {
		return DeviceInfo{}, err
	}
	vendor, err := getDeviceString(id, C.CL_DEVICE_VENDOR)
	if err != nil {
		return DeviceInfo{}, err
	}
	version, err := getDeviceString(id, C.CL_DEVICE_VERSION)
	if err != nil {
		return DeviceInfo{}, err
	}

	var rawType C.cl_device_type
	status := C.clGetDeviceInfo(id, C.CL_DEVICE_TYPE, C.size_t(unsafe.Sizeof(rawType)), unsafe.Pointer(&rawType), nil)
	if status != C.CL_SUCCESS {
		return DeviceInfo{}, statusError("clGetDeviceInfo(type)", status)
	}

	var computeUnits C.cl_uint
	status = C.clGetDeviceInfo(id, C.CL_DEVICE_MAX_COMPUTE_UNITS, C.size_t(unsafe.Sizeof(computeUnits)), unsafe.Pointer(&computeUnits), nil)
	if status != C.CL_SUCCESS {
		return DeviceInfo{}, statusError("clGetDeviceInfo(computeUnits)", status)
	}

	return DeviceInfo{
		Name:            name,
		Vendor:          vendor,
		Version:         version,
		Type:            mapDeviceType(rawType),
		MaxComputeUnits: uint32(computeUnits),
	}, nil
}

func getPlatformString(id C.cl_platform_id, param C.cl_platform_info) (string, error) {
	var size C.size_t
	status := C.clGetPlatformInfo(id, param, 0, nil, &size)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetPlatformInfo(size)", status)
	}
	if size == 0 {
		return "", nil
	}

	buf := make([]byte, int(size))
	status = C.clGetPlatformInfo(id, param, size, unsafe.Pointer(&buf[0]), nil)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetPlatformInfo(value)", status)
	}

	return trimNull(buf), nil
}

func getDeviceString(id C.cl_device_id, param C.cl_device_info) (string, error) {
	var size C.size_t
	status := C.clGetDeviceInfo(id, param, 0, nil, &size)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetDeviceInfo(size)", status)
	}
	if size == 0 {
		return "", nil
	}

	buf := make([]byte, int(size))
	status = C.clGetDeviceInfo(id, param, size, unsafe.Pointer(&buf[0]), nil)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetDeviceInfo(value)", status)
	}

	return trimNull(buf), nil
}

func trimNull(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	if buf[len(buf)-1] == 0 {
		buf = buf[:len(buf)-1]
	}
	return string(buf)
}

func mapDeviceType(dt C.cl_device_type) DeviceType {
	switch {
	case dt&C.CL_DEVICE_TYPE_GPU != 0:
		return DeviceTypeGPU
	case dt&C.CL_DEVICE_TYPE_CPU != 0:
		return DeviceTypeCPU
	case dt&C.CL_DEVICE_TYPE_ACCELERATOR != 0:
		return DeviceTypeAccelerator
	case dt&C.CL_DEVICE_TYPE_DEFAULT != 0:
		return DeviceTypeDefault
	default:
		return DeviceTypeUnknown
	}
}

func statusError(prefix string, status C.cl_int) error {
	return fmt.Errorf("%s: %s (%d)", prefix, C.GoString(C.clsaxpy_cl_error_string(status)), int(status))
}
