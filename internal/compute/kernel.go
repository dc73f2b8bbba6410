package compute

// SaxpyKernelName is the entry point resolved from the compiled program.
const SaxpyKernelName = "saxpy_float"

// SaxpySource is the kernel compiled for every run. Argument order is the
// wire contract with SetArgs: output z, input x, input y, scalar a.
// It must compile with empty build options on any conformant backend.
const SaxpySource = `
kernel void saxpy_float (global float* z,
    global float const* x,
    global float const* y,
    float a)
{
    const size_t i = get_global_id(0);
    z[i] = a*x[i] + y[i];
}`
