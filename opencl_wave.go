//go:build opencl

package main

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLWaveSolver advances the wave field on an OpenCL device. Buffers stay
// resident between ticks; only the disturbed current state is uploaded and
// the results read back.
type openCLWaveSolver struct {
	context *cl.Context
	queue   *cl.CommandQueue
	program *cl.Program
	kernel  *cl.Kernel
	currBuf *cl.MemObject
	prevBuf *cl.MemObject
	nextBuf *cl.MemObject

	width, height int
	deviceName    string

	boundCurr *cl.MemObject
	boundPrev *cl.MemObject
	boundNext *cl.MemObject
}

// waveKernelSource steps the toroidal wave equation. Neighbor lookups wrap
// across both axes, matching the CPU solver exactly.
const waveKernelSource = `__kernel void wave_step(
    const int width,
    const int height,
    const float damp,
    const float speed,
    __global const float* curr,
    __global const float* prev,
    __global float* next_buffer)
{
    int idx = get_global_id(0);
    int size = width * height;
    if (idx >= size) {
        return;
    }
    int x = idx % width;
    int y = idx / width;
    int left = (x == 0) ? idx + width - 1 : idx - 1;
    int right = (x == width - 1) ? idx - width + 1 : idx + 1;
    int top = (y == 0) ? idx + size - width : idx - width;
    int bottom = (y == height - 1) ? idx + width - size : idx + width;
    float center = curr[idx];
    float laplacian = curr[left] + curr[right] + curr[top] + curr[bottom] - 4.0f * center;
    next_buffer[idx] = ((2.0f * center - prev[idx]) + speed * laplacian) * damp;
}`

func newOpenCLWaveSolver(width, height int) (*openCLWaveSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		return nil, fmt.Errorf("querying OpenCL platforms: %w", err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{waveKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("wave_step")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}

	size := width * height
	byteSize := size * int(unsafe.Sizeof(float32(0)))
	solver := &openCLWaveSolver{
		context:    context,
		queue:      queue,
		program:    program,
		kernel:     kernel,
		width:      width,
		height:     height,
		deviceName: device.Name(),
	}
	for _, buf := range []**cl.MemObject{&solver.currBuf, &solver.prevBuf, &solver.nextBuf} {
		b, err := context.CreateEmptyBuffer(cl.MemReadWrite, byteSize)
		if err != nil {
			solver.Close()
			return nil, fmt.Errorf("allocating wave buffer: %w", err)
		}
		*buf = b
	}

	if err := solver.kernel.SetArgs(
		int32(width),
		int32(height),
		damping32,
		speed32,
		solver.currBuf,
		solver.prevBuf,
		solver.nextBuf,
	); err != nil {
		solver.Close()
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	return solver, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

// bindDynamicBuffers rebinds kernel arguments after device-side rotation.
func (s *openCLWaveSolver) bindDynamicBuffers() error {
	if s.boundCurr != s.currBuf {
		if err := s.kernel.SetArgBuffer(4, s.currBuf); err != nil {
			return err
		}
		s.boundCurr = s.currBuf
	}
	if s.boundPrev != s.prevBuf {
		if err := s.kernel.SetArgBuffer(5, s.prevBuf); err != nil {
			return err
		}
		s.boundPrev = s.prevBuf
	}
	if s.boundNext != s.nextBuf {
		if err := s.kernel.SetArgBuffer(6, s.nextBuf); err != nil {
			return err
		}
		s.boundNext = s.nextBuf
	}
	return nil
}

// Step uploads the host state, runs the kernel for the requested number of
// ticks rotating buffers on the device, and reads the results back into the
// field.
func (s *openCLWaveSolver) Step(field *waveField, steps int) error {
	if steps <= 0 {
		return nil
	}
	size := s.width * s.height
	if len(field.curr) != size || len(field.prev) != size {
		return fmt.Errorf("unexpected field buffer size")
	}
	// Disturbances mutate the host current buffer between ticks, so it is
	// re-uploaded every call.
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.currBuf, false, 0, field.curr, nil); err != nil {
		return fmt.Errorf("writing current buffer: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.prevBuf, false, 0, field.prev, nil); err != nil {
		return fmt.Errorf("writing previous buffer: %w", err)
	}
	global := []int{size}
	for step := 0; step < steps; step++ {
		if err := s.bindDynamicBuffers(); err != nil {
			return fmt.Errorf("binding buffers: %w", err)
		}
		if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, nil, nil); err != nil {
			return fmt.Errorf("enqueueing kernel: %w", err)
		}
		s.prevBuf, s.currBuf, s.nextBuf = s.currBuf, s.nextBuf, s.prevBuf
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.currBuf, true, 0, field.curr, nil); err != nil {
		return fmt.Errorf("reading current buffer: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.prevBuf, true, 0, field.prev, nil); err != nil {
		return fmt.Errorf("reading previous buffer: %w", err)
	}
	return nil
}

// Close releases all device resources.
func (s *openCLWaveSolver) Close() {
	for _, buf := range []*cl.MemObject{s.nextBuf, s.prevBuf, s.currBuf} {
		if buf != nil {
			buf.Release()
		}
	}
	s.currBuf, s.prevBuf, s.nextBuf = nil, nil, nil
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

// DeviceName reports the selected OpenCL device.
func (s *openCLWaveSolver) DeviceName() string {
	return s.deviceName
}
