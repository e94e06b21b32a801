//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLLifeSolver steps the automaton on an OpenCL device. Cell state lives
// in two device buffers that swap roles after each generation, mirroring the
// host grid's double buffering; the current generation is read back after
// every Step so the compositor and tests always see host state.
type openCLLifeSolver struct {
	context      *cl.Context
	queue        *cl.CommandQueue
	program      *cl.Program
	kernel       *cl.Kernel
	currBuf      *cl.MemObject
	nextBuf      *cl.MemObject
	width        int
	height       int
	paletteCount int
	deviceName   string
	boundCurr    *cl.MemObject
	boundNext    *cl.MemObject
}

const lifeKernelSource = `__kernel void life_step(
    const int width,
    const int height,
    const int palette_count,
    const uint seed,
    __global const uchar* curr,
    __global uchar* next_buffer)
{
    int idx = get_global_id(0);
    int size = width * height;
    if (idx >= size) {
        return;
    }
    int x = idx % width;
    int y = idx / width;
    int xl = (x + width - 1) % width;
    int xr = (x + 1) % width;
    int yu = ((y + height - 1) % height) * width;
    int yd = ((y + 1) % height) * width;
    int row = y * width;
    int n = 0;
    n += curr[yu + xl] != 0;
    n += curr[yu + x] != 0;
    n += curr[yu + xr] != 0;
    n += curr[row + xl] != 0;
    n += curr[row + xr] != 0;
    n += curr[yd + xl] != 0;
    n += curr[yd + x] != 0;
    n += curr[yd + xr] != 0;
    uchar cell = curr[idx];
    uchar out = 0;
    if (cell != 0) {
        if (n == 2 || n == 3) {
            out = cell;
        }
    } else if (n == 3) {
        uint h = seed ^ ((uint)idx * 2654435761u);
        h ^= h >> 13;
        h *= 0x5bd1e995u;
        h ^= h >> 15;
        out = (uchar)(1u + h % (uint)palette_count);
    }
    next_buffer[idx] = out;
}`

func newOpenCLLifeSolver(width, height, paletteCount int) (*openCLLifeSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	var device *cl.Device
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			device = devices[0]
			break
		}
	}
	if device == nil {
		for _, p := range platforms {
			devices, derr := p.GetDevices(cl.DeviceTypeCPU)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
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
	program, err := context.CreateProgramWithSource([]string{lifeKernelSource})
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
	kernel, err := program.CreateKernel("life_step")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	size := width * height
	currBuf, err := context.CreateEmptyBuffer(cl.MemReadWrite, size)
	if err != nil {
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating current buffer: %w", err)
	}
	nextBuf, err := context.CreateEmptyBuffer(cl.MemReadWrite, size)
	if err != nil {
		currBuf.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating next buffer: %w", err)
	}

	solver := &openCLLifeSolver{
		context:      context,
		queue:        queue,
		program:      program,
		kernel:       kernel,
		currBuf:      currBuf,
		nextBuf:      nextBuf,
		width:        width,
		height:       height,
		paletteCount: paletteCount,
		deviceName:   device.Name(),
	}

	if err := solver.kernel.SetArgs(
		int32(width),
		int32(height),
		int32(paletteCount),
		uint32(0),
		solver.currBuf,
		solver.nextBuf,
	); err != nil {
		solver.Close()
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	return solver, nil
}

// bindDynamicBuffers rebinds the kernel's buffer arguments after a role swap.
func (s *openCLLifeSolver) bindDynamicBuffers() error {
	if s.boundCurr != s.currBuf {
		if err := s.kernel.SetArgBuffer(4, s.currBuf); err != nil {
			return err
		}
		s.boundCurr = s.currBuf
	}
	if s.boundNext != s.nextBuf {
		if err := s.kernel.SetArgBuffer(5, s.nextBuf); err != nil {
			return err
		}
		s.boundNext = s.nextBuf
	}
	return nil
}

// Step advances the grid by the given number of generations on the device.
// seed feeds the in-kernel hash that colors newborn cells; the host grid's
// current buffer is uploaded before and read back after, so reseeds and
// readers never observe stale device state.
func (s *openCLLifeSolver) Step(grid *lifeGrid, steps int, seed uint32) error {
	if steps <= 0 {
		return nil
	}
	size := s.width * s.height
	if len(grid.curr) != size {
		return fmt.Errorf("unexpected grid buffer size")
	}
	if _, err := s.queue.EnqueueWriteBuffer(s.currBuf, false, 0, size, unsafe.Pointer(&grid.curr[0]), nil); err != nil {
		return fmt.Errorf("writing current buffer: %w", err)
	}
	global := []int{size}
	for step := 0; step < steps; step++ {
		if err := s.bindDynamicBuffers(); err != nil {
			return fmt.Errorf("binding buffers: %w", err)
		}
		if err := s.kernel.SetArgUint32(3, seed+uint32(step)*0x9e3779b9); err != nil {
			return fmt.Errorf("setting step seed: %w", err)
		}
		if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, nil, nil); err != nil {
			return fmt.Errorf("enqueueing kernel: %w", err)
		}
		s.currBuf, s.nextBuf = s.nextBuf, s.currBuf
	}
	if _, err := s.queue.EnqueueReadBuffer(s.currBuf, true, 0, size, unsafe.Pointer(&grid.curr[0]), nil); err != nil {
		return fmt.Errorf("reading current buffer: %w", err)
	}
	grid.generation += steps
	return nil
}

func (s *openCLLifeSolver) Close() {
	if s.nextBuf != nil {
		s.nextBuf.Release()
		s.nextBuf = nil
	}
	if s.currBuf != nil {
		s.currBuf.Release()
		s.currBuf = nil
	}
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

func (s *openCLLifeSolver) DeviceName() string {
	return s.deviceName
}
