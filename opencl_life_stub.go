//go:build !opencl

package main

import "errors"

type openCLLifeSolver struct{}

func newOpenCLLifeSolver(width, height, paletteCount int) (*openCLLifeSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLLifeSolver) Step(grid *lifeGrid, steps int, seed uint32) error {
	return errors.New("OpenCL solver unavailable")
}

func (s *openCLLifeSolver) Close() {}

func (s *openCLLifeSolver) DeviceName() string { return "" }
