package main

import (
	"os"
	"runtime/pprof"
	"sync"
)

// startDefaultPGORecording starts a CPU profile destined for default.pgo.
// The returned stop function is idempotent; the Game calls it once the
// capture window elapses.
func startDefaultPGORecording(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}, nil
}
