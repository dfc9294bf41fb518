// Package profiling wraps runtime/pprof for the command-line flags of
// the main binary.
package profiling

import (
	"os"
	"runtime/pprof"
	"time"

	"github.com/filescope/filescope/pkg/logging"
	"go.uber.org/zap"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile

	memProfilingInterval = 30 * time.Second
)

// DoCPUProfiling starts CPU profiling into the given file. The caller
// must invoke the returned func to stop profiling and close the file.
func DoCPUProfiling(filePath string) func() {
	f, err := osCreate(filePath)
	if err != nil {
		logging.L().Error("cannot create CPU profile", zap.Error(err))
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		logging.L().Error("cannot start CPU profile", zap.Error(err))
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}

// DoMemProfiling writes a heap profile to the given file periodically
// and returns a func that writes one on demand.
func DoMemProfiling(filePath string) func() {
	writeMemProfile := func() {
		f, err := osCreate(filePath)
		if err != nil {
			logging.L().Error("cannot create memory profile", zap.Error(err))
			return
		}
		defer func() {
			_ = f.Close()
		}()
		if err = pprofWriteHeapProfile(f); err != nil {
			logging.L().Error("cannot write memory profile", zap.Error(err))
		}
	}
	go func() {
		for {
			time.Sleep(memProfilingInterval)
			writeMemProfile()
		}
	}()
	return writeMemProfile
}
