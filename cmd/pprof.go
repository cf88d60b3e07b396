package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
)

// CPUProfile starts a cpu profile writing to path and returns the
// cleanup that stops it. A SIGINT or SIGTERM also stops the profile, so
// the output stays readable when the run is cut short.
func CPUProfile(path string) (cleanup func(), cerr *Error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, Err(-2, err)
	}
	err = pprof.StartCPUProfile(f)
	if err != nil {
		f.Close()
		return nil, Err(-2, err)
	}
	stop := func() {
		pprof.StopCPUProfile()
		f.Close()
	}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		stop()
		panic(fmt.Errorf("caught signal: %v", sig))
	}()
	return stop, nil
}
