package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	defer a.close()

	root := a.rootCommand()
	root.SetArgs(args)
	if err := root.ExecuteContext(context.Background()); err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// startCPUProfile begins CPU profiling into path and returns the func that
// stops it and closes the file.
func startCPUProfile(path string) (func() error, error) {
	f, err := createProfile("cpu", path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, closeProfile(f, fmt.Errorf("xmlaparse: start cpu profile %s: %w", path, err))
	}
	return func() error {
		pprof.StopCPUProfile()
		return closeProfile(f, nil)
	}, nil
}

func writeMemProfile(path string) error {
	f, err := createProfile("memory", path)
	if err != nil {
		return err
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return closeProfile(f, fmt.Errorf("xmlaparse: write memory profile %s: %w", path, err))
	}
	return closeProfile(f, nil)
}

func createProfile(kind, path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("xmlaparse: create %s profile %s: %w", kind, path, err)
	}
	return f, nil
}

// closeProfile closes f and joins a close failure onto err.
func closeProfile(f *os.File, err error) error {
	if closeErr := f.Close(); closeErr != nil {
		return errors.Join(err, fmt.Errorf("xmlaparse: close profile %s: %w", f.Name(), closeErr))
	}
	return err
}
