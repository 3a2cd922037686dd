// Package profilers sets up profiling of the searches for the various programs.
//
// If linked, it will install the profiler flags.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagHTTPPort   = flag.Int("prof", -1, "If set, serves the pprof profiles at the given port, and keeps the program alive at the end until interrupted.")
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
	flagMemProfile = flag.String("mem_profile", "", "write heap profile to `file` at the end of the program")
)

// Profiler holds the profiles started by Setup.
type Profiler struct {
	ctx              context.Context
	cpuFile          *os.File
	httpAddr         string
	cpuPath, memPath string
}

// Setup starts the HTTP (flag -prof) and CPU profilers (flag -cpu_profile), if they were configured.
// You should follow with a deferred call to Profiler.Stop.
func Setup(ctx context.Context) (*Profiler, error) {
	p := &Profiler{ctx: ctx, cpuPath: *flagCPUProfile, memPath: *flagMemProfile}
	if *flagHTTPPort >= 0 {
		p.httpAddr = fmt.Sprintf("localhost:%d", *flagHTTPPort)
		fmt.Printf("Starting profiler on %s/debug/pprof\n", p.httpAddr)
		fmt.Printf("- You can access it with: $ go tool pprof %s/debug/pprof/profile\n", p.httpAddr)
		go func() {
			klog.Fatal(http.ListenAndServe(p.httpAddr, nil))
		}()
	}
	if p.cpuPath != "" {
		f, err := os.Create(p.cpuPath)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create CPU profile %q", p.cpuPath)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, errors.Wrap(err, "could not start CPU profile")
		}
		p.cpuFile = f
	}
	return p, nil
}

// Stop should be called before the exit of the main() function, typically as a deferred call
// just after Setup. It stops the CPU profile and writes the heap profile.
//
// If the HTTP profiler is enabled, it keeps the program alive until the context given to Setup is done.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); err != nil {
			return errors.Wrapf(err, "failed to close CPU profile %q", p.cpuPath)
		}
		klog.V(1).Infof("CPU profile saved to %q", p.cpuPath)
		p.cpuFile = nil
	}
	if p.memPath != "" {
		if err := p.writeHeapProfile(); err != nil {
			return err
		}
	}
	if p.httpAddr != "" && p.ctx.Err() == nil {
		fmt.Printf("- Program finished: kept alive with profiler opened at %s/debug/pprof\n", p.httpAddr)
		fmt.Printf("- Interrupt (Ctrl+C) to exit\n")
		<-p.ctx.Done()
	}
	return nil
}

func (p *Profiler) writeHeapProfile() error {
	f, err := os.Create(p.memPath)
	if err != nil {
		return errors.Wrapf(err, "could not create heap profile %q", p.memPath)
	}
	defer func() { _ = f.Close() }()
	runtime.GC() // Get up-to-date statistics.
	if err := pprof.WriteHeapProfile(f); err != nil {
		return errors.Wrapf(err, "could not write heap profile %q", p.memPath)
	}
	klog.V(1).Infof("Heap profile saved to %q", p.memPath)
	return nil
}
