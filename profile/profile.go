// Package profile selects between pkg/profile and Gio's frame timing
// recorder when profiling nine-patch demos.
package profile

import (
	"fmt"
	"strings"

	"gioui.org/layout"
	"gioui.org/x/profiling"
	"git.sr.ht/~gioverse/ninepatch"
	"github.com/pkg/profile"
)

// Opt names a kind of profile.
type Opt string

const (
	None      Opt = "none"
	CPU       Opt = "cpu"
	Memory    Opt = "mem"
	Block     Opt = "block"
	Goroutine Opt = "goroutine"
	Mutex     Opt = "mutex"
	Trace     Opt = "trace"
	Gio       Opt = "gio"
)

// Opts lists every option in the order they are documented.
var Opts = []Opt{None, CPU, Memory, Block, Goroutine, Mutex, Trace, Gio}

// modes maps the runtime profiles onto pkg/profile.
var modes = map[Opt]func(*profile.Profile){
	CPU:       profile.CPUProfile,
	Memory:    profile.MemProfile,
	Block:     profile.BlockProfile,
	Goroutine: profile.GoroutineProfile,
	Mutex:     profile.MutexProfile,
	Trace:     profile.TraceProfile,
}

// Parse validates s as a profiling option. The empty string means None.
func Parse(s string) (Opt, error) {
	if s == "" {
		return None, nil
	}
	names := make([]string, len(Opts))
	for ii, o := range Opts {
		if string(o) == s {
			return o, nil
		}
		names[ii] = string(o)
	}
	return None, fmt.Errorf("unknown profile %q: use one of [%s]", s, strings.Join(names, ", "))
}

// Profiler drives one profiling session. The zero value profiles nothing.
type Profiler struct {
	Type     Opt
	Starter  func() (stop func())
	Recorder func(gtx layout.Context)

	stop func()
}

// NewProfiler creates a profiler for the option.
func (o Opt) NewProfiler() Profiler {
	if mode, ok := modes[o]; ok {
		return Profiler{
			Type: o,
			Starter: func() func() {
				return profile.Start(mode, profile.Quiet).Stop
			},
		}
	}
	if o == Gio {
		var fr frames
		return Profiler{Type: o, Starter: fr.start, Recorder: fr.record}
	}
	return Profiler{Type: o}
}

// Start profiling. Starting twice without a Stop is a no-op.
func (p *Profiler) Start() {
	if p.Starter == nil || p.stop != nil {
		return
	}
	p.stop = p.Starter()
}

// Stop profiling and flush any output.
func (p *Profiler) Stop() {
	if p.stop == nil {
		return
	}
	p.stop()
	p.stop = nil
}

// Record per-frame statistics, if the profile collects any.
func (p Profiler) Record(gtx layout.Context) {
	if p.Recorder != nil {
		p.Recorder(gtx)
	}
}

// frames records Gio frame timings to CSV.
type frames struct {
	rec *profiling.CSVTimingRecorder
}

func (f *frames) start() func() {
	rec, err := profiling.NewRecorder(nil)
	if err != nil {
		ninepatch.Logger().Warn("profile: starting frame recorder", "err", err)
		return func() {}
	}
	f.rec = rec
	return func() {
		if err := f.rec.Stop(); err != nil {
			ninepatch.Logger().Warn("profile: stopping frame recorder", "err", err)
		}
		f.rec = nil
	}
}

func (f *frames) record(gtx layout.Context) {
	if f.rec != nil {
		f.rec.Profile(gtx)
	}
}
