package profile

import "testing"

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		In    string
		Want  Opt
		Error bool
	}{
		{In: "", Want: None},
		{In: "none", Want: None},
		{In: "cpu", Want: CPU},
		{In: "gio", Want: Gio},
		{In: "heap", Want: None, Error: true},
	} {
		t.Run(tt.In, func(t *testing.T) {
			got, err := Parse(tt.In)
			if (err != nil) != tt.Error {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.Want {
				t.Fatalf("got %q, want %q", got, tt.Want)
			}
		})
	}
}

func TestNewProfilerNone(t *testing.T) {
	p := None.NewProfiler()
	if p.Starter != nil || p.Recorder != nil {
		t.Fatalf("none profiler should be inert")
	}
	p.Start()
	p.Stop()
}

func TestProfilerStartStop(t *testing.T) {
	var starts, stops int
	p := Profiler{
		Type: CPU,
		Starter: func() func() {
			starts++
			return func() { stops++ }
		},
	}
	p.Stop()
	p.Start()
	p.Start()
	p.Stop()
	p.Stop()
	if starts != 1 || stops != 1 {
		t.Fatalf("got %d starts and %d stops, want 1 of each", starts, stops)
	}
	p.Start()
	p.Stop()
	if starts != 2 || stops != 2 {
		t.Fatalf("restart: got %d starts and %d stops", starts, stops)
	}
}

func TestNewProfilerModes(t *testing.T) {
	for _, o := range Opts {
		t.Run(string(o), func(t *testing.T) {
			p := o.NewProfiler()
			if p.Type != o {
				t.Fatalf("type: got %q, want %q", p.Type, o)
			}
			if hasStarter := p.Starter != nil; hasStarter != (o != None) {
				t.Fatalf("starter presence: got %v", hasStarter)
			}
			if hasRecorder := p.Recorder != nil; hasRecorder != (o == Gio) {
				t.Fatalf("recorder presence: got %v", hasRecorder)
			}
		})
	}
}
