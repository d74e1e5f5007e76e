package runner

import "os/exec"

// Fake is a Runner for tests. It records every command and serves canned
// results from Handler, so pipeline flows can run without any real tools.
type Fake struct {
	// Calls holds every command passed to Run or Output, in order.
	Calls []Command

	// Handler, when set, produces the result for each command. A nil
	// Handler makes every command succeed with no output.
	Handler func(Command) ([]byte, error)

	// LookPaths maps program names to resolved paths. A nil map resolves
	// every program; with a non-nil map, absent names fail like PATH
	// misses do.
	LookPaths map[string]string
}

// Run implements Runner.
func (f *Fake) Run(c Command) error {
	f.Calls = append(f.Calls, c)
	if f.Handler == nil {
		return nil
	}
	_, err := f.Handler(c)
	return err
}

// Output implements Runner.
func (f *Fake) Output(c Command) ([]byte, error) {
	f.Calls = append(f.Calls, c)
	if f.Handler == nil {
		return nil, nil
	}
	return f.Handler(c)
}

// Look implements Runner.
func (f *Fake) Look(program string) (string, error) {
	if f.LookPaths == nil {
		return "/usr/bin/" + program, nil
	}
	if path, ok := f.LookPaths[program]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: program, Err: exec.ErrNotFound}
}

// Ran reports whether any recorded command used the given program.
func (f *Fake) Ran(program string) bool {
	for _, c := range f.Calls {
		if c.Program == program {
			return true
		}
	}
	return false
}
