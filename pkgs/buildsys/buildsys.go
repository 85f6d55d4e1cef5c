// Package buildsys drives two-stage native build systems: a generator that
// writes low-level build files, followed by an executor that consumes them.
package buildsys

// BuildSystem captures the lifecycle shared by generator/executor pairs
// (meson+ninja, cmake+make, ...). Implementations bind their own directories
// and configuration.
type BuildSystem interface {
	// Configured reports whether the generator already ran successfully for
	// the bound build directory.
	Configured() bool

	// Lifecycle.
	Configure() error
	Build() error
}

// Run executes the lifecycle of bs: Configure is skipped when bs is already
// configured, Build always runs. The first failing stage ends the run and its
// error is returned unchanged; later stages are never started.
func Run(bs BuildSystem) error {
	if !bs.Configured() {
		if err := bs.Configure(); err != nil {
			return err
		}
	}
	return bs.Build()
}
