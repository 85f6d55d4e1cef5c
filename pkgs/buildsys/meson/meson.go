// Package meson configures and builds meson projects from a host build script.
//
// A build is two commands run in sequence:
//
//	meson setup --buildtype <profile> [-D<k>=<v>]... [--native-file <path>] <build_dir>
//	ninja [install]
//
// The setup step runs from the project directory and is skipped when the
// build directory already holds a build.ninja. Changing options therefore
// requires clearing the build directory first. ninja always runs, from the
// build directory.
//
// Any failure terminates the process: a half-configured tree is not safe to
// continue from.
package meson

import (
	"os"
	"path/filepath"

	"github.com/goplus/meson/internal/env"
	"github.com/goplus/meson/pkgs/buildsys"
	"github.com/qiniu/x/log"
)

// MarkerFile is written by a successful meson setup into the build directory.
const MarkerFile = "build.ninja"

// fatal terminates the process. Tests replace it.
var fatal = log.Fatal

// Meson drives meson and ninja.
type Meson struct {
	MesonBin string
	NinjaBin string
	Runner   Runner
}

// New returns a Meson that runs $MESON and $NINJA (meson and ninja by
// default) as child processes.
func New() *Meson {
	return &Meson{
		MesonBin: env.MesonBin(),
		NinjaBin: env.NinjaBin(),
		Runner:   &ExecRunner{},
	}
}

// Build configures projectDir into buildDir if needed and runs ninja there,
// using a default Meson. See (*Meson).Build.
func Build(projectDir, buildDir string, cfg Config, profile Profile) {
	New().Build(projectDir, buildDir, cfg, profile)
}

// Build configures projectDir into buildDir unless buildDir is already
// configured, then runs ninja (ninja install if cfg asks for it) in buildDir.
//
// Build does not return on failure: a command that cannot be started or
// exits nonzero ends the process. An invalid profile panics.
func (m *Meson) Build(projectDir, buildDir string, cfg Config, profile Profile) {
	if !profile.Valid() {
		panic("meson: unknown build profile " + string(profile))
	}
	s := &session{
		m:          m,
		projectDir: projectDir,
		buildDir:   buildDir,
		cfg:        cfg,
		profile:    profile,
	}
	if err := buildsys.Run(s); err != nil {
		fatal(err)
	}
}

// IsConfigured reports whether dir holds the output of a successful meson setup.
func IsConfigured(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, MarkerFile))
	return err == nil
}

// session binds one Build call to the buildsys lifecycle.
type session struct {
	m          *Meson
	projectDir string
	buildDir   string
	cfg        Config
	profile    Profile
}

var _ buildsys.BuildSystem = (*session)(nil)

func (s *session) Configured() bool {
	if IsConfigured(s.buildDir) {
		log.Infof("meson: %s already configured, skipping setup", s.buildDir)
		return true
	}
	return false
}

func (s *session) Configure() error {
	return s.m.run(&Command{
		Name: s.m.mesonBin(),
		Args: ConfigureArgs(s.buildDir, s.cfg, s.profile),
		Dir:  s.projectDir,
	})
}

func (s *session) Build() error {
	return s.m.run(&Command{
		Name: s.m.ninjaBin(),
		Args: BuildArgs(s.cfg),
		Dir:  s.buildDir,
	})
}

func (m *Meson) run(cmd *Command) error {
	log.Debugf("meson: (cd %s && %s)", cmd.Dir, cmd)
	r := m.Runner
	if r == nil {
		r = &ExecRunner{}
	}
	return r.Run(cmd)
}

func (m *Meson) mesonBin() string {
	if m.MesonBin != "" {
		return m.MesonBin
	}
	return "meson"
}

func (m *Meson) ninjaBin() string {
	if m.NinjaBin != "" {
		return m.NinjaBin
	}
	return "ninja"
}
