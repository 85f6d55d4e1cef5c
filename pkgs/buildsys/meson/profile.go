package meson

import (
	"fmt"

	"github.com/goplus/meson/internal/env"
)

// Profile is a meson build type understood by this package.
type Profile string

const (
	Release Profile = "release"
	Debug   Profile = "debug"
)

// Valid reports whether p is one of Release or Debug.
func (p Profile) Valid() bool {
	return p == Release || p == Debug
}

// ParseProfile maps a host build profile to a Profile. Only "release" and
// "debug" are accepted; there is no default.
func ParseProfile(s string) (Profile, error) {
	p := Profile(s)
	if !p.Valid() {
		return "", fmt.Errorf("meson: unknown build profile %q", s)
	}
	return p, nil
}

// MustProfile is like ParseProfile but panics on an unknown value.
func MustProfile(s string) Profile {
	p, err := ParseProfile(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ProfileFromEnv returns the profile named by $PROFILE, as set by the host
// build. It panics if the variable holds anything but "release" or "debug".
func ProfileFromEnv() Profile {
	return MustProfile(env.Profile())
}
