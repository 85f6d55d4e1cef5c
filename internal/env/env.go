// Package env reads the ambient settings a host build script exposes.
package env

import (
	"os"
	"strings"

	"github.com/qiniu/x/log"
)

// Profile returns the host build profile, as found in $PROFILE.
func Profile() string {
	return os.Getenv("PROFILE")
}

// MesonBin returns the configure command, $MESON or "meson".
func MesonBin() string {
	return lookup("MESON", "meson")
}

// NinjaBin returns the build-executor command, $NINJA or "ninja".
func NinjaBin() string {
	return lookup("NINJA", "ninja")
}

// LogLevel maps $MESONB_LOG_LEVEL to a qiniu/x/log output level.
// Unknown or empty values yield log.Linfo.
func LogLevel() int {
	switch strings.ToLower(os.Getenv("MESONB_LOG_LEVEL")) {
	case "debug":
		return log.Ldebug
	case "warn":
		return log.Lwarn
	case "error":
		return log.Lerror
	}
	return log.Linfo
}

func lookup(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
