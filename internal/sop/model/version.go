package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Version bump kinds a MODIFY proposal may ask the engine to compute.
const (
	VersionUpdateMajor = "MAJOR"
	VersionUpdateMinor = "MINOR"
)

// NextVersion computes the successor of a "vMAJOR.MINOR" version string.
// A MAJOR bump resets the minor part. Unparsable versions are treated
// as v1.0.
func NextVersion(current, updateType string) string {
	major, minor := parseVersion(current)
	if updateType == VersionUpdateMajor {
		return fmt.Sprintf("v%d.0", major+1)
	}
	return fmt.Sprintf("v%d.%d", major, minor+1)
}

func parseVersion(v string) (major, minor int) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	parts := strings.SplitN(v, ".", 2)

	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 1 {
		return 1, 0
	}
	if len(parts) == 2 {
		if m, err := strconv.Atoi(parts[1]); err == nil && m >= 0 {
			minor = m
		}
	}
	return major, minor
}
