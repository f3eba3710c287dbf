// Package tzone resolves timezone names and lists the zones known to the
// system timezone database.
package tzone

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// Candidate zoneinfo locations, in lookup order. These mirror the paths
// the time package itself consults.
var zoneDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

// Resolve maps a timezone flag value to a location. The empty string keeps
// UTC, "local" looks up the system timezone, and anything else is treated
// as an IANA name.
func Resolve(name string) (*time.Location, error) {
	switch name {
	case "":
		return time.UTC, nil
	case "local":
		tz, err := tzlocal.RuntimeTZ()
		if err != nil {
			return nil, fmt.Errorf("failed to look up system timezone: %w", err)
		}
		name = tz
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%s is not a known timezone", name)
	}
	return loc, nil
}

// List returns the IANA zone names found in the system timezone database,
// sorted. When patterns are given, only names matching at least one glob
// pattern (doublestar syntax, so "America/**" works) are returned.
func List(patterns []string) ([]string, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
	}

	dir, err := findZoneDir()
	if err != nil {
		return nil, err
	}

	var names []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		if d.IsDir() {
			// The posix/ and right/ trees duplicate every zone.
			if name == "posix" || name == "right" {
				return filepath.SkipDir
			}
			return nil
		}
		if !isZoneName(name) {
			return nil
		}
		if len(patterns) == 0 {
			names = append(names, name)
			return nil
		}
		for _, pattern := range patterns {
			// Pattern validity was checked up front.
			if ok, _ := doublestar.Match(pattern, name); ok {
				names = append(names, name)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

func findZoneDir() (string, error) {
	for _, dir := range zoneDirs {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("no timezone database found")
}

// isZoneName filters out the non-zone files that live alongside the zone
// data (zone.tab, leapseconds, posixrules, ...): real zone names start
// with an uppercase letter and contain no dot.
func isZoneName(name string) bool {
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			return false
		}
	}
	return true
}
