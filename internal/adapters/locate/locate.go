// Package locate finds executables across the installation conventions the
// preset discovery relies on: the PATH variable, fixed vendor install roots,
// and JetBrains Toolbox version trees. Every probe is best-effort; unreadable
// directories count as "not found".
package locate

import (
	"os"
	"path/filepath"
	"sort"
)

// toolboxChannel is the release channel folder inside a Toolbox product tree.
const toolboxChannel = "ch-0"

// FindInPath walks the PATH directories in declared order and returns the
// first regular file matching command. On Windows, extension-less commands are
// also probed with the conventional executable extensions per directory.
func FindInPath(command string) (string, bool) {
	pathVar, ok := os.LookupEnv("PATH")
	if !ok {
		return "", false
	}

	probeExtensions := filepath.Ext(command) == ""

	for _, dir := range filepath.SplitList(pathVar) {
		if dir == "" {
			continue
		}

		candidate := filepath.Join(dir, command)
		if isRegularFile(candidate) {
			return candidate, true
		}

		if !probeExtensions {
			continue
		}
		for _, ext := range pathExtensions {
			withExt := filepath.Join(dir, command+"."+ext)
			if isRegularFile(withExt) {
				return withExt, true
			}
		}
	}

	return "", false
}

// LatestToolboxExecutable resolves an executable inside a Toolbox version
// tree: root/productCode/ch-0/<build>/bin/exe. Builds are ordered by
// directory name and the lexicographically greatest wins, which approximates
// "newest" as long as build folder names compare as strings.
func LatestToolboxExecutable(root, productCode, exe string) (string, bool) {
	base := filepath.Join(root, productCode, toolboxChannel)

	entries, err := os.ReadDir(base)
	if err != nil {
		return "", false
	}

	var builds []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if isRegularFile(filepath.Join(base, entry.Name(), "bin", exe)) {
			builds = append(builds, entry.Name())
		}
	}
	if len(builds) == 0 {
		return "", false
	}

	sort.Strings(builds)
	return filepath.Join(base, builds[len(builds)-1], "bin", exe), true
}

// VendorExecutable scans the immediate subdirectories of a vendor install
// root (one directory per product) for bin/exe and returns the first hit.
func VendorExecutable(root, exe string) (string, bool) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(root, entry.Name(), "bin", exe)
		if isRegularFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// FindUnderRoots probes every root+suffix combination in order and returns
// the first existing regular file.
func FindUnderRoots(roots []string, suffixes []string) (string, bool) {
	for _, root := range roots {
		if root == "" {
			continue
		}
		for _, suffix := range suffixes {
			candidate := filepath.Join(root, suffix)
			if isRegularFile(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
