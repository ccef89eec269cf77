package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"giraffe/internal/config"
	"giraffe/internal/deps"
)

// Result captures the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// lowSpaceBytes is the threshold below which output disk space is flagged.
const lowSpaceBytes = 512 << 20

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDiskSpace verifies free space at the given path. Missing paths pass;
// directory access is checked separately.
func CheckDiskSpace(name, path string) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (free space unknown: %v)", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	if free < lowSpaceBytes {
		return Result{Name: name, Detail: fmt.Sprintf("%s (low disk space: %d MiB free)", path, free>>20)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d MiB free)", path, free>>20)}
}

// CheckPublishConfig reports whether the object store settings allow uploads.
func CheckPublishConfig(cfg *config.Config) Result {
	const name = "Publishing"
	if cfg == nil || !cfg.PublishEnabled() {
		return Result{Name: name, Detail: "disabled (storage.bucket and storage.base_url not set)"}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("bucket %s", cfg.Storage.Bucket)}
}

// Run evaluates the checks the build command consults before running.
func Run(cfg *config.Config) ([]Result, []deps.Status) {
	results := []Result{
		CheckDirectoryAccess("Tracks directory", cfg.Paths.TracksDir),
		CheckDiskSpace("Output disk space", cfg.Paths.OutputDir),
		CheckPublishConfig(cfg),
	}
	statuses := deps.CheckBinaries([]deps.Requirement{deps.Encoder(cfg.FFmpegBinary())})
	return results, statuses
}
