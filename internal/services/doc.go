// Package services defines the shared error taxonomy used across the build
// pipeline. Sentinel errors distinguish external tool failures, validation
// problems, and transient transport issues so callers can decide whether a
// failure excludes one track or aborts the build.
package services
