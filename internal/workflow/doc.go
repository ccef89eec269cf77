// Package workflow composes the build pipeline: dependency check, track
// scan, sequential encode and publish, and the final site render. Individual
// track failures are logged and excluded; only a missing encoder, an empty
// track set, or a render failure aborts the run.
package workflow
