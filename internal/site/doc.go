// Package site renders the static site from fully populated track records.
// It is pure templating and file copying; all decisions about what a track
// contains happen earlier in the pipeline.
package site
