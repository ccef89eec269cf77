// Package tracks models portfolio entries and builds them from track
// directories: front matter parsing, markdown body rendering, and locating
// the WAV master and cover images.
package tracks
