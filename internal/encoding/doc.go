// Package encoding wraps the external ffmpeg binary behind a Client
// interface so the build pipeline can transcode WAV masters to MP3 and tests
// can swap in fakes without executing the real encoder.
package encoding
