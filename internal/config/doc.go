// Package config loads and validates builder configuration. Values come from
// defaults, then an optional TOML file, then environment variables (including
// a best-effort .env file), and the result is passed by reference into each
// component instead of being read from ambient global state.
package config
