// Package publish implements the incremental publish pipeline: a comparator
// that decides from remote metadata alone whether an artifact needs
// uploading, and a publisher that performs the upload and records public
// URLs. The remote store is the only manifest of published state; nothing is
// persisted locally between runs.
package publish
