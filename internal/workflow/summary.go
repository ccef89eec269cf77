package workflow

// Summary tallies what a build run did.
type Summary struct {
	Tracks        int
	Excluded      int
	Encoded       int
	EncodeSkipped int
	EncodeFailed  int
	Uploaded      int
	UploadSkipped int
	UploadFailed  int
}
