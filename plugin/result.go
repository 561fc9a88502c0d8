package plugin

import (
	"encoding/json"
)

// ErrMsgFileNotFound is the soft error reported when a processed file does not exist.
const ErrMsgFileNotFound = "File not found"

// FileResult is the record a plugin returns from ProcessFile. A failed run
// carries only the Error field; a successful run always carries the message,
// byte size, and timestamp, even when the file is empty.
type FileResult struct {
	Error       string `json:"error" yaml:"error,omitempty"`
	Message     string `json:"message" yaml:"message,omitempty"`
	FileSize    int64  `json:"file_size" yaml:"file_size,omitempty"`
	ProcessedAt string `json:"processed_at" yaml:"processed_at,omitempty"`
}

type fileResultFailure struct {
	Error string `json:"error"`
}

type fileResultSuccess struct {
	Message     string `json:"message"`
	FileSize    int64  `json:"file_size"`
	ProcessedAt string `json:"processed_at"`
}

// MarshalJSON keeps the wire shape of the two outcomes distinct: a failure
// serializes to exactly {"error":"..."}, a success to the full record with
// file_size present even at zero.
func (r *FileResult) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(fileResultFailure{Error: r.Error})
	}

	return json.Marshal(fileResultSuccess{
		Message:     r.Message,
		FileSize:    r.FileSize,
		ProcessedAt: r.ProcessedAt,
	})
}

// NotFoundResult returns the canonical result for a missing file.
func NotFoundResult() *FileResult {
	return &FileResult{Error: ErrMsgFileNotFound}
}

// Failed reports whether the result carries a soft error.
func (r *FileResult) Failed() bool {
	return r.Error != ""
}
