package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedInput marks a stdin request that is not valid JSON or is
// missing a required field. Always fatal.
var ErrMalformedInput = errors.New("malformed input")

type Model struct {
	DisplayName string `json:"display_name"`
}

// Request is the JSON object the host shell writes to stdin, reduced to
// the fields the statusline consumes. Unknown fields are ignored.
type Request struct {
	TranscriptPath string `json:"transcript_path"`
	Cwd            string `json:"cwd"`
	Model          Model  `json:"model"`
}

// Parse reads r to completion and decodes the request. A missing required
// field is as fatal as invalid JSON: there is no line to render without
// all three.
func Parse(r io.Reader) (Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Request{}, fmt.Errorf("%w: reading stdin: %v", ErrMalformedInput, err)
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	switch {
	case req.TranscriptPath == "":
		return Request{}, fmt.Errorf("%w: missing transcript_path", ErrMalformedInput)
	case req.Cwd == "":
		return Request{}, fmt.Errorf("%w: missing cwd", ErrMalformedInput)
	case req.Model.DisplayName == "":
		return Request{}, fmt.Errorf("%w: missing model.display_name", ErrMalformedInput)
	}

	return req, nil
}
