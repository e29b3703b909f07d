package transcript

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrTranscriptUnreadable marks a transcript file that cannot be opened or
// read. Always fatal. Per-line parse failures are a separate, tolerated
// category and never surface here.
var ErrTranscriptUnreadable = errors.New("transcript unreadable")

// record maps the slice of the JSONL structure we care about. Everything
// below the top level is optional; a line missing message.usage is simply
// not a usage record.
type record struct {
	Message *struct {
		Usage *struct {
			CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
			CacheReadInputTokens     int `json:"cache_read_input_tokens"`
		} `json:"usage"`
	} `json:"message"`
}

// LatestUsage streams the transcript at path line by line and returns the
// token sum of the last line carrying a positive usage snapshot, or 0 when
// no line does. Each snapshot is already cumulative, so a later reading
// replaces the previous one rather than adding to it.
func LatestUsage(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTranscriptUnreadable, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024) // 10MB max line

	usage := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		if rec.Message == nil || rec.Message.Usage == nil {
			continue
		}

		sum := rec.Message.Usage.CacheCreationInputTokens + rec.Message.Usage.CacheReadInputTokens
		if sum > 0 {
			usage = sum
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTranscriptUnreadable, err)
	}

	return usage, nil
}
