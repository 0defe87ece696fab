package util

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fenceJSONRe = regexp.MustCompile("(?is)```json\\s*(.*?)```")
	fenceAnyRe  = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)```")
)

// ExtractJSON pulls a JSON payload out of free-form model text. Strategies
// are attempted in order:
//
//  1. a fenced block tagged as json
//  2. any fenced code block
//  3. the whole text, if it parses directly
//  4. the outermost {...} span, if it parses
//  5. the outermost [...] span, if it parses
//
// A fence match wins even if its content turns out to be invalid JSON; the
// caller's parse step decides. Returns false when no strategy applies.
func ExtractJSON(text string) (json.RawMessage, bool) {
	if m := fenceJSONRe.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		return json.RawMessage(candidate), true
	}
	if m := fenceAnyRe.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		return json.RawMessage(candidate), true
	}
	if json.Valid([]byte(text)) {
		return json.RawMessage(text), true
	}
	if raw, ok := sliceSpan(text, '{', '}'); ok {
		return raw, true
	}
	if raw, ok := sliceSpan(text, '[', ']'); ok {
		return raw, true
	}
	return nil, false
}

func sliceSpan(text string, open, close byte) (json.RawMessage, bool) {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}
	slice := text[start : end+1]
	if !json.Valid([]byte(slice)) {
		return nil, false
	}
	return json.RawMessage(slice), true
}
