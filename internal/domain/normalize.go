package domain

import (
	"encoding/json"
	"strings"
)

// NormalizeLinks converts a stored update_links value into a list of URLs.
//
// A value starting with "[" is decoded as a JSON array of strings; a value
// that fails to decode yields an empty list. Anything else is treated as a
// comma-separated list. Entries are trimmed and empty entries dropped.
// The result is never nil.
func NormalizeLinks(raw string) []string {
	raw = strings.TrimSpace(raw)
	links := []string{}
	if raw == "" {
		return links
	}

	var parts []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &parts); err != nil {
			return links
		}
	} else {
		parts = strings.Split(raw, ",")
	}

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			links = append(links, p)
		}
	}
	return links
}

// ParseVoiceLine parses one "name:voice_id" line of a voice import file.
// The split happens on the first colon so voice ids may contain colons.
// ok is false for blank lines, lines without a colon, and lines where
// either side is empty.
func ParseVoiceLine(line string) (name, voiceID string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}
	name, voiceID, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	voiceID = strings.TrimSpace(voiceID)
	if name == "" || voiceID == "" {
		return "", "", false
	}
	return name, voiceID, true
}
