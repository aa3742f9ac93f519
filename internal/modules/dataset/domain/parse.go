package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseWorshipRow splits an unquoted "Name,Music URL,Order" row. The name is
// the first field and the order the last; everything between is rejoined so a
// URL may carry commas. Commas in the name or order are not supported.
func ParseWorshipRow(line string) (WorshipTrack, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return WorshipTrack{}, false
	}
	parts := strings.Split(line, ",")
	last := len(parts) - 1
	track := WorshipTrack{Name: parts[0]}
	if last > 0 {
		track.URL = strings.Join(parts[1:last], ",")
	}
	if order, ok := parseLeadingInt(parts[last]); ok {
		track.Order = order
	}
	return track, true
}

// ParseStoryRow splits a "Number,Title" row. Rows whose number does not parse
// or is zero, and rows with an empty title, are dropped.
func ParseStoryRow(line string) (BibleStory, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return BibleStory{}, false
	}
	number, rest, _ := strings.Cut(line, ",")
	n, ok := parseLeadingInt(number)
	if !ok || n == 0 {
		return BibleStory{}, false
	}
	title := strings.TrimSpace(rest)
	if title == "" {
		return BibleStory{}, false
	}
	return BibleStory{Number: n, Title: title}, true
}

func ParseWorshipTable(content string) []WorshipTrack {
	tracks := []WorshipTrack{}
	for _, line := range dataLines(content) {
		if track, ok := ParseWorshipRow(line); ok {
			tracks = append(tracks, track)
		}
	}
	return tracks
}

func ParseStoryTable(content string) []BibleStory {
	stories := []BibleStory{}
	for _, line := range dataLines(content) {
		if story, ok := ParseStoryRow(line); ok {
			stories = append(stories, story)
		}
	}
	return stories
}

// dataLines returns every line after the header.
func dataLines(content string) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	return lines[1:]
}

// parseLeadingInt reads an optionally signed run of decimal digits after
// leading whitespace and ignores whatever follows, so "12 " and "12abc" both
// give 12. No digits, or a value that overflows int, is not a number.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
