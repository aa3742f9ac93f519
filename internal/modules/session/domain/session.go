package domain

// Storage keys of the persisted state. Values stay compatible with the
// browser build: a JSON array of records and a decimal cursor string.
const (
	HistoryKey    = "family_alter_history"
	StoryIndexKey = "family_alter_story_index"
)

type WorshipTrack struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

type BibleStory struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// Record is one finished session. Records are never edited after creation.
type Record struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Worship     string `json:"worship"`
	Story       string `json:"story"`
	StoryNumber int    `json:"storyNumber"`
}

// State is what survives between runs.
type State struct {
	History    []Record
	StoryIndex int
}

// PlaceholderStory is shown while the story list is empty.
var PlaceholderStory = BibleStory{Title: "Loading...", Number: 0}

// Rand draws uniform integers in [0, n).
type Rand interface {
	IntN(n int) int
}

// Listable reports whether a story may appear in the rotation.
func (s BibleStory) Listable() bool {
	return s.Number != 0 && s.Title != ""
}

// PickRandomTrack draws uniformly from tracks; repeats of the previous pick
// are allowed.
func PickRandomTrack(tracks []WorshipTrack, rng Rand) (WorshipTrack, bool) {
	if len(tracks) == 0 {
		return WorshipTrack{}, false
	}
	return tracks[rng.IntN(len(tracks))], true
}

// StoryAt resolves the cursor against stories, wrapping in both directions.
func StoryAt(stories []BibleStory, index int) BibleStory {
	if len(stories) == 0 {
		return PlaceholderStory
	}
	return stories[wrap(index, len(stories))]
}

// NextStoryIndex advances the cursor by one position modulo count.
func NextStoryIndex(current, count int) int {
	if count <= 0 {
		return 0
	}
	return wrap(wrap(current, count)+1, count)
}

// Prepend returns a new history with r first; the input slice is not modified.
func Prepend(history []Record, r Record) []Record {
	out := make([]Record, 0, len(history)+1)
	out = append(out, r)
	return append(out, history...)
}

func wrap(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
