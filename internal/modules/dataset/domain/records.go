package domain

// WorshipTrack is one row of the worship music table.
type WorshipTrack struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// BibleStory is one row of the story table of contents.
type BibleStory struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

type Table string

const (
	TableWorship Table = "worship"
	TableStories Table = "stories"
)

const (
	WorshipSourceFile = "worship_music.csv"
	StoriesSourceFile = "beginners_bible_table_of_contents.csv"
	WorshipBundleFile = "worship_music.json"
	StoriesBundleFile = "bible_stories.json"
)
