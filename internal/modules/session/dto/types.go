package dto

type TrackOutput struct {
	Name  string
	URL   string
	Order int
}

type StoryOutput struct {
	Number int
	Title  string
}

type RecordOutput struct {
	ID          int64
	Date        string
	Worship     string
	Story       string
	StoryNumber int
}

// SessionView is everything the screen shows at one moment.
type SessionView struct {
	Worship    TrackOutput
	HasWorship bool
	Story      StoryOutput
	StoryIndex int
	StoryCount int
	TrackCount int
	History    []RecordOutput
}

type NewSessionOutput struct {
	Record RecordOutput
	View   SessionView
}

type ExportInput struct {
	Path string
}

type ExportOutput struct {
	Path     string
	Sessions int
}
