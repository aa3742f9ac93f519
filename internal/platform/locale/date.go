package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

var (
	supported = []language.Tag{language.SimplifiedChinese, language.AmericanEnglish}
	matcher   = language.NewMatcher(supported)
	zhWeekday = [...]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}
)

// DateFormatter renders the long calendar date stored on session records.
type DateFormatter struct {
	tag     language.Tag
	english bool
}

// New matches tag against the supported locales; anything unparsable or
// unmatched falls back to Simplified Chinese.
func New(tag string) DateFormatter {
	parsed, err := language.Parse(tag)
	if err != nil {
		return DateFormatter{tag: supported[0]}
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return DateFormatter{tag: supported[0]}
	}
	return DateFormatter{tag: supported[idx], english: idx == 1}
}

func (f DateFormatter) Tag() string { return f.tag.String() }

// LongDate renders year, month, day and weekday, e.g. 2026年10月19日星期一.
func (f DateFormatter) LongDate(t time.Time) string {
	if f.english {
		return t.Format("Monday, January 2, 2006")
	}
	return fmt.Sprintf("%d年%d月%d日%s", t.Year(), int(t.Month()), t.Day(), zhWeekday[t.Weekday()])
}
