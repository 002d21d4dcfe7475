package content

import (
	"fmt"
	"math"
	"strings"
)

const wordsPerMinute = 200

// EstimateReadingTime counts words in body and converts them to a reading
// estimate at 200 words per minute, rounded up with a floor of one minute.
func EstimateReadingTime(body []byte) ReadingTime {
	words := len(strings.Fields(string(body)))
	minutes := float64(words) / wordsPerMinute
	shown := int(math.Ceil(minutes))
	if shown < 1 {
		shown = 1
	}
	return ReadingTime{
		Text:    fmt.Sprintf("%d min read", shown),
		Minutes: minutes,
		Words:   words,
	}
}
