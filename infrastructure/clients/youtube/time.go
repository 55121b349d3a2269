package youtube

import "time"

func parsePublishedAt(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}
