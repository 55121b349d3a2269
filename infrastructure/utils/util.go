package utils

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt"

	"swishview/infrastructure/logger"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

func GenerateToken(payload map[string]interface{}, secretKey string) (string, error) {
	var claims jwt.MapClaims = payload
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		return "", err
	}
	return tokenString, nil
}

// Known YouTube URL shapes: watch?v=, youtu.be/, embed/.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// ExtractVideoID pulls the video identifier out of a YouTube URL. Returns an
// empty string when no known shape matches.
func ExtractVideoID(url string) string {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// ThumbnailURL returns the standard thumbnail location for a video id.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", videoID)
}

// Round2 rounds to two decimals (currency units).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
