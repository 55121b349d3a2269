package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"watch url with v later", "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short url with query", "https://youtu.be/dQw4w9WgXcQ?si=abc", "dQw4w9WgXcQ"},
		{"no scheme", "youtube.com/watch?v=abc123XYZ_-", "abc123XYZ_-"},
		{"not a video url", "https://vimeo.com/12345", ""},
		{"empty", "", ""},
		{"garbage", "not a url at all", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractVideoID(tc.url))
		})
	}
}

func TestThumbnailURL(t *testing.T) {
	assert.Equal(t,
		"https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		ThumbnailURL("dQw4w9WgXcQ"))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 200.00, Round2(10000*0.02))
	assert.Equal(t, 0.02, Round2(0.020000001))
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.236))
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(map[string]interface{}{"iss": "user-1"}, "secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}
