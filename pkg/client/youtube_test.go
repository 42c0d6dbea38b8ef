package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const youtubeSearchFixture = `{
	"items": [
		{
			"id": {"videoId": "vid-1"},
			"snippet": {
				"title": "Trending video",
				"description": "Everyone is watching this",
				"channelTitle": "Example Channel",
				"publishedAt": "2024-07-01T00:00:00Z",
				"thumbnails": {
					"default": {"url": "https://img.example.com/default.jpg"},
					"medium": {"url": "https://img.example.com/medium.jpg"},
					"high": {"url": "https://img.example.com/high.jpg"}
				}
			}
		}
	]
}`

func newTestYouTubeClient(t *testing.T, status int, body string) (*YouTubeClient, *http.Request) {
	t.Helper()
	server, last := jsonServer(t, status, body)
	c := NewYouTubeClient("test-key", testClientConfig, zap.NewNop())
	c.baseURL = server.URL
	return c, last
}

func TestYouTubeSearch(t *testing.T) {
	c, last := newTestYouTubeClient(t, http.StatusOK, youtubeSearchFixture)

	videos, err := c.Search(context.Background(), "trending", 10)
	require.NoError(t, err)
	require.Len(t, videos, 1)

	assert.Equal(t, "vid-1", videos[0].VideoID)
	assert.Equal(t, "Trending video", videos[0].Title)
	assert.Equal(t, "https://img.example.com/medium.jpg", videos[0].Thumbnail)

	assert.Equal(t, "/search", last.URL.Path)
	assert.Equal(t, "video", last.URL.Query().Get("type"))
	assert.Equal(t, "10", last.URL.Query().Get("maxResults"))
}

func TestYouTubeStatistics(t *testing.T) {
	c, last := newTestYouTubeClient(t, http.StatusOK, `{
		"items": [
			{
				"id": "vid-1",
				"statistics": {"viewCount": "12345", "likeCount": "678", "commentCount": "90"}
			}
		]
	}`)

	stats, err := c.Statistics(context.Background(), "vid-1")
	require.NoError(t, err)

	assert.Equal(t, int64(12345), stats.ViewCount)
	assert.Equal(t, int64(678), stats.LikeCount)
	assert.Equal(t, int64(90), stats.CommentCount)
	assert.Equal(t, "/videos", last.URL.Path)
	assert.Equal(t, "statistics", last.URL.Query().Get("part"))
}

func TestYouTubeStatisticsNotFound(t *testing.T) {
	c, _ := newTestYouTubeClient(t, http.StatusOK, `{"items": []}`)

	_, err := c.Statistics(context.Background(), "missing")
	assert.Error(t, err)
}

func TestYouTubeComments(t *testing.T) {
	c, last := newTestYouTubeClient(t, http.StatusOK, `{
		"items": [
			{
				"snippet": {
					"topLevelComment": {
						"snippet": {"authorDisplayName": "alice", "textDisplay": "great video", "likeCount": 3, "publishedAt": "2024-07-02T00:00:00Z"}
					}
				},
				"replies": {
					"comments": [
						{"snippet": {"authorDisplayName": "bob", "textDisplay": "agreed", "likeCount": 1, "publishedAt": "2024-07-02T01:00:00Z"}}
					]
				}
			}
		]
	}`)

	threads, err := c.Comments(context.Background(), "vid-1", 20)
	require.NoError(t, err)
	require.Len(t, threads, 1)

	assert.Equal(t, "alice", threads[0].Comment.Author)
	assert.Equal(t, int64(3), threads[0].Comment.LikeCount)
	require.Len(t, threads[0].Replies, 1)
	assert.Equal(t, "bob", threads[0].Replies[0].Author)

	assert.Equal(t, "/commentThreads", last.URL.Path)
	assert.Equal(t, "vid-1", last.URL.Query().Get("videoId"))
	assert.Equal(t, "20", last.URL.Query().Get("maxResults"))
}

func TestYouTubeSummary(t *testing.T) {
	c, _ := newTestYouTubeClient(t, http.StatusOK, youtubeSearchFixture)

	summary, err := c.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Trending video", summary.Title)
	assert.Equal(t, "YouTube API", summary.APIName)
	assert.Equal(t, "https://img.example.com/medium.jpg", summary.Image)
}

func TestYouTubeSummaryNoResults(t *testing.T) {
	c, _ := newTestYouTubeClient(t, http.StatusOK, `{"items": []}`)

	_, err := c.Summary(context.Background())
	assert.Error(t, err)
}
