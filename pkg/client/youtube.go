package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"dashboard-aggregator/internal/models"
)

// YouTubeClient calls the YouTube Data API for video search, per-video
// statistics, and comment threads.
type YouTubeClient struct {
	*BaseClient
	apiKey  string
	baseURL string
}

type youtubeThumbnails struct {
	Default struct {
		URL string `json:"url"`
	} `json:"default"`
	Medium struct {
		URL string `json:"url"`
	} `json:"medium"`
	High struct {
		URL string `json:"url"`
	} `json:"high"`
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string            `json:"title"`
			Description  string            `json:"description"`
			ChannelTitle string            `json:"channelTitle"`
			PublishedAt  string            `json:"publishedAt"`
			Thumbnails   youtubeThumbnails `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type youtubeVideosResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type youtubeComment struct {
	Snippet struct {
		AuthorDisplayName string `json:"authorDisplayName"`
		TextDisplay       string `json:"textDisplay"`
		LikeCount         int64  `json:"likeCount"`
		PublishedAt       string `json:"publishedAt"`
	} `json:"snippet"`
}

type youtubeCommentThreadsResponse struct {
	Items []struct {
		Snippet struct {
			TopLevelComment youtubeComment `json:"topLevelComment"`
		} `json:"snippet"`
		Replies struct {
			Comments []youtubeComment `json:"comments"`
		} `json:"replies"`
	} `json:"items"`
}

func NewYouTubeClient(apiKey string, config ClientConfig, logger *zap.Logger) *YouTubeClient {
	return &YouTubeClient{
		BaseClient: NewBaseClient("youtube", config, logger),
		apiKey:     apiKey,
		baseURL:    "https://www.googleapis.com/youtube/v3",
	}
}

// Search returns up to limit videos matching the query.
func (c *YouTubeClient) Search(ctx context.Context, query string, limit int) ([]models.VideoResult, error) {
	endpoint := fmt.Sprintf("%s/search?part=snippet&q=%s&type=video&maxResults=%d&key=%s",
		c.baseURL, url.QueryEscape(query), limit, c.apiKey)

	var response youtubeSearchResponse
	if err := c.GetJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}

	videos := make([]models.VideoResult, 0, len(response.Items))
	for _, item := range response.Items {
		videos = append(videos, models.VideoResult{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			Thumbnail:    bestThumbnail(item.Snippet.Thumbnails),
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}

// Statistics returns the engagement counters of one video.
func (c *YouTubeClient) Statistics(ctx context.Context, videoID string) (*models.VideoStatistics, error) {
	endpoint := fmt.Sprintf("%s/videos?part=statistics&id=%s&key=%s",
		c.baseURL, url.QueryEscape(videoID), c.apiKey)

	var response youtubeVideosResponse
	if err := c.GetJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch video details: %w", err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("video not found: %s", videoID)
	}

	stats := response.Items[0].Statistics
	viewCount, _ := strconv.ParseInt(stats.ViewCount, 10, 64)
	likeCount, _ := strconv.ParseInt(stats.LikeCount, 10, 64)
	commentCount, _ := strconv.ParseInt(stats.CommentCount, 10, 64)

	return &models.VideoStatistics{
		VideoID:      response.Items[0].ID,
		ViewCount:    viewCount,
		LikeCount:    likeCount,
		CommentCount: commentCount,
	}, nil
}

// Comments returns up to limit top-level comment threads with replies.
func (c *YouTubeClient) Comments(ctx context.Context, videoID string, limit int) ([]models.CommentThread, error) {
	endpoint := fmt.Sprintf("%s/commentThreads?part=snippet,replies&videoId=%s&maxResults=%d&key=%s",
		c.baseURL, url.QueryEscape(videoID), limit, c.apiKey)

	var response youtubeCommentThreadsResponse
	if err := c.GetJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	threads := make([]models.CommentThread, 0, len(response.Items))
	for _, item := range response.Items {
		thread := models.CommentThread{
			Comment: commentFromSnippet(item.Snippet.TopLevelComment),
		}
		for _, reply := range item.Replies.Comments {
			thread.Replies = append(thread.Replies, commentFromSnippet(reply))
		}
		threads = append(threads, thread)
	}
	return threads, nil
}

// Summary extracts the top trending search result for the dashboard tile.
func (c *YouTubeClient) Summary(ctx context.Context) (models.SourceSummary, error) {
	videos, err := c.Search(ctx, "trending", 1)
	if err != nil {
		return models.SourceSummary{}, err
	}
	if len(videos) == 0 {
		return models.SourceSummary{}, fmt.Errorf("no videos found")
	}

	top := videos[0]
	image := top.Thumbnail
	if image == "" {
		image = models.PlaceholderImage("YouTube")
	}

	return models.SourceSummary{
		Title:       top.Title,
		Description: top.Description,
		APIName:     "YouTube API",
		Image:       image,
	}, nil
}

func commentFromSnippet(comment youtubeComment) models.Comment {
	return models.Comment{
		Author:      comment.Snippet.AuthorDisplayName,
		Text:        comment.Snippet.TextDisplay,
		LikeCount:   comment.Snippet.LikeCount,
		PublishedAt: comment.Snippet.PublishedAt,
	}
}

func bestThumbnail(thumbnails youtubeThumbnails) string {
	if thumbnails.Medium.URL != "" {
		return thumbnails.Medium.URL
	}
	if thumbnails.High.URL != "" {
		return thumbnails.High.URL
	}
	return thumbnails.Default.URL
}
