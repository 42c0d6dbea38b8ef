package models

// VideoResult is one item of a video search response.
type VideoResult struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channel_title"`
	Thumbnail    string `json:"thumbnail"`
	PublishedAt  string `json:"published_at"`
}

// VideoStatistics carries per-video engagement counters.
type VideoStatistics struct {
	VideoID      string `json:"video_id"`
	ViewCount    int64  `json:"view_count"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
}

// Comment is a single comment, either top level or a reply.
type Comment struct {
	Author      string `json:"author"`
	Text        string `json:"text"`
	LikeCount   int64  `json:"like_count"`
	PublishedAt string `json:"published_at"`
}

// CommentThread is a top-level comment with its replies.
type CommentThread struct {
	Comment Comment   `json:"comment"`
	Replies []Comment `json:"replies,omitempty"`
}
