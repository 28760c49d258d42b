package models

// ProfileRecord holds the public metadata of an Instagram account.
// It is an immutable input to the analysis pipeline.
type ProfileRecord struct {
	Username    string `json:"username"`
	FullName    string `json:"full_name,omitempty"`
	Biography   string `json:"biography,omitempty"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PostsCount  int    `json:"posts_count"`
	IsVerified  bool   `json:"is_verified"`
	IsPrivate   bool   `json:"is_private"`
	ExternalURL string `json:"external_url,omitempty"`
}

// PostSummary is a condensed view of one post. Captions may be truncated
// upstream; order follows scrape order and is not guaranteed newest-first.
type PostSummary struct {
	Date          string `json:"date"`
	Likes         int    `json:"likes"`
	CommentsCount int    `json:"comments_count"`
	Caption       string `json:"caption"`
	IsVideo       bool   `json:"is_video"`
}

// ScrapeResult is the envelope the profile fetcher hands to callers.
// Failures are carried in Error with Success=false, never as a panic.
type ScrapeResult struct {
	Profile         ProfileRecord `json:"profile"`
	RecentPosts     []PostSummary `json:"recent_posts"`
	ScrapeTimestamp string        `json:"scrape_timestamp"`
	Success         bool          `json:"success"`
	Error           string        `json:"error,omitempty"`
}
