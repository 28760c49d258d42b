// Package fetcher retrieves public Instagram profile metadata and recent
// posts through the web profile endpoint, returning a ScrapeResult envelope
// that carries failures instead of raising them.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/models"
)

const (
	defaultBaseURL = "https://i.instagram.com/api/v1/users/web_profile_info/"
	igAppID        = "936619743392459"
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	defaultMaxPosts = 8
	captionLimit    = 200
	cacheSize       = 128
)

// ProfileFetcher is the capability the web layer depends on.
type ProfileFetcher interface {
	Fetch(ctx context.Context, username string) models.ScrapeResult
}

// Client fetches profiles with a shared rate limiter and a TTL result cache.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *expirable.LRU[string, models.ScrapeResult]
	baseURL    string
	maxPosts   int
}

var _ ProfileFetcher = (*Client)(nil)

// Options configures a Client. Zero values fall back to defaults; BaseURL is
// overridable for tests.
type Options struct {
	Timeout         time.Duration
	CacheTTL        time.Duration
	MaxPosts        int
	BaseURL         string
	RequestInterval time.Duration
}

func NewClient(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestInterval == 0 {
		opts.RequestInterval = 2 * time.Second
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = time.Hour
	}
	if opts.MaxPosts == 0 {
		opts.MaxPosts = defaultMaxPosts
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(rate.Every(opts.RequestInterval), 1),
		cache:      expirable.NewLRU[string, models.ScrapeResult](cacheSize, nil, opts.CacheTTL),
		baseURL:    opts.BaseURL,
		maxPosts:   opts.MaxPosts,
	}
}

// Fetch returns the profile envelope for a username, serving repeated
// lookups from the cache. Only successful scrapes are cached so transient
// failures get retried.
func (c *Client) Fetch(ctx context.Context, username string) models.ScrapeResult {
	key := strings.ToLower(strings.TrimSpace(username))

	if cached, ok := c.cache.Get(key); ok {
		return cached
	}

	result := c.fetch(ctx, key)
	if result.Success {
		c.cache.Add(key, result)
	}
	return result
}

func (c *Client) fetch(ctx context.Context, username string) models.ScrapeResult {
	if err := c.limiter.Wait(ctx); err != nil {
		return failure(username, err.Error())
	}

	reqURL := c.baseURL + "?username=" + url.QueryEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return failure(username, err.Error())
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-IG-App-ID", igAppID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure(username, err.Error())
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return failure(username, fmt.Sprintf("Profile '%s' not found.", username))
	case http.StatusTooManyRequests:
		return failure(username, "Rate limited by Instagram. Please wait a few minutes and try again.")
	default:
		return failure(username, fmt.Sprintf("instagram api error (status %d)", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(username, err.Error())
	}

	var wire webProfileResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return failure(username, "Instagram changed their response format. Try again later or try a different profile.")
	}

	user := wire.Data.User
	if user == nil {
		return failure(username, fmt.Sprintf("Profile '%s' not found.", username))
	}

	if user.IsPrivate {
		result := failure(username, "Profile is private. Please provide a public profile.")
		result.Profile = models.ProfileRecord{Username: username, IsPrivate: true}
		return result
	}

	profile := models.ProfileRecord{
		Username:    user.Username,
		FullName:    user.FullName,
		Biography:   user.Biography,
		Followers:   user.EdgeFollowedBy.Count,
		Following:   user.EdgeFollow.Count,
		PostsCount:  user.EdgeOwnerToTimelineMedia.Count,
		IsVerified:  user.IsVerified,
		IsPrivate:   user.IsPrivate,
		ExternalURL: user.ExternalURL,
	}
	if profile.Username == "" {
		profile.Username = username
	}

	var posts []models.PostSummary
	for _, edge := range user.EdgeOwnerToTimelineMedia.Edges {
		node := edge.Node
		posts = append(posts, models.PostSummary{
			Date:          time.Unix(node.TakenAtTimestamp, 0).UTC().Format(time.RFC3339),
			Likes:         node.likes(),
			CommentsCount: node.EdgeMediaToComment.Count,
			Caption:       node.caption(),
			IsVideo:       node.IsVideo,
		})
	}

	return models.ScrapeResult{
		Profile:         profile,
		RecentPosts:     preprocessPosts(posts, c.maxPosts, captionLimit),
		ScrapeTimestamp: time.Now().UTC().Format(time.RFC3339),
		Success:         true,
	}
}

// preprocessPosts caps the post count and truncates captions to keep the
// downstream prompt small.
func preprocessPosts(posts []models.PostSummary, maxPosts, limit int) []models.PostSummary {
	if len(posts) > maxPosts {
		posts = posts[:maxPosts]
	}
	processed := make([]models.PostSummary, 0, len(posts))
	for _, p := range posts {
		if runes := []rune(p.Caption); len(runes) > limit {
			p.Caption = string(runes[:limit]) + "..."
		}
		processed = append(processed, p)
	}
	return processed
}

func failure(username, msg string) models.ScrapeResult {
	return models.ScrapeResult{
		Profile:         models.ProfileRecord{Username: username},
		ScrapeTimestamp: time.Now().UTC().Format(time.RFC3339),
		Success:         false,
		Error:           msg,
	}
}
