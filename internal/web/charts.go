package web

import (
	"fmt"
	"sort"
	"time"

	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/models"
)

// Chart payloads are data-only: the page draws them client-side with the
// plotly bundle referenced from the template.

type ChartSet struct {
	EngagementOverview  BarChart   `json:"engagement_overview"`
	PostPerformance     LineChart  `json:"post_performance"`
	ContentDistribution PieChart   `json:"content_distribution"`
	ProfileStats        StatsChart `json:"profile_stats"`
}

// BarChart feeds the engagement overview. Empty marks a no-posts placeholder.
type BarChart struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Empty  bool     `json:"empty"`
}

// LineChart feeds the per-post performance trend, sorted oldest-first.
type LineChart struct {
	Dates    []string `json:"dates"`
	Likes    []int    `json:"likes"`
	Comments []int    `json:"comments"`
	Empty    bool     `json:"empty"`
}

// PieChart feeds the photo/video distribution.
type PieChart struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Empty  bool     `json:"empty"`
}

// StatsChart feeds the headline profile indicators.
type StatsChart struct {
	Followers     int     `json:"followers"`
	Following     int     `json:"following"`
	PostsCount    int     `json:"posts_count"`
	FollowerRatio float64 `json:"follower_ratio"`
}

func BuildCharts(profile models.ProfileRecord, posts []models.PostSummary) ChartSet {
	return ChartSet{
		EngagementOverview:  buildEngagementOverview(profile, posts),
		PostPerformance:     buildPostPerformance(posts),
		ContentDistribution: buildContentDistribution(posts),
		ProfileStats:        buildProfileStats(profile),
	}
}

func buildEngagementOverview(profile models.ProfileRecord, posts []models.PostSummary) BarChart {
	if len(posts) == 0 {
		return BarChart{Empty: true}
	}

	var totalLikes, totalComments int
	for _, p := range posts {
		totalLikes += p.Likes
		totalComments += p.CommentsCount
	}
	n := len(posts)

	return BarChart{
		Labels: []string{"Followers", "Following", "Total Posts", "Avg Likes/Post", "Avg Comments/Post"},
		Values: []int{profile.Followers, profile.Following, profile.PostsCount, totalLikes / n, totalComments / n},
	}
}

func buildPostPerformance(posts []models.PostSummary) LineChart {
	if len(posts) == 0 {
		return LineChart{Empty: true}
	}

	sorted := make([]models.PostSummary, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	chart := LineChart{}
	for i, p := range sorted {
		chart.Dates = append(chart.Dates, shortDate(p.Date, i))
		chart.Likes = append(chart.Likes, p.Likes)
		chart.Comments = append(chart.Comments, p.CommentsCount)
	}
	return chart
}

// shortDate renders an ISO timestamp as "MM/DD", falling back to a
// positional label when the timestamp is absent or unparseable.
func shortDate(iso string, index int) string {
	if iso != "" {
		if ts, err := time.Parse(time.RFC3339, iso); err == nil {
			return ts.Format("01/02")
		}
	}
	return fmt.Sprintf("Post %d", index+1)
}

func buildContentDistribution(posts []models.PostSummary) PieChart {
	if len(posts) == 0 {
		return PieChart{Empty: true}
	}

	videos := 0
	for _, p := range posts {
		if p.IsVideo {
			videos++
		}
	}

	return PieChart{
		Labels: []string{"Photos/Carousels", "Videos/Reels"},
		Values: []int{len(posts) - videos, videos},
	}
}

func buildProfileStats(profile models.ProfileRecord) StatsChart {
	ratio := 0.0
	if profile.Following > 0 {
		ratio = float64(profile.Followers) / float64(profile.Following)
	}
	return StatsChart{
		Followers:     profile.Followers,
		Following:     profile.Following,
		PostsCount:    profile.PostsCount,
		FollowerRatio: ratio,
	}
}
