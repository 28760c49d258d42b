package analyzer

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/models"
)

// postStats aggregates engagement numbers over the scraped posts.
// Averages use integer floor division; everything is zero for no posts.
type postStats struct {
	AvgLikes    int
	AvgComments int
	VideoRatio  float64
}

func aggregatePostStats(posts []models.PostSummary) postStats {
	if len(posts) == 0 {
		return postStats{}
	}

	var totalLikes, totalComments, videoCount int
	for _, p := range posts {
		totalLikes += p.Likes
		totalComments += p.CommentsCount
		if p.IsVideo {
			videoCount++
		}
	}

	n := len(posts)
	return postStats{
		AvgLikes:    totalLikes / n,
		AvgComments: totalComments / n,
		VideoRatio:  float64(videoCount) / float64(n),
	}
}

// escapeCaption blanks out angle brackets so caption text cannot corrupt the
// <post> fragment delimiters. This is not full XML escaping.
func escapeCaption(caption string) string {
	caption = strings.ReplaceAll(caption, "<", " ")
	return strings.ReplaceAll(caption, ">", " ")
}

// BuildPrompt renders a profile and its recent posts into the single prompt
// sent to the model. It is a pure function of its inputs: the same profile
// and posts always produce the same text.
func BuildPrompt(profile models.ProfileRecord, posts []models.PostSummary) string {
	stats := aggregatePostStats(posts)

	var samples strings.Builder
	for _, p := range posts {
		fmt.Fprintf(&samples, "<post><caption_preview>%s</caption_preview></post>", escapeCaption(p.Caption))
	}

	var sb strings.Builder
	sb.WriteString("You are an expert social media analyst. Your task is to analyze the provided Instagram profile data and generate a structured JSON output. Do not include any introductory text, markdown formatting, or explanations. Return only a valid JSON object.\n\n")

	sb.WriteString("<profile_data>\n")
	fmt.Fprintf(&sb, "Username: %s\n", profile.Username)
	fmt.Fprintf(&sb, "Followers: %d\n", profile.Followers)
	fmt.Fprintf(&sb, "Following: %d\n", profile.Following)
	fmt.Fprintf(&sb, "Posts Count: %d\n", profile.PostsCount)
	fmt.Fprintf(&sb, "Bio: %s\n", profile.Biography)
	fmt.Fprintf(&sb, "External URL: %s\n", profile.ExternalURL)
	fmt.Fprintf(&sb, "Is Verified: %t\n", profile.IsVerified)
	sb.WriteString("</profile_data>\n\n")

	sb.WriteString("<recent_posts_summary>\n")
	fmt.Fprintf(&sb, "Total posts analyzed: %d\n", len(posts))
	fmt.Fprintf(&sb, "Average Likes: %d\n", stats.AvgLikes)
	fmt.Fprintf(&sb, "Average Comments: %d\n", stats.AvgComments)
	fmt.Fprintf(&sb, "Video Ratio: %.2f\n", stats.VideoRatio)
	sb.WriteString("</recent_posts_summary>\n\n")

	sb.WriteString("<post_samples>\n")
	sb.WriteString(samples.String())
	sb.WriteString("\n</post_samples>\n\n")

	sb.WriteString(`Based on the provided data, return a single JSON object with this schema:
{
  "summary": "A concise 4-5 sentence overview of the profile's purpose, content style, and audience.",
  "insights": {
    "content_strategy": "Analyze primary content themes, formats (photo/video), and overall strategy. Estimate posting frequency if possible.",
    "audience_engagement": "Evaluate audience interaction based on likes, comments, and the nature of captions.",
    "brand_analysis": "Assess brand identity clarity (personal, business, influencer) and niche.",
    "growth_indicators": "Identify potential growth drivers or blockers (CTAs, follower/following ratio, content quality).",
    "content_performance": "Comment on recent post performance patterns and standout content types."
  }
}
Ensure the output is strictly valid JSON with double quotes and no trailing commas.`)

	return sb.String()
}
