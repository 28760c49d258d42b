package fetcher

// Response shapes of Instagram's web_profile_info endpoint. Only the fields
// this tool reads are declared.

type webProfileResponse struct {
	Data struct {
		User *userNode `json:"user"`
	} `json:"data"`
	Status string `json:"status"`
}

type userNode struct {
	Username                 string        `json:"username"`
	FullName                 string        `json:"full_name"`
	Biography                string        `json:"biography"`
	ExternalURL              string        `json:"external_url"`
	IsPrivate                bool          `json:"is_private"`
	IsVerified               bool          `json:"is_verified"`
	EdgeFollowedBy           edgeCount     `json:"edge_followed_by"`
	EdgeFollow               edgeCount     `json:"edge_follow"`
	EdgeOwnerToTimelineMedia timelineMedia `json:"edge_owner_to_timeline_media"`
}

type edgeCount struct {
	Count int `json:"count"`
}

type timelineMedia struct {
	Count int `json:"count"`
	Edges []struct {
		Node mediaNode `json:"node"`
	} `json:"edges"`
}

type mediaNode struct {
	Shortcode            string    `json:"shortcode"`
	TakenAtTimestamp     int64     `json:"taken_at_timestamp"`
	IsVideo              bool      `json:"is_video"`
	EdgeLikedBy          edgeCount `json:"edge_liked_by"`
	EdgeMediaPreviewLike edgeCount `json:"edge_media_preview_like"`
	EdgeMediaToComment   edgeCount `json:"edge_media_to_comment"`
	EdgeMediaToCaption   struct {
		Edges []struct {
			Node struct {
				Text string `json:"text"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"edge_media_to_caption"`
}

// likes prefers the owner-visible count and falls back to the preview count,
// which is what the endpoint populates for most public accounts.
func (m mediaNode) likes() int {
	if m.EdgeLikedBy.Count > 0 {
		return m.EdgeLikedBy.Count
	}
	return m.EdgeMediaPreviewLike.Count
}

func (m mediaNode) caption() string {
	if len(m.EdgeMediaToCaption.Edges) == 0 {
		return ""
	}
	return m.EdgeMediaToCaption.Edges[0].Node.Text
}
