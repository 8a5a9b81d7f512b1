package transfer

type ApproveRequest struct {
	RecordID string `json:"record_id"`
}

// CreatePostRequest is the body sent to the create-post webhook. Title is only set for
// hand-written posts.
type CreatePostRequest struct {
	Title         *string  `json:"title,omitempty"`
	PostTopic     string   `json:"post_topic"`
	GenerateImage bool     `json:"generate_image"`
	TextOnlyImage bool     `json:"text_only_image"`
	Theme         string   `json:"theme"`
	Platform      []string `json:"platform"`
	AIGenerated   bool     `json:"ai_generated"`
}

// ApprovalResult is what the dashboard shows after an approve call returns.
type ApprovalResult struct {
	Success bool
	Message string
	PostID  string
}
