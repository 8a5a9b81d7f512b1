package models

import (
	"strings"
	"time"
)

// SocialMediaPost is one row of public.social_media_posts. Rows are written by the
// external automation pipeline; this service only reads and deletes them.
type SocialMediaPost struct {
	ID                 string     `db:"id" json:"id"`
	Keyword            *string    `db:"keyword" json:"keyword"`
	AIResearchOutput   *string    `db:"ai_research_output" json:"ai_research_output"`
	GeneratedImageURL  *string    `db:"generated_image_url" json:"generated_image_url"`
	SocialMediaChannel *string    `db:"social_media_channel" json:"social_media_channel"`
	Status             *string    `db:"status" json:"status"`
	ScheduledPostTime  *time.Time `db:"scheduled_post_time" json:"scheduled_post_time"`
	PostedAt           *time.Time `db:"posted_at" json:"posted_at"`
	PostedBy           *string    `db:"posted_by" json:"posted_by"`
	CreatedAt          *time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          *time.Time `db:"updated_at" json:"updated_at"`
}

const (
	PostStatusPublished = "published"
	PostStatusPosted    = "posted"
	PostStatusDraft     = "draft"
)

const (
	ChannelLinkedIn = "linkedin"
	ChannelX        = "x"
	ChannelTwitter  = "twitter"
)

// IsPublished is true only for "published" and "posted", compared case-insensitively.
// Everything else, including a missing status, is a draft.
func (p *SocialMediaPost) IsPublished() bool {
	if p == nil {
		return false
	}
	s := strings.ToLower(StringValue(p.Status))
	return s == PostStatusPublished || s == PostStatusPosted
}

func (p *SocialMediaPost) StatusOrDraft() string {
	if s := StringValue(p.Status); s != "" {
		return s
	}
	return PostStatusDraft
}

func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func StringPtr(s string) *string {
	return &s
}
