package dashboard

import (
	"strings"

	"github.com/maheshrc27/adspark/internal/models"
)

const dateLayout = "Jan 2, 2006, 03:04 PM"

var channelColors = map[string]string{
	models.ChannelLinkedIn: "#0a66c2",
	models.ChannelX:        "#000000",
	models.ChannelTwitter:  "#000000",
}

func CardTitle(p *models.SocialMediaPost) string {
	if k := models.StringValue(p.Keyword); k != "" {
		return k
	}
	return models.StringValue(p.SocialMediaChannel)
}

// CardSubtitle shows the last edit for published posts, otherwise channel and creation date.
func CardSubtitle(p *models.SocialMediaPost) string {
	if p.IsPublished() && p.UpdatedAt != nil {
		return "Last modified: " + p.UpdatedAt.Local().Format(dateLayout)
	}

	parts := []string{}
	if ch := models.StringValue(p.SocialMediaChannel); ch != "" {
		parts = append(parts, ch)
	}
	if p.CreatedAt != nil {
		parts = append(parts, p.CreatedAt.Local().Format(dateLayout))
	}
	return strings.Join(parts, " · ")
}

func StatusLabel(p *models.SocialMediaPost) string {
	if p.IsPublished() {
		return "Published"
	}
	return p.StatusOrDraft()
}

// ChannelColor falls back to the LinkedIn color for unknown channels.
func ChannelColor(channel string) string {
	if c, ok := channelColors[strings.ToLower(channel)]; ok {
		return c
	}
	return channelColors[models.ChannelLinkedIn]
}

func Content(p *models.SocialMediaPost) string {
	if c := models.StringValue(p.AIResearchOutput); c != "" {
		return c
	}
	return "No content."
}
