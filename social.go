package pubsite

// Platform names a social network. It doubles as the icon lookup key.
type Platform string

const (
	Github    Platform = "Github"
	Facebook  Platform = "Facebook"
	Instagram Platform = "Instagram"
	LinkedIn  Platform = "LinkedIn"
	Mail      Platform = "Mail"
	Twitter   Platform = "Twitter"
	Twitch    Platform = "Twitch"
	YouTube   Platform = "YouTube"
	WhatsApp  Platform = "WhatsApp"
	Snapchat  Platform = "Snapchat"
	Pinterest Platform = "Pinterest"
	TikTok    Platform = "TikTok"
	CodePen   Platform = "CodePen"
	Discord   Platform = "Discord"
	GitLab    Platform = "GitLab"
	Reddit    Platform = "Reddit"
	Skype     Platform = "Skype"
	Steam     Platform = "Steam"
	Telegram  Platform = "Telegram"
	Mastodon  Platform = "Mastodon"
)

var knownPlatforms = map[Platform]struct{}{
	Github: {}, Facebook: {}, Instagram: {}, LinkedIn: {}, Mail: {},
	Twitter: {}, Twitch: {}, YouTube: {}, WhatsApp: {}, Snapchat: {},
	Pinterest: {}, TikTok: {}, CodePen: {}, Discord: {}, GitLab: {},
	Reddit: {}, Skype: {}, Steam: {}, Telegram: {}, Mastodon: {},
}

// IsKnownPlatform reports whether name is a supported social platform.
func IsKnownPlatform(name string) bool {
	_, ok := knownPlatforms[Platform(name)]
	return ok
}

// ComputeLinkTitle builds the accessible label of a social link.
// The leading space is part of the established output format.
func ComputeLinkTitle(title, platform string) string {
	return " " + title + " on " + platform
}

// NewSocial creates a social link whose title is derived from site.
func NewSocial(site SiteConfig, name Platform, href string, active bool) SocialLink {
	return SocialLink{
		Name:      string(name),
		Href:      href,
		LinkTitle: ComputeLinkTitle(site.Title, string(name)),
		Active:    active,
	}
}

// ActiveSocials returns the links with Active set, keeping their relative
// order. The result never shares a backing array with links.
func ActiveSocials(links []SocialLink) []SocialLink {
	out := make([]SocialLink, 0, len(links))
	for _, l := range links {
		if l.Active {
			out = append(out, l)
		}
	}
	return out
}
