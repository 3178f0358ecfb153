package pubsite

// SiteConfig holds the identity and display settings of a site.
type SiteConfig struct {
	Website          string `json:"website" yaml:"website"`                   // Deployed origin, absolute URL
	Author           string `json:"author" yaml:"author"`                     // Display name
	Desc             string `json:"desc" yaml:"desc"`                         // Description for meta tags and feeds
	Title            string `json:"title" yaml:"title"`                       // Site display name
	OGImage          string `json:"ogImage" yaml:"ogImage"`                   // Social preview image filename
	LightAndDarkMode bool   `json:"lightAndDarkMode" yaml:"lightAndDarkMode"` // Enable the theme toggle
	PostPerPage      int    `json:"postPerPage" yaml:"postPerPage"`           // Entries per listing page, > 0
}

// LogoImage controls how the site logo is rendered.
type LogoImage struct {
	Enable bool `json:"enable" yaml:"enable"`
	SVG    bool `json:"svg" yaml:"svg"`
	Width  int  `json:"width" yaml:"width"`
	Height int  `json:"height" yaml:"height"`
}

// SocialLink is one external profile shown in the social icon area.
// Slice order is display order.
type SocialLink struct {
	Name      string `json:"name" yaml:"name"`
	Href      string `json:"href" yaml:"href"`
	LinkTitle string `json:"linkTitle" yaml:"linkTitle"`
	Active    bool   `json:"active" yaml:"active"`
}
