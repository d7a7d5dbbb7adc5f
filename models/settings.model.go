package models

import "gorm.io/gorm"

// AdminSettings is a singleton row holding site settings and the secret
// overrides the back-office can maintain without a redeploy.
type AdminSettings struct {
	gorm.Model
	LogoURL     string `json:"logo_url"`
	SiteName    string `json:"site_name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`

	PaystackPublicKey string `json:"paystack_public_key"`
	PaystackSecretKey string `json:"-"`
	SiteURL           string `json:"site_url"`
}

// Founder is a singleton row with the founder bio shown on the site
type Founder struct {
	gorm.Model
	Name      string `json:"name"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}
