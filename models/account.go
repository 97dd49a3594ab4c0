package models

import "time"

// Platform identifies the social network a connected account belongs to.
type Platform string

// Supported social platforms. Any other value is rejected at validation time.
const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformLinkedIn  Platform = "linkedin"
)

// Platforms lists every supported platform in a stable order.
var Platforms = []Platform{
	PlatformInstagram,
	PlatformTwitter,
	PlatformYouTube,
	PlatformTikTok,
	PlatformLinkedIn,
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// SocialAccount represents a social platform account linked to a user.
// An account is owned by exactly one user and may only be deleted by its owner.
type SocialAccount struct {
	// ID is the internal unique identifier of the account record.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id"`

	// Platform is the social network this account lives on.
	Platform Platform `json:"platform"`

	// AccountName is the display name of the account on its platform.
	// 2-100 characters.
	AccountName string `json:"account_name"`

	// ConnectedAt is the timestamp when the account was linked.
	ConnectedAt time.Time `json:"connected_at"`
}

// TableName returns the name of the database table
// associated with the SocialAccount model.
func (a SocialAccount) TableName() string {
	return "social_accounts"
}
