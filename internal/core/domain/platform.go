package domain

// Platform identifies an advertising platform supported by the
// orchestrator. The set is closed; dispatch tables over Platform values
// can rely on exhaustiveness.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformGoogleAds Platform = "google_ads"
)

// Platforms lists every supported platform in a stable order.
func Platforms() []Platform {
	return []Platform{PlatformFacebook, PlatformInstagram, PlatformTwitter, PlatformGoogleAds}
}

// ParsePlatform validates a platform string against the closed set. The
// second return value reports whether the input named a supported platform.
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(s) {
	case PlatformFacebook, PlatformInstagram, PlatformTwitter, PlatformGoogleAds:
		return Platform(s), true
	}
	return "", false
}

func (p Platform) String() string { return string(p) }
