package port

import "errors"

var (
	// ErrCampaignNotFound is returned when an operation names a campaign
	// ID that was never issued or has been stopped.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrUnsupportedPlatform is returned for platform strings outside the
	// closed set of supported platforms.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrInvalidConfig is returned when a campaign configuration fails
	// shape validation or a platform builder rejects it.
	ErrInvalidConfig = errors.New("invalid campaign config")

	// ErrInvalidDirection is returned by ScaleCampaign for directions
	// other than "up" and "down".
	ErrInvalidDirection = errors.New("scale direction must be \"up\" or \"down\"")
)
