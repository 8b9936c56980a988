package domain

// Preference keys understood by the client.
const (
	PrefUserID = "user_id"
	PrefLocale = "locale"
)

// Defaults substituted when a preference has never been stored.
const (
	DefaultUserID = "unknown"
	DefaultLocale = "en"
)

// Preferences is the typed view over the stored key/value pairs.
type Preferences struct {
	UserID string
	Locale string
}
