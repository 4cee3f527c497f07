package oauth

// Identity is the profile resolved from a third-party provider token.
type Identity struct {
	Email     string
	Name      string
	AvatarURL string
	Provider  string
}
