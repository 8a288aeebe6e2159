package auth

// Identity is what an identity provider vouches for after a successful
// sign-in. Subject is stable for the lifetime of the account and becomes the
// user id.
type Identity struct {
	Subject   string
	Email     string
	Name      string
	AvatarURL *string
}
