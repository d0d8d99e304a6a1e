package domain

// User is a registered member of the platform. Users are read-only through
// this API; they are referenced by articles and comments as authors.
type User struct {
	Username  string
	Name      string
	AvatarURL string
}
