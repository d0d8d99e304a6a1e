package domain

// Topic is a category that articles are filed under. The slug doubles as
// the topic's unique identifier and appears in article rows by reference.
type Topic struct {
	Slug        string
	Description string
}

// Validate checks that the Topic has valid data.
func (t *Topic) Validate() error {
	if t.Slug == "" {
		return NewValidationError("slug", "cannot be empty", ErrEmptyContent)
	}
	if t.Description == "" {
		return NewValidationError("description", "cannot be empty", ErrEmptyContent)
	}
	return nil
}
