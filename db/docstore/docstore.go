package docstore

// DB is a document store with two collections: user profiles keyed by
// handle and drops keyed by ID. Find methods scan the relevant
// collection; drop finds return populated views (author identity and
// avatar attached, replies inlined) sorted by creation time descending.
type DB interface {
	SaveUser(user *UserProfile) error
	GetUser(handle string) (*UserProfile, error)
	// UpdateUser applies mutate to the stored profile inside a single
	// write transaction. mutate returning an error aborts the update.
	UpdateUser(handle string, mutate func(*UserProfile) error) error
	FindUsersMatching(fragment string, fields []string) ([]UserProfile, error)

	SaveDrop(drop *Drop) error
	GetDrop(id string) (*Drop, error)
	FindDropsByBody(fragment string, skip, limit int) ([]DropView, error)
	FindDropsByAuthor(handle string, skip, limit int) ([]DropView, error)
	FindDropsByTag(tag string) ([]DropView, error)

	Close() error
}
