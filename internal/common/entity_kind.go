package common

// EntityKind tags the target of a polymorphic reference such as a like.
// The (kind, id) pair resolves to a row in the table the kind names.
type EntityKind string

const (
	EntityKindTweet EntityKind = "tweet"
	EntityKindPhoto EntityKind = "photo"
)

// String returns the string representation
func (ek EntityKind) String() string {
	return string(ek)
}

// IsValid checks if the entity kind is one that can be liked
func (ek EntityKind) IsValid() bool {
	return ek == EntityKindTweet || ek == EntityKindPhoto
}
