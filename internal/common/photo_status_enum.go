package common

// PhotoStatus is the moderation state of a tweet photo, stored as a small
// integer. New photos start PENDING; an external moderation process moves
// them to APPROVED or REJECTED.
type PhotoStatus int16

const (
	PhotoStatusPending  PhotoStatus = 0
	PhotoStatusApproved PhotoStatus = 1
	PhotoStatusRejected PhotoStatus = 2
)

// String returns the string representation
func (ps PhotoStatus) String() string {
	switch ps {
	case PhotoStatusPending:
		return "pending"
	case PhotoStatusApproved:
		return "approved"
	case PhotoStatusRejected:
		return "rejected"
	}
	return "unknown"
}

// IsValid checks if the photo status is one of the known states
func (ps PhotoStatus) IsValid() bool {
	return ps == PhotoStatusPending || ps == PhotoStatusApproved || ps == PhotoStatusRejected
}
