package domain

import "time"

// UserRecord is the per-user moderation state. One record exists per user
// ever seen; records are created lazily and never deleted by the engine.
type UserRecord struct {
	UserID       int64
	FirstName    string
	Warnings     int
	SpamActivity []time.Time
}

// NewUserRecord returns the default record for a user seen for the first time.
func NewUserRecord(userID int64, firstName string) UserRecord {
	return UserRecord{
		UserID:    userID,
		FirstName: firstName,
	}
}
