package model

import "time"

// Review is a user-authored product review. The product reference is
// nullable so reviews survive product deletion; the author reference
// cascades with the user.
type Review struct {
	ID        int64
	ProductID *int64
	UserID    int64
	Name      string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
