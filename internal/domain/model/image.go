package model

import "time"

// Image is hosted-image metadata attached to one catalog object. The binary
// itself lives at the external image host; URL and RemoteID point at it.
type Image struct {
	ID         int64
	ObjectID   int64
	ObjectKind ObjectKind
	URL        string
	RemoteID   string
	UploadedAt time.Time
}
