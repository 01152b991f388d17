package domain

const (
	ObjectCreatedEvent = "s3:ObjectCreated"
	ObjectRemovedEvent = "s3:ObjectRemoved"

	eventPrefix = "s3:"
)

type NotificationEvent struct {
	Bucket   string
	Key      string // S3 Object key
	Event    string // S3 event (i.e. s3:ObjectCreated:Put", "s3:ObjectRemoved:Delete", etc.)
	SourceIp string
	Size     int64
}

func (e NotificationEvent) String() string {
	return e.Event + " " + e.Bucket + "/" + e.Key
}
