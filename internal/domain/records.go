package domain

import (
	"strconv"
	"time"
)

type S3Object struct {
	Key       string `json:"key"`
	Size      int64  `json:"size"`
	ETag      string `json:"eTag"`
	Sequencer string `json:"sequencer"`
}

type S3BucketOwnerIdentity struct {
	PrincipalId string `json:"principalId"`
}

type S3Bucket struct {
	Name          string                `json:"name"`
	OwnerIdentity S3BucketOwnerIdentity `json:"ownerIdentity"`
	Arn           string                `json:"arn"`
}

type S3Record struct {
	S3SchemaVersion string   `json:"s3SchemaVersion"`
	ConfigurationId string   `json:"configurationId"`
	Bucket          S3Bucket `json:"bucket"`
	Object          S3Object `json:"object"`
}

type LambdaResponseElements struct {
	RequestId string `json:"x-amz-request-id"`
	Id2       string `json:"x-amz-id-2"`
}

type LambdaRequestParameters struct {
	SourceIPAddress string `json:"sourceIPAddress"`
}

type LambdaUserIdentity struct {
	PrincipalId string `json:"principalId"`
}

type JsonTime time.Time

const timeFormat = "2006-01-02T15:04:05.999Z"

func (t JsonTime) MarshalJSON() ([]byte, error) {
	return []byte("\"" + time.Time(t).Format(timeFormat) + "\""), nil
}

// UnmarshalJSON never fails: eventTime is informational only, so a value in an
// unexpected shape leaves the zero time rather than rejecting the batch.
func (t *JsonTime) UnmarshalJSON(bytes []byte) error {
	value, err := strconv.Unquote(string(bytes))
	if err != nil || value == "" {
		return nil
	}

	for _, layout := range []string{timeFormat, time.RFC3339Nano} {
		newTime, err := time.Parse(layout, value)
		if err == nil {
			*t = JsonTime(newTime)
			return nil
		}
	}

	return nil
}

// LambdaRecord is a single S3 notification as delivered to a function.
type LambdaRecord struct {
	EventVersion      string                  `json:"eventVersion"`
	EventSource       string                  `json:"eventSource"`
	AwsRegion         string                  `json:"awsRegion"`
	EventTime         JsonTime                `json:"eventTime"`
	EventName         string                  `json:"eventName"`
	UserIdentity      LambdaUserIdentity      `json:"userIdentity"`
	RequestParameters LambdaRequestParameters `json:"requestParameters"`
	ResponseElements  LambdaResponseElements  `json:"responseElements"`
	S3                S3Record                `json:"s3"`
}

func (r LambdaRecord) SourceBucket() string {
	return r.S3.Bucket.Name
}

// ObjectKey returns the key exactly as delivered, without any decoding.
func (r LambdaRecord) ObjectKey() string {
	return r.S3.Object.Key
}

func (r LambdaRecord) NotificationEvent() NotificationEvent {
	return NotificationEvent{
		Bucket:   r.SourceBucket(),
		Key:      r.ObjectKey(),
		Event:    eventPrefix + r.EventName,
		SourceIp: r.RequestParameters.SourceIPAddress,
		Size:     r.S3.Object.Size,
	}
}
