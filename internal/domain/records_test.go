package domain_test

import (
	"encoding/json"
	"github.com/ATenderholt/rainbow-copier/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

const expected = `{
	"eventVersion": "2.1",
	"eventSource": "aws:s3",
	"awsRegion": "us-west-2",
	"eventTime": "2022-04-14T11:39:29.346Z",
	"eventName": "ObjectCreated:CompleteMultipartUpload",
	"userIdentity": {
		"principalId": "AWS:SOMEPRINCIPAL"
	},
	"requestParameters": {
		"sourceIPAddress": "123.45.67.89"
	},
	"responseElements": {
		"x-amz-request-id": "XT6FD2FBQWXM1ABC",
		"x-amz-id-2": "ab7rhq6747Kpa/aBY60gVUd1kd79J7asNC3RvyN6d77zjzYn+aBnTh5107THtwu/qufcgLisDK+30aErdEbk7Rw7a5EokaBC"
	},
	"s3": {
		"s3SchemaVersion": "1.0",
		"configurationId": "tf-s3-lambda-20220411120846560300000001",
		"bucket": {
			"name": "bucket-name",
			"ownerIdentity": {
				"principalId": "SOME_OWNER"
			},
			"arn": "arn:aws:s3:::bucket-name"
		},
		"object": {
			"key": "dir/file.ext",
			"size": 12345,
			"eTag": "6f17b4298e838b30691db31b1d0bc4ec-3",
			"sequencer": "00625807EEBA91FBCA"
		}
	}
}`

func sampleRecord() domain.LambdaRecord {
	return domain.LambdaRecord{
		EventVersion: "2.1",
		EventSource:  "aws:s3",
		AwsRegion:    "us-west-2",
		EventTime:    domain.JsonTime(time.Date(2022, 04, 14, 11, 39, 29, 346000000, time.UTC)),
		EventName:    "ObjectCreated:CompleteMultipartUpload",
		UserIdentity: domain.LambdaUserIdentity{
			PrincipalId: "AWS:SOMEPRINCIPAL",
		},
		RequestParameters: domain.LambdaRequestParameters{
			SourceIPAddress: "123.45.67.89",
		},
		ResponseElements: domain.LambdaResponseElements{
			RequestId: "XT6FD2FBQWXM1ABC",
			Id2:       "ab7rhq6747Kpa/aBY60gVUd1kd79J7asNC3RvyN6d77zjzYn+aBnTh5107THtwu/qufcgLisDK+30aErdEbk7Rw7a5EokaBC",
		},
		S3: domain.S3Record{
			S3SchemaVersion: "1.0",
			ConfigurationId: "tf-s3-lambda-20220411120846560300000001",
			Bucket: domain.S3Bucket{
				Name:          "bucket-name",
				OwnerIdentity: domain.S3BucketOwnerIdentity{PrincipalId: "SOME_OWNER"},
				Arn:           "arn:aws:s3:::bucket-name",
			},
			Object: domain.S3Object{
				Key:       "dir/file.ext",
				Size:      12345,
				ETag:      "6f17b4298e838b30691db31b1d0bc4ec-3",
				Sequencer: "00625807EEBA91FBCA",
			},
		},
	}
}

func TestMarshall(t *testing.T) {
	bytes, err := json.MarshalIndent(sampleRecord(), "", "\t")
	if err != nil {
		t.Fatalf("Unable to marshall: %v", err)
	}

	assert.Equal(t, expected, string(bytes))
}

func TestUnmarshall(t *testing.T) {
	var record domain.LambdaRecord
	err := json.Unmarshal([]byte(expected), &record)
	require.NoError(t, err)

	want := sampleRecord()
	assert.True(t, time.Time(want.EventTime).Equal(time.Time(record.EventTime)))

	record.EventTime = want.EventTime
	assert.Equal(t, want, record)
}

func TestRecordAccessors(t *testing.T) {
	record := sampleRecord()

	assert.Equal(t, "bucket-name", record.SourceBucket())
	assert.Equal(t, "dir/file.ext", record.ObjectKey())

	event := record.NotificationEvent()
	assert.Equal(t, domain.NotificationEvent{
		Bucket:   "bucket-name",
		Key:      "dir/file.ext",
		Event:    "s3:ObjectCreated:CompleteMultipartUpload",
		SourceIp: "123.45.67.89",
		Size:     12345,
	}, event)
	assert.Equal(t, "s3:ObjectCreated:CompleteMultipartUpload bucket-name/dir/file.ext", event.String())
}

func TestJsonTimeToleratesGarbage(t *testing.T) {
	for _, value := range []string{`"yesterday"`, `""`, `null`, `12345`} {
		var record domain.LambdaRecord
		err := json.Unmarshal([]byte(`{"eventTime": `+value+`}`), &record)

		assert.NoError(t, err, value)
		assert.True(t, time.Time(record.EventTime).IsZero(), value)
	}
}

func TestJsonTimeOffset(t *testing.T) {
	var record domain.LambdaRecord
	err := json.Unmarshal([]byte(`{"eventTime": "2022-04-14T13:39:29.5+02:00"}`), &record)
	require.NoError(t, err)

	want := time.Date(2022, 04, 14, 11, 39, 29, 500000000, time.UTC)
	assert.True(t, want.Equal(time.Time(record.EventTime)))
}
