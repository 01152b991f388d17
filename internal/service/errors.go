package service

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

type CopyError struct {
	bucket      string
	key         string
	destination string
	base        error
}

func (e CopyError) Error() string {
	return fmt.Sprintf("Unable to copy %s/%s to bucket %s: %v", e.bucket, e.key, e.destination, e.base)
}

func (e CopyError) Unwrap() error {
	return e.base
}

func (e CopyError) Key() string {
	return e.key
}

// describe adds the AWS error code when the failure came back from the service.
func describe(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%v (code %s)", err, apiErr.ErrorCode())
	}

	return err.Error()
}
