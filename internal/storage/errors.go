package storage

import "fmt"

type ClientError struct {
	region string
	base   error
}

func (e ClientError) Error() string {
	return fmt.Sprintf("Unable to load AWS configuration for region %s: %v", e.region, e.base)
}

func (e ClientError) Unwrap() error {
	return e.base
}
