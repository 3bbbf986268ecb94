package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
)

// ErrProfileNotFound is returned for profiles absent from the shared files
var ErrProfileNotFound = errors.New("profile not found")

// Profile is a named profile from ~/.aws/config or ~/.aws/credentials
type Profile struct {
	Name   string
	Region string
}

// LookupProfile loads a profile from the shared config and credentials
// files. Options may point the lookup at other files.
func LookupProfile(ctx context.Context, name string, optFns ...func(*config.LoadSharedConfigOptions)) (*Profile, error) {
	shared, err := config.LoadSharedConfigProfile(ctx, name, optFns...)
	if err != nil {
		var notExist config.SharedConfigProfileNotExistError
		if errors.As(err, &notExist) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
		}
		return nil, fmt.Errorf("failed to load profile %s: %w", name, err)
	}

	return &Profile{
		Name:   shared.Profile,
		Region: shared.Region,
	}, nil
}
