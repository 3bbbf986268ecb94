package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// DescribeInstancesAPI is the subset of the EC2 client used to list instances
type DescribeInstancesAPI interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// CallerIdentityAPI is the subset of the STS client used by whoami
type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Client wraps AWS SDK clients
type Client struct {
	EC2     DescribeInstancesAPI
	STS     CallerIdentityAPI
	profile string
	region  string
}

// ClientOption allows customizing the AWS Client
type ClientOption func(*Client)

// WithProfile sets the AWS profile for the client
func WithProfile(profile string) ClientOption {
	return func(c *Client) {
		c.profile = profile
	}
}

// WithRegion sets the AWS region for the client
func WithRegion(region string) ClientOption {
	return func(c *Client) {
		c.region = region
	}
}

// WithEC2 replaces the EC2 API, skipping SDK config loading when STS is set too
func WithEC2(api DescribeInstancesAPI) ClientOption {
	return func(c *Client) {
		c.EC2 = api
	}
}

// WithSTS replaces the STS API
func WithSTS(api CallerIdentityAPI) ClientOption {
	return func(c *Client) {
		c.STS = api
	}
}

// NewClient creates a new AWS Client with the given options
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}

	if c.EC2 != nil && c.STS != nil {
		return c, nil
	}

	// Load AWS config
	cfg, err := config.LoadDefaultConfig(ctx, c.loadOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	// The resolved region may come from the shared config or environment
	c.region = cfg.Region

	if c.EC2 == nil {
		c.EC2 = ec2.NewFromConfig(cfg)
	}
	if c.STS == nil {
		c.STS = sts.NewFromConfig(cfg)
	}

	return c, nil
}

// loadOptions builds the SDK config options. A failed call is never retried.
func (c *Client) loadOptions() []func(*config.LoadOptions) error {
	configOpts := []func(*config.LoadOptions) error{
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}

	if c.profile != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(c.profile))
	}

	if c.region != "" {
		configOpts = append(configOpts, config.WithRegion(c.region))
	}

	return configOpts
}

// Region returns the region the client queries
func (c *Client) Region() string {
	return c.region
}

// Profile returns the shared config profile, if any
func (c *Client) Profile() string {
	return c.profile
}
