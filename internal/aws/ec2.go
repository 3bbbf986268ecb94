package aws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/kandula/kancli/pkg/provider"
)

var _ provider.InstanceLister = (*Client)(nil)

// DescribeAllInstances returns every instance of every reservation from a
// single DescribeInstances call. Pagination is not followed.
func (c *Client) DescribeAllInstances(ctx context.Context) ([]ec2types.Instance, error) {
	slog.Debug("describing instances", "region", c.region, "profile", c.profile)

	output, err := c.EC2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) {
			slog.Error("describe instances failed", "status", respErr.HTTPStatusCode(), "request_id", respErr.ServiceRequestID())
		} else {
			slog.Error("describe instances failed", "error", err)
		}
		return nil, fmt.Errorf("failed to describe instances: %w", err)
	}

	if err := checkStatus(output.ResultMetadata); err != nil {
		slog.Error("describe instances returned bad status", "error", err)
		return nil, err
	}

	var instances []ec2types.Instance
	for _, reservation := range output.Reservations {
		instances = append(instances, reservation.Instances...)
	}

	slog.Debug("described instances", "reservations", len(output.Reservations), "instances", len(instances))
	return instances, nil
}

// checkStatus fails unless the raw HTTP response, when recorded, is a 200
func checkStatus(md middleware.Metadata) error {
	raw, ok := awsmiddleware.GetRawResponse(md).(*smithyhttp.Response)
	if !ok || raw == nil || raw.Response == nil {
		return nil
	}
	return statusError(raw.StatusCode)
}

func statusError(code int) error {
	if code != http.StatusOK {
		return fmt.Errorf("%w: %d", provider.ErrBadStatus, code)
	}
	return nil
}
