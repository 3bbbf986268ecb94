// Package inventory turns raw EC2 instance records into the sorted,
// filtered list of Kandula instances.
package inventory

import (
	"fmt"
	"slices"
	"strings"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/kandula/kancli/pkg/types"
)

// Project tag identifying Kandula instances
const (
	ProjectTagKey   = "Project"
	ProjectTagValue = "kandula"
	NameTagKey      = "Name"
)

// ContractError reports a raw record missing a field the EC2 API
// guarantees for the record's lifecycle phase.
type ContractError struct {
	InstanceID string
	Field      string
}

func (e *ContractError) Error() string {
	id := e.InstanceID
	if id == "" {
		id = "<unknown>"
	}
	return fmt.Sprintf("instance %s: missing required field %s", id, e.Field)
}

// Normalize keeps the records tagged Project=kandula whose state passes the
// filter, flattens them and sorts them by display name.
func Normalize(records []ec2types.Instance, filter types.StateFilter, region string) ([]types.Instance, error) {
	instances := []types.Instance{}

	for _, rec := range records {
		name, member := scanTags(rec.Tags)
		if !member {
			continue
		}

		if rec.State == nil {
			return nil, &ContractError{InstanceID: deref(rec.InstanceId), Field: "State"}
		}
		state := types.State(rec.State.Name)
		if !filter.Matches(state) {
			continue
		}

		inst, err := toInstance(rec, name, state, region)
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}

	slices.SortStableFunc(instances, func(a, b types.Instance) int {
		return strings.Compare(a.Name, b.Name)
	})

	return instances, nil
}

// scanTags returns the display name and whether the project tag is present
func scanTags(tags []ec2types.Tag) (string, bool) {
	name := types.NoName
	named, member := false, false

	for _, tag := range tags {
		key := deref(tag.Key)
		switch {
		case key == NameTagKey && !named:
			name, named = deref(tag.Value), true
		case key == ProjectTagKey && deref(tag.Value) == ProjectTagValue:
			member = true
		}
	}

	return name, member
}

// toInstance flattens one raw record
func toInstance(rec ec2types.Instance, name string, state types.State, region string) (types.Instance, error) {
	id := deref(rec.InstanceId)
	missing := func(field string) error {
		return &ContractError{InstanceID: id, Field: field}
	}

	if rec.InstanceId == nil {
		return types.Instance{}, missing("InstanceId")
	}
	if rec.ImageId == nil {
		return types.Instance{}, missing("ImageId")
	}
	if rec.LaunchTime == nil {
		return types.Instance{}, missing("LaunchTime")
	}
	if rec.RootDeviceName == nil {
		return types.Instance{}, missing("RootDeviceName")
	}

	inst := types.Instance{
		Name:           name,
		Cloud:          types.CloudAWS,
		Region:         region,
		ID:             id,
		Type:           string(rec.InstanceType),
		ImageID:        *rec.ImageId,
		LaunchTime:     *rec.LaunchTime,
		State:          state,
		PrivateDNSName: deref(rec.PrivateDnsName),
		PublicDNSName:  deref(rec.PublicDnsName),
		PrivateIP:      rec.PrivateIpAddress,
		PublicIP:       rec.PublicIpAddress,
		SubnetID:       rec.SubnetId,
		VpcID:          rec.VpcId,
		RootDeviceName: *rec.RootDeviceName,
		RootDeviceType: string(rec.RootDeviceType),
		SecurityGroups: make([]types.SecurityGroup, 0, len(rec.SecurityGroups)),
		Tags:           make([]types.Tag, 0, len(rec.Tags)),
	}

	if state.HasReason() {
		if rec.StateReason == nil || rec.StateReason.Message == nil {
			return types.Instance{}, missing("StateReason")
		}
		inst.StateReason = rec.StateReason.Message
	}

	if len(rec.NetworkInterfaces) > 0 {
		inst.MacAddress = rec.NetworkInterfaces[0].MacAddress
		inst.NetworkInterfaceID = rec.NetworkInterfaces[0].NetworkInterfaceId
	}

	for _, sg := range rec.SecurityGroups {
		inst.SecurityGroups = append(inst.SecurityGroups, types.SecurityGroup{
			Name: deref(sg.GroupName),
			ID:   deref(sg.GroupId),
		})
	}

	for _, tag := range rec.Tags {
		inst.Tags = append(inst.Tags, types.Tag{
			Key:   deref(tag.Key),
			Value: deref(tag.Value),
		})
	}

	return inst, nil
}

// Names returns the display names of the instances, in order
func Names(instances []types.Instance) []string {
	names := make([]string, len(instances))
	for i, inst := range instances {
		names[i] = inst.Name
	}
	return names
}

// IDs returns the instance ids, in order
func IDs(instances []types.Instance) []string {
	ids := make([]string, len(instances))
	for i, inst := range instances {
		ids[i] = inst.ID
	}
	return ids
}

// EmptyMessage is reported instead of an empty listing
func EmptyMessage(filter types.StateFilter) string {
	return fmt.Sprintf("No Kandula instances with state %s.", filter)
}

// deref safely dereferences a string pointer
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
