package types

import "time"

// CloudAWS is the cloud name attached to every instance
const CloudAWS = "aws"

// NoName is the display name of instances without a Name tag
const NoName = "no name"

// Tag is a key/value label on a cloud resource
type Tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// SecurityGroup identifies a security group attached to an instance
type SecurityGroup struct {
	Name string `json:"GroupName"`
	ID   string `json:"GroupId"`
}

// Instance is the flattened view of one Kandula compute instance.
// Pointer fields are nil when the provider reports no value and
// serialize as null.
type Instance struct {
	Name       string    `json:"Name"`
	Cloud      string    `json:"Cloud"`
	Region     string    `json:"Region"`
	ID         string    `json:"Id"`
	Type       string    `json:"Type"`
	ImageID    string    `json:"ImageId"`
	LaunchTime time.Time `json:"LaunchTime"`

	State       State   `json:"State"`
	StateReason *string `json:"StateReason"`

	PrivateDNSName     string  `json:"PrivateDnsName"`
	PublicDNSName      string  `json:"PublicDnsName"`
	PrivateIP          *string `json:"PrivateIpAddress"`
	PublicIP           *string `json:"PublicIpAddress"`
	MacAddress         *string `json:"MacAddress"`
	NetworkInterfaceID *string `json:"NetworkInterfaceId"`
	SubnetID           *string `json:"SubnetId"`
	VpcID              *string `json:"VpcId"`

	RootDeviceName string `json:"RootDeviceName"`
	RootDeviceType string `json:"RootDeviceType"`

	SecurityGroups []SecurityGroup `json:"SecurityGroups"`
	Tags           []Tag           `json:"Tags"`
}
