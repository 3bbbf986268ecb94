package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kandula/kancli/pkg/types"
)

var launched = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func sampleInstances() []types.Instance {
	return []types.Instance{
		{
			Name:               "web1",
			Cloud:              "aws",
			Region:             "us-east-1",
			ID:                 "i-1",
			Type:               "t3.micro",
			ImageID:            "ami-1",
			LaunchTime:         launched,
			State:              types.StateRunning,
			PrivateDNSName:     "ip-10-0-0-1.ec2.internal",
			PrivateIP:          strPtr("10.0.0.1"),
			MacAddress:         strPtr("0a:1b:2c:3d:4e:5f"),
			NetworkInterfaceID: strPtr("eni-1"),
			SubnetID:           strPtr("subnet-1"),
			VpcID:              strPtr("vpc-1"),
			RootDeviceName:     "/dev/xvda",
			RootDeviceType:     "ebs",
			SecurityGroups:     []types.SecurityGroup{{Name: "web", ID: "sg-1"}, {Name: "ssh", ID: "sg-2"}},
			Tags:               []types.Tag{{Key: "Name", Value: "web1"}, {Key: "Project", Value: "kandula"}},
		},
		{
			Name:           "web3",
			Cloud:          "aws",
			Region:         "us-east-1",
			ID:             "i-3",
			Type:           "t3.small",
			ImageID:        "ami-1",
			LaunchTime:     launched,
			State:          types.StateStopped,
			StateReason:    strPtr("Client.UserInitiatedShutdown"),
			RootDeviceName: "/dev/xvda",
			RootDeviceType: "ebs",
			SecurityGroups: []types.SecurityGroup{},
			Tags:           []types.Tag{{Key: "Project", Value: "kandula"}},
		},
	}
}

func TestRenderer_TextShort(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Renderer{}.Text(&buf, sampleInstances()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "web1")
	assert.Contains(t, lines[1], "web3")
	assert.NotContains(t, buf.String(), "i-1")
}

func TestRenderer_TextFull(t *testing.T) {
	r := Renderer{Full: true, Now: func() time.Time { return launched.Add(72 * time.Hour) }}

	var buf bytes.Buffer
	require.NoError(t, r.Text(&buf, sampleInstances()))
	out := buf.String()

	assert.Contains(t, out, "Id:")
	assert.Contains(t, out, "i-1")
	assert.Contains(t, out, "web (sg-1), ssh (sg-2)")
	assert.Contains(t, out, "Name=web1, Project=kandula")
	assert.Contains(t, out, "2024-03-01T12:00:00Z")
	assert.Contains(t, out, "3 days ago")
	assert.Contains(t, out, "Client.UserInitiatedShutdown")

	blocks := strings.Split(out, "\n\n")
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[1], "PublicIpAddress:")
	assert.Regexp(t, `MacAddress:\s*-`, blocks[1])
}

func TestRenderer_JSONShort(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Renderer{}.JSON(&buf, sampleInstances()))

	assert.Equal(t, "[\n    \"web1\",\n    \"web3\"\n]\n", buf.String())
}

func TestRenderer_JSONFull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Renderer{Full: true}.JSON(&buf, sampleInstances()))

	assert.Contains(t, buf.String(), "\n        \"Name\": \"web1\"")

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "i-1", first["Id"])
	assert.Equal(t, "2024-03-01T12:00:00Z", first["LaunchTime"])
	assert.Nil(t, first["StateReason"])
	assert.Contains(t, first, "PublicIpAddress")
	assert.Nil(t, first["PublicIpAddress"])
	assert.Equal(t, []any{
		map[string]any{"GroupName": "web", "GroupId": "sg-1"},
		map[string]any{"GroupName": "ssh", "GroupId": "sg-2"},
	}, first["SecurityGroups"])

	second := got[1]
	assert.Contains(t, second, "MacAddress")
	assert.Nil(t, second["MacAddress"])
	assert.Contains(t, second, "NetworkInterfaceId")
	assert.Nil(t, second["NetworkInterfaceId"])
	assert.Equal(t, "Client.UserInitiatedShutdown", second["StateReason"])
}

func TestRenderer_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Renderer{}.JSON(&buf, []types.Instance{}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "", FormatTags(nil))
	assert.Equal(t, "a=b", FormatTags([]types.Tag{{Key: "a", Value: "b"}}))
	assert.Equal(t, "default (sg-0)", FormatSecurityGroups([]types.SecurityGroup{{Name: "default", ID: "sg-0"}}))
	assert.Equal(t, absent, optional(nil))
	assert.Equal(t, absent, optional(strPtr("")))
	assert.Equal(t, "x", optional(strPtr("x")))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "Id:  ", padRight("Id:", 5))
	assert.Equal(t, "NetworkInterfaceId: ", padRight("NetworkInterfaceId:", 19))
}
