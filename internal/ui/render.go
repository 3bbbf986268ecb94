package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/kandula/kancli/internal/inventory"
	"github.com/kandula/kancli/pkg/types"
)

// absent is printed for fields without a value
const absent = "-"

// labelWidth fits the longest field label
const labelWidth = 20

// Renderer writes instance listings in the short or full view
type Renderer struct {
	Full bool

	// Now anchors the humanized launch age; defaults to time.Now
	Now func() time.Time
}

// Text writes the styled text listing
func (r Renderer) Text(w io.Writer, instances []types.Instance) error {
	var sb strings.Builder

	for i, inst := range instances {
		if !r.Full {
			sb.WriteString(StateStyle(inst.State).Render(inst.Name))
			sb.WriteString("\n")
			continue
		}

		if i > 0 {
			sb.WriteString("\n")
		}
		r.writeDetails(&sb, inst)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r Renderer) writeDetails(sb *strings.Builder, inst types.Instance) {
	line := func(label, value string) {
		sb.WriteString(LabelStyle.Render(padRight(label+":", labelWidth)))
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	line("Name", HeaderStyle.Render(inst.Name))
	line("Id", inst.ID)
	line("Cloud", inst.Cloud)
	line("Region", inst.Region)
	line("State", StateStyle(inst.State).Render(string(inst.State)))
	line("StateReason", optional(inst.StateReason))
	line("Type", inst.Type)
	line("ImageId", inst.ImageID)
	line("LaunchTime", r.launchTime(inst.LaunchTime))
	line("PrivateDnsName", orAbsent(inst.PrivateDNSName))
	line("PublicDnsName", orAbsent(inst.PublicDNSName))
	line("PrivateIpAddress", optional(inst.PrivateIP))
	line("PublicIpAddress", optional(inst.PublicIP))
	line("MacAddress", optional(inst.MacAddress))
	line("NetworkInterfaceId", optional(inst.NetworkInterfaceID))
	line("SubnetId", optional(inst.SubnetID))
	line("VpcId", optional(inst.VpcID))
	line("RootDeviceName", inst.RootDeviceName)
	line("RootDeviceType", inst.RootDeviceType)
	line("SecurityGroups", orAbsent(FormatSecurityGroups(inst.SecurityGroups)))
	line("Tags", orAbsent(FormatTags(inst.Tags)))
}

func (r Renderer) launchTime(t time.Time) string {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	age := humanize.RelTime(t, now(), "ago", "from now")
	return fmt.Sprintf("%s %s", t.Format(time.RFC3339), MutedStyle.Render("("+age+")"))
}

// JSON writes the listing as 4-space indented JSON. The short view is the
// list of display names.
func (r Renderer) JSON(w io.Writer, instances []types.Instance) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")

	if r.Full {
		return enc.Encode(instances)
	}

	return enc.Encode(inventory.Names(instances))
}

// FormatSecurityGroups joins groups as "name (id)"
func FormatSecurityGroups(groups []types.SecurityGroup) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = fmt.Sprintf("%s (%s)", g.Name, g.ID)
	}
	return strings.Join(parts, ", ")
}

// FormatTags joins tags as "key=value"
func FormatTags(tags []types.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.Key + "=" + t.Value
	}
	return strings.Join(parts, ", ")
}

func optional(s *string) string {
	if s == nil {
		return absent
	}
	return orAbsent(*s)
}

func orAbsent(s string) string {
	if s == "" {
		return absent
	}
	return s
}

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-sw)
}
