// Package menu provides the domain model for a tenant's menu: locations,
// categories, items and the per-location, per-channel overlays that adjust
// their visibility.
package menu

import "strings"

// Channel is a sales surface.
type Channel string

const (
	ChannelDineIn Channel = "dine-in"
	ChannelOnline Channel = "online"
)

// AllChannels lists every channel in a fixed order.
var AllChannels = [2]Channel{ChannelDineIn, ChannelOnline}

// ParseChannel normalizes a client-supplied channel name. Spellings such as
// "Dine-In", "dinein" and "dine_in" are accepted.
func ParseChannel(raw string) (Channel, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "dine-in", "dinein", "dine_in", "dine in":
		return ChannelDineIn, nil
	case "online":
		return ChannelOnline, nil
	}
	return "", ErrInvalidChannel
}

// ParseOptionalChannel returns nil for an empty string.
func ParseOptionalChannel(raw string) (*Channel, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	c, err := ParseChannel(raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// TargetChannels expands an optional channel into the channels it addresses.
func TargetChannels(c *Channel) []Channel {
	if c == nil {
		return AllChannels[:]
	}
	return []Channel{*c}
}

// IsValid checks if the channel is one of the known channels
func (c Channel) IsValid() bool {
	return c == ChannelDineIn || c == ChannelOnline
}

func (c Channel) String() string {
	return string(c)
}

// ChannelScope restricts a category to one channel or leaves it on all.
type ChannelScope string

const (
	ChannelScopeAll    ChannelScope = "all"
	ChannelScopeDineIn ChannelScope = "dine-in"
	ChannelScopeOnline ChannelScope = "online"
)

// ParseChannelScope accepts "all" (or empty) and any channel spelling.
func ParseChannelScope(raw string) (ChannelScope, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" || s == "all" {
		return ChannelScopeAll, nil
	}
	c, err := ParseChannel(s)
	if err != nil {
		return "", err
	}
	return ChannelScope(c), nil
}

// Allows reports whether the scope admits channel c.
func (s ChannelScope) Allows(c Channel) bool {
	return s == ChannelScopeAll || s == "" || Channel(s) == c
}

func (s ChannelScope) IsValid() bool {
	return s == ChannelScopeAll || s == ChannelScopeDineIn || s == ChannelScopeOnline
}

func (s ChannelScope) String() string {
	return string(s)
}
