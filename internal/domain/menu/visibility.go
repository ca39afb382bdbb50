package menu

// Visibility is an item's baseline per-channel visibility.
type Visibility struct {
	DineIn bool
	Online bool
}

// DefaultVisibility is visible on every channel.
func DefaultVisibility() Visibility {
	return Visibility{DineIn: true, Online: true}
}

// For returns the baseline flag for channel c.
func (v Visibility) For(c Channel) bool {
	switch c {
	case ChannelDineIn:
		return v.DineIn
	case ChannelOnline:
		return v.Online
	}
	return false
}

// With returns a copy with channel c set to visible.
func (v Visibility) With(c Channel, visible bool) Visibility {
	switch c {
	case ChannelDineIn:
		v.DineIn = visible
	case ChannelOnline:
		v.Online = visible
	}
	return v
}

// Any reports whether the item is visible on at least one channel.
func (v Visibility) Any() bool {
	return v.DineIn || v.Online
}
