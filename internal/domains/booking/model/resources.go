package model

// ResourceKind is the exhaustive set of therapist/room combinations a booking can hold.
type ResourceKind int

const (
	ResourceKindNone ResourceKind = iota
	ResourceKindTherapistOnly
	ResourceKindRoomOnly
	ResourceKindBoth
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceKindNone:
		return "none"
	case ResourceKindTherapistOnly:
		return "therapist_only"
	case ResourceKindRoomOnly:
		return "room_only"
	case ResourceKindBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Resources is the optional therapist and room a booking reserves. An empty id counts as absent.
type Resources struct {
	TherapistID *string
	RoomID      *string
}

func (r Resources) Kind() ResourceKind {
	switch {
	case r.HasTherapist() && r.HasRoom():
		return ResourceKindBoth
	case r.HasTherapist():
		return ResourceKindTherapistOnly
	case r.HasRoom():
		return ResourceKindRoomOnly
	default:
		return ResourceKindNone
	}
}

func (r Resources) HasTherapist() bool {
	return r.TherapistID != nil && *r.TherapistID != ""
}

func (r Resources) HasRoom() bool {
	return r.RoomID != nil && *r.RoomID != ""
}

func (r Resources) Therapist() string {
	if !r.HasTherapist() {
		return ""
	}

	return *r.TherapistID
}

func (r Resources) Room() string {
	if !r.HasRoom() {
		return ""
	}

	return *r.RoomID
}
