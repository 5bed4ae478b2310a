package user

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"password,omitempty"`
}

// Identity is the resolved caller of a play request. Anonymous identities
// come from the device id header and never reach the stats aggregator.
type Identity struct {
	ID        string
	Anonymous bool
}

func AuthenticatedIdentity(id string) Identity {
	return Identity{ID: id}
}

func AnonymousIdentity(deviceID string) Identity {
	return Identity{ID: deviceID, Anonymous: true}
}
