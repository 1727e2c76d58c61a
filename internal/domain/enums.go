package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser      UserRole = "USER"
	UserRoleModerator UserRole = "MODERATOR"
	UserRoleAdmin     UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}

// IsModerator reports whether the role carries moderation rights.
// Admins moderate too.
func (r UserRole) IsModerator() bool {
	return r == UserRoleModerator || r == UserRoleAdmin
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// ItemStatus represents the claim state of an item.
type ItemStatus string

const (
	ItemStatusUnclaimed ItemStatus = "UNCLAIMED"
	ItemStatusClaimed   ItemStatus = "CLAIMED"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusUnclaimed, ItemStatusClaimed:
		return true
	}
	return false
}

// ItemType distinguishes lost-item reports from found-item reports.
type ItemType string

const (
	ItemTypeLost  ItemType = "LOST"
	ItemTypeFound ItemType = "FOUND"
)

func (t ItemType) String() string { return string(t) }

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeLost, ItemTypeFound:
		return true
	}
	return false
}

// ClaimKind distinguishes a claim on a found item from a return of a lost item.
type ClaimKind string

const (
	ClaimKindClaim  ClaimKind = "CLAIM"
	ClaimKindReturn ClaimKind = "RETURN"
)

func (k ClaimKind) String() string { return string(k) }

func (k ClaimKind) IsValid() bool {
	switch k {
	case ClaimKindClaim, ClaimKindReturn:
		return true
	}
	return false
}

// TurnoverStatus represents the state of a turnover handoff request.
type TurnoverStatus string

const (
	TurnoverStatusPending   TurnoverStatus = "PENDING"
	TurnoverStatusConfirmed TurnoverStatus = "CONFIRMED"
	TurnoverStatusRejected  TurnoverStatus = "REJECTED"
)

func (s TurnoverStatus) String() string { return string(s) }

func (s TurnoverStatus) IsValid() bool {
	switch s {
	case TurnoverStatusPending, TurnoverStatusConfirmed, TurnoverStatusRejected:
		return true
	}
	return false
}

// IsDecided reports whether the request has reached a terminal state.
func (s TurnoverStatus) IsDecided() bool {
	return s == TurnoverStatusConfirmed || s == TurnoverStatusRejected
}
