// Package entity contains the core business objects of the project.
package entity

// Role is the account tier stored on every user. No operation enforces it yet.
type Role string

const (
	// RoleBasic is the tier assigned at registration.
	RoleBasic Role = "basic"
	// RolePremium is the paid directory tier.
	RolePremium Role = "premium"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBasic, RolePremium:
		return true
	default:
		return false
	}
}

// TradingRole describes which side of the market a company trades on.
type TradingRole string

const (
	TradingRoleBuyer  TradingRole = "buyer"
	TradingRoleSeller TradingRole = "seller"
	TradingRoleBoth   TradingRole = "both"
)

// String returns the string representation of the TradingRole.
func (r TradingRole) String() string {
	return string(r)
}

// IsValid checks if the TradingRole is a valid value.
func (r TradingRole) IsValid() bool {
	switch r {
	case TradingRoleBuyer, TradingRoleSeller, TradingRoleBoth:
		return true
	default:
		return false
	}
}

// Buys reports whether the role counts towards the buyer population.
func (r TradingRole) Buys() bool {
	return r == TradingRoleBuyer || r == TradingRoleBoth
}

// Sells reports whether the role counts towards the seller population.
func (r TradingRole) Sells() bool {
	return r == TradingRoleSeller || r == TradingRoleBoth
}
