package access

// Session is the authenticated caller as decoded from the session credential.
// It is read-only for the lifetime of a request.
type Session struct {
	UserID    string
	Username  string
	RoleID    string
	CompanyID string
}

// Role ids issued by the HR backend.
const (
	RoleAdmin    = "1"
	RoleKadiv    = "2" // division head, first-stage approver
	RoleKaryawan = "3" // regular employee
	RoleHRD      = "4" // final-stage overtime approver
)

// RuleKind tags an access rule.
type RuleKind int

// The zero RuleKind is not a valid rule and HasAccess denies it, so every
// descriptor has to state its access explicitly.
const (
	// KindUnrestricted grants access to every session. Route descriptors without
	// role or company metadata carry this kind.
	KindUnrestricted RuleKind = iota + 1
	// KindRestricted checks role and/or company membership.
	KindRestricted
)

// Rule is the access metadata attached to a route descriptor.
// A nil Roles or Companies set means that dimension is not constrained.
type Rule struct {
	Kind      RuleKind
	Roles     map[string]struct{}
	Companies map[string]struct{}
}

// Unrestricted returns a rule that admits every session.
func Unrestricted() Rule {
	return Rule{Kind: KindUnrestricted}
}

// Restricted builds a rule from optional role and company lists.
// Passing nil for a list leaves that dimension open.
func Restricted(roles, companies []string) Rule {
	return Rule{
		Kind:      KindRestricted,
		Roles:     toSet(roles),
		Companies: toSet(companies),
	}
}

// ForRoles restricts by role only.
func ForRoles(roles ...string) Rule {
	return Restricted(roles, nil)
}

// ForCompanies restricts by company only.
func ForCompanies(companies ...string) Rule {
	return Restricted(nil, companies)
}

func toSet(values []string) map[string]struct{} {
	if values == nil {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// RouteDescriptor is one entry of the static route configuration.
// Entries without a Label are route-only and never appear in the menu.
type RouteDescriptor struct {
	Path    string
	Label   string
	Section string
	Access  Rule
}

// IsMenuEntry reports whether the descriptor is surfaced in the menu.
func (d RouteDescriptor) IsMenuEntry() bool {
	return d.Label != ""
}
