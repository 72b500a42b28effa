package access

// HasAccess decides whether the session may see or use a route guarded by rule.
// Role and company constraints are independent and AND-combined. The function is
// total: empty session fields simply fail the membership test they are used in.
func HasAccess(rule Rule, session Session) bool {
	switch rule.Kind {
	case KindUnrestricted:
		return true
	case KindRestricted:
		if rule.Roles != nil {
			if _, ok := rule.Roles[session.RoleID]; !ok {
				return false
			}
		}
		if rule.Companies != nil {
			if _, ok := rule.Companies[session.CompanyID]; !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CanAccess evaluates the descriptor's rule for the session.
func (d RouteDescriptor) CanAccess(session Session) bool {
	return HasAccess(d.Access, session)
}
