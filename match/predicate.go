package match

// Matches reports whether pattern vertex p may be mapped to target vertex t:
// deg(p) <= deg(t) and, when semantic is set, equal attributes.
func Matches(pattern, target Graph, p, t int, semantic bool) bool {
	if pattern.Degree(p) > target.Degree(t) {
		return false
	}
	return !semantic || pattern.Attribute(p) == target.Attribute(t)
}
