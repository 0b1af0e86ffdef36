package readability

import "golang.org/x/net/html"

// isUnlikely reports whether n should be stripped outright as an
// unlikely candidate for article content. Always false for <body>
// regardless of its class/id, and always false when FlagStripUnlikely
// is not set.
func isUnlikely(n *html.Node, flags Flags) bool {
	if flags&FlagStripUnlikely == 0 {
		return false
	}
	if n.Data == "body" {
		return false
	}
	classAndID := attr(n, "class") + " " + attr(n, "id")
	if !rxUnlikely.MatchString(classAndID) {
		return false
	}
	return !rxMaybe.MatchString(classAndID)
}

// scoreStore holds the external score annotation keyed by node identity,
// standing in for the reference implementation's attribute-on-element
// score field (§9 Design Note). A node is "readable" once it has an
// entry in this map, regardless of the value.
type scoreStore struct {
	m map[*html.Node]*float64
}

func newScoreStore() *scoreStore {
	return &scoreStore{m: make(map[*html.Node]*float64)}
}

func (s *scoreStore) isReadable(n *html.Node) bool {
	_, ok := s.m[n]
	return ok
}

func (s *scoreStore) get(n *html.Node) float64 {
	if v, ok := s.m[n]; ok {
		return *v
	}
	return 0
}

func (s *scoreStore) set(n *html.Node, v float64) {
	if existing, ok := s.m[n]; ok {
		*existing = v
		return
	}
	val := v
	s.m[n] = &val
}

func (s *scoreStore) add(n *html.Node, delta float64) {
	if v, ok := s.m[n]; ok {
		*v += delta
	}
}
