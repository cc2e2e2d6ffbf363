package state

// Link is one symmetric link record from a topology input.
type Link struct {
	A    NodeId `yaml:"a"`
	B    NodeId `yaml:"b"`
	Cost Cost   `yaml:"cost"`
}

// Message is one pending message. Text is opaque and carried through to
// the output verbatim; it may contain whitespace.
type Message struct {
	Source NodeId `yaml:"from"`
	Dest   NodeId `yaml:"to"`
	Text   string `yaml:"text"`
}

// Change is one topology mutation. A cost of RemoveLinkCost removes the
// link; any other value sets or replaces it.
type Change struct {
	A    NodeId `yaml:"a"`
	B    NodeId `yaml:"b"`
	Cost Cost   `yaml:"cost"`
}

func (c Change) IsRemoval() bool {
	return c.Cost == RemoveLinkCost
}
