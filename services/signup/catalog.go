package signup

// Catalog is the fixed, ordered list of bookable slot labels for the weekly
// event. It is built once at startup and never mutated.
type Catalog struct {
	order  []string
	labels map[string]struct{}
}

func NewCatalog(slots []string) *Catalog {
	c := &Catalog{
		order:  make([]string, 0, len(slots)),
		labels: make(map[string]struct{}, len(slots)),
	}
	for _, s := range slots {
		if _, dup := c.labels[s]; dup {
			continue
		}
		c.order = append(c.order, s)
		c.labels[s] = struct{}{}
	}
	return c
}

// Slots returns the labels in catalog order. The returned slice is a copy.
func (c *Catalog) Slots() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Contains(label string) bool {
	_, ok := c.labels[label]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.order)
}
