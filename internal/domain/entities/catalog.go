package entities

// Context groups the strings of one dialog, action or widget class.
type Context struct {
	Name     string
	Messages []Message
}

// Catalog is a parsed translation file for one target language. It is built
// once and treated as read-only afterwards.
type Catalog struct {
	Path           string
	Version        string
	Language       string
	SourceLanguage string
	Contexts       []Context

	index map[Key]*Message
}

// Index builds the lookup table. It must be called after the contexts are
// complete; later edits to Contexts are not seen by Lookup.
func (c *Catalog) Index() {
	c.index = make(map[Key]*Message)
	for i := range c.Contexts {
		ctx := &c.Contexts[i]
		for j := range ctx.Messages {
			m := &ctx.Messages[j]
			k := m.Key()
			// First entry wins, like the runtime loader of the toolkit.
			if _, ok := c.index[k]; !ok {
				c.index[k] = m
			}
		}
	}
}

// Lookup returns the message for (context, source, comment).
func (c *Catalog) Lookup(context, source, comment string) (*Message, bool) {
	if c == nil {
		return nil, false
	}
	k := Key{Context: context, Source: source, Comment: comment}
	if c.index == nil {
		for _, m := range c.Messages() {
			if m.Key() == k {
				return m, true
			}
		}
		return nil, false
	}
	m, ok := c.index[k]
	return m, ok
}

// Messages flattens the catalog in file order.
func (c *Catalog) Messages() []*Message {
	var out []*Message
	for i := range c.Contexts {
		for j := range c.Contexts[i].Messages {
			out = append(out, &c.Contexts[i].Messages[j])
		}
	}
	return out
}

// Len returns the number of messages in the catalog.
func (c *Catalog) Len() int {
	n := 0
	for i := range c.Contexts {
		n += len(c.Contexts[i].Messages)
	}
	return n
}
