package gui

// FindByName searches the source tree breadth-first for the first
// panel with the given name, descending only into Panels content.
// Inactive panels are searched too; game logic commonly looks up a
// hidden panel precisely to activate it. Returns nil if no panel
// matches.
//
// The returned pointer aliases the tree: mutations through it are
// picked up by the next Resolve.
func FindByName(panels []Panel, name string) *Panel {
	queue := make([]*Panel, 0, len(panels))
	for i := range panels {
		queue = append(queue, &panels[i])
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if p.Name == name {
			return p
		}
		if c, ok := p.Content.(Panels); ok {
			for i := range c.Children {
				queue = append(queue, &c.Children[i])
			}
		}
	}

	return nil
}
