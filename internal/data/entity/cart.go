package entity

// CartEntry is an unpurchased line item. Purchasing deletes it; there is
// no purchased state.
type CartEntry struct {
	Record
}

func (c CartEntry) Email() string {
	return c.Doc.String("email")
}

func (c CartEntry) MenuItemID() string {
	return c.Doc.String("menuItemId")
}
