package customer

// AddressChanges is the staged outcome of replacing an owner's address set
type AddressChanges struct {
	ToDelete []Address
	ToInsert []Address
}

// ReplaceAddresses computes a full replacement of the owner's addresses.
//
// Every current address is scheduled for deletion and every incoming address
// for insertion. Incoming identities and owner references are never trusted:
// IDs are cleared and CustomerID is forced to ownerID. A nil or empty incoming
// set deletes everything and inserts nothing.
func ReplaceAddresses(ownerID uint, current, incoming []Address) AddressChanges {
	changes := AddressChanges{
		ToDelete: make([]Address, 0, len(current)),
		ToInsert: make([]Address, 0, len(incoming)),
	}
	changes.ToDelete = append(changes.ToDelete, current...)
	for _, a := range incoming {
		a.ID = 0
		a.CustomerID = ownerID
		changes.ToInsert = append(changes.ToInsert, a)
	}
	return changes
}

// DeleteIDs returns the identities scheduled for deletion
func (c AddressChanges) DeleteIDs() []uint {
	ids := make([]uint, 0, len(c.ToDelete))
	for _, a := range c.ToDelete {
		ids = append(ids, a.ID)
	}
	return ids
}
