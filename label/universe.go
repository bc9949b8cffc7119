package label

// Universe interns opaque entity identifiers to dense uint32 indices.
//
// All labelings that are compared against each other must be built over the
// same Universe value; identity of the pointer defines "same entity
// universe". A Universe only grows, existing indices never change.
type Universe struct {
	ids   map[string]uint32
	names []string
}

// NewUniverse creates a Universe pre-populated with the given entities.
func NewUniverse(entities ...string) *Universe {
	u := &Universe{
		ids: make(map[string]uint32, len(entities)),
	}
	for _, e := range entities {
		u.Intern(e)
	}
	return u
}

// Intern returns the index for entity, adding it to the universe if absent.
func (u *Universe) Intern(entity string) uint32 {
	if id, ok := u.ids[entity]; ok {
		return id
	}
	id := uint32(len(u.names))
	u.ids[entity] = id
	u.names = append(u.names, entity)
	return id
}

// Lookup returns the index for entity without adding it.
func (u *Universe) Lookup(entity string) (uint32, bool) {
	id, ok := u.ids[entity]
	return id, ok
}

// Name returns the entity identifier for a dense index.
// It panics if id is out of range, mirroring slice indexing.
func (u *Universe) Name(id uint32) string {
	return u.names[id]
}

// Len returns the number of interned entities.
func (u *Universe) Len() int {
	return len(u.names)
}
