package kernel

// Actor is the authenticated caller of a lifecycle operation, as yielded by the identity provider.
type Actor struct {
	ID      UUID
	Name    string
	Email   string
	IsAdmin bool
}

// NewActor requires a valid id. Name and email may be empty.
func NewActor(id UUID, name, email string, isAdmin bool) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Name: name, Email: email, IsAdmin: isAdmin}, nil
}

// Validate rejects the zero Actor, which stands for an unauthenticated caller.
func (a Actor) Validate() error {
	return a.ID.Validate()
}

// Is reports whether the actor is the user identified by id.
func (a Actor) Is(id UUID) bool {
	return a.ID.IsEqual(id)
}
