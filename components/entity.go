package components

// Member ties an ECS entity to its individual. Seq is the registration
// sequence number and orders the registry.
type Member struct {
	Ind *Individual
	Seq int
}

// Alive tag component marks entities whose individual has not died.
type Alive struct{}
