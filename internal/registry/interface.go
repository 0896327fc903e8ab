package registry

// GroupDirectory resolves group names to member calendar identities.
// The scheduling flow depends only on this narrow read view.
type GroupDirectory interface {
	GetMembers(name string) ([]string, error)
}
