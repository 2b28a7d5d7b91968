package azure

// Identity describes how the ambient credential of the environment is
// resolved. An empty Type selects the default credential chain.
type Identity struct {
	Type     string
	ClientID string
	TenantID string
}
