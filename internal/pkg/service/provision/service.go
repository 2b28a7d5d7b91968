package provision

import "context"

// ResourceGroup is the provider view of a resource group.
type ResourceGroup struct {
	Name     string
	Location string
}

// StorageAccount is the provider view of a storage account.
type StorageAccount struct {
	Name     string
	Location string
	SKU      string
	Kind     string
}

// StorageAccountSpec describes the storage account to create when none
// exists under the derived name.
type StorageAccountSpec struct {
	Name     string
	Location string
	SKU      string
	Kind     string
	Tags     map[string]string
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . ResourceGroupAPI
type ResourceGroupAPI interface {
	// Get returns the resource group and true when it exists. A not-found
	// answer from the provider returns (nil, false, nil), it is not an error.
	Get(ctx context.Context, name string) (*ResourceGroup, bool, error)
	Create(ctx context.Context, name string, location string, tags map[string]string) (*ResourceGroup, error)
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . StorageAccountAPI
type StorageAccountAPI interface {
	// Get returns the storage account and true when it exists in the given
	// resource group. A not-found answer from the provider returns
	// (nil, false, nil), it is not an error.
	Get(ctx context.Context, resourceGroup string, name string) (*StorageAccount, bool, error)
	Create(ctx context.Context, resourceGroup string, spec StorageAccountSpec) (*StorageAccount, error)
}
