package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"

	"github.com/giantswarm/storage-account-provisioner/internal/pkg/service/provision"
)

// StorageAccountsAdapter implements provision.StorageAccountAPI on top of
// the ARM storage accounts client.
type StorageAccountsAdapter struct {
	client *armstorage.AccountsClient
}

func NewStorageAccountsAdapter(client *armstorage.AccountsClient) StorageAccountsAdapter {
	return StorageAccountsAdapter{client: client}
}

func (a StorageAccountsAdapter) Get(ctx context.Context, resourceGroup string, name string) (*provision.StorageAccount, bool, error) {
	resp, err := a.client.GetProperties(ctx, resourceGroup, name, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get storage account %s: %w", name, err)
	}
	return storageAccountFromARM(resp.Account), true, nil
}

func (a StorageAccountsAdapter) Create(ctx context.Context, resourceGroup string, spec provision.StorageAccountSpec) (*provision.StorageAccount, error) {
	sku, err := ParseSKU(spec.SKU)
	if err != nil {
		return nil, err
	}
	kind, err := ParseKind(spec.Kind)
	if err != nil {
		return nil, err
	}

	poller, err := a.client.BeginCreate(
		ctx,
		resourceGroup,
		spec.Name,
		armstorage.AccountCreateParameters{
			Kind: to.Ptr(kind),
			SKU: &armstorage.SKU{
				Name: to.Ptr(sku),
			},
			Location: to.Ptr(spec.Location),
			Properties: &armstorage.AccountPropertiesCreateParameters{
				AllowBlobPublicAccess:  to.Ptr(false),
				EnableHTTPSTrafficOnly: to.Ptr(true),
				MinimumTLSVersion:      to.Ptr(armstorage.MinimumTLSVersionTLS12),
			},
			Tags: armTags(spec.Tags),
		},
		nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin create storage account %s: %w", spec.Name, err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to complete storage account %s creation: %w", spec.Name, err)
	}
	return storageAccountFromARM(resp.Account), nil
}

func storageAccountFromARM(account armstorage.Account) *provision.StorageAccount {
	result := &provision.StorageAccount{}
	if account.Name != nil {
		result.Name = *account.Name
	}
	if account.Location != nil {
		result.Location = *account.Location
	}
	if account.SKU != nil && account.SKU.Name != nil {
		result.SKU = string(*account.SKU.Name)
	}
	if account.Kind != nil {
		result.Kind = string(*account.Kind)
	}
	return result
}
