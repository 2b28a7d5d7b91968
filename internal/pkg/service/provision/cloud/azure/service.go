package azure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/pkg/errors"
)

// ProvisionService bundles the ARM adapters the provisioner needs.
type ProvisionService struct {
	ResourceGroups  ResourceGroupsAdapter
	StorageAccounts StorageAccountsAdapter
}

// NewProvisionService builds the ARM clients for the subscription and wraps
// them in the adapters. This is the only place clients are constructed, the
// rest of the code talks to the provision ports.
func NewProvisionService(subscriptionID string, credential azcore.TokenCredential) (ProvisionService, error) {
	resourceGroupsClient, err := armresources.NewResourceGroupsClient(subscriptionID, credential, nil)
	if err != nil {
		return ProvisionService{}, errors.Wrapf(err, "failed to create resource groups client for subscription %s", subscriptionID)
	}

	storageClientFactory, err := armstorage.NewClientFactory(subscriptionID, credential, nil)
	if err != nil {
		return ProvisionService{}, errors.Wrapf(err, "failed to create storage client factory for subscription %s", subscriptionID)
	}

	return ProvisionService{
		ResourceGroups:  NewResourceGroupsAdapter(resourceGroupsClient),
		StorageAccounts: NewStorageAccountsAdapter(storageClientFactory.NewAccountsClient()),
	}, nil
}
