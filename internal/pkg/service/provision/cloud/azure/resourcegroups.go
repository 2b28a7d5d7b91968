package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/giantswarm/storage-account-provisioner/internal/pkg/service/provision"
)

// ResourceGroupsAdapter implements provision.ResourceGroupAPI on top of the
// ARM resource groups client.
type ResourceGroupsAdapter struct {
	client *armresources.ResourceGroupsClient
}

func NewResourceGroupsAdapter(client *armresources.ResourceGroupsClient) ResourceGroupsAdapter {
	return ResourceGroupsAdapter{client: client}
}

func (a ResourceGroupsAdapter) Get(ctx context.Context, name string) (*provision.ResourceGroup, bool, error) {
	resp, err := a.client.Get(ctx, name, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get resource group %s: %w", name, err)
	}
	return resourceGroupFromARM(resp.ResourceGroup), true, nil
}

func (a ResourceGroupsAdapter) Create(ctx context.Context, name string, location string, tags map[string]string) (*provision.ResourceGroup, error) {
	resp, err := a.client.CreateOrUpdate(
		ctx,
		name,
		armresources.ResourceGroup{
			Location: to.Ptr(location),
			Tags:     armTags(tags),
		},
		nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource group %s: %w", name, err)
	}
	return resourceGroupFromARM(resp.ResourceGroup), nil
}

func resourceGroupFromARM(group armresources.ResourceGroup) *provision.ResourceGroup {
	result := &provision.ResourceGroup{}
	if group.Name != nil {
		result.Name = *group.Name
	}
	if group.Location != nil {
		result.Location = *group.Location
	}
	return result
}
