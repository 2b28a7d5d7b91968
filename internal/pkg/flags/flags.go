package flags

import (
	"regexp"

	"github.com/pkg/errors"
)

// Provision holds the invocation parameters of one provisioning run.
type Provision struct {
	SubscriptionID    string
	ProjectName       string
	ResourceGroupName string
	Location          string
	SKU               string
	Kind              string
	IdentityType      string
	ClientID          string
	TenantID          string
}

// Locations are accepted both as API names ("northeurope") and display
// names ("North Europe").
var locationRegexp = regexp.MustCompile(`^[a-zA-Z0-9- ]+$`)

const maxResourceGroupNameLength = 90

// Validate checks the parameters that can be rejected before any call to
// the provider. The subscription id is treated as an opaque identifier,
// whether it resolves is for the provider to decide. The project name is
// only checked for presence: a name holding characters a storage account
// cannot is meant to fail at creation time so the provider error reaches
// the caller.
func (p Provision) Validate() error {
	if p.SubscriptionID == "" {
		return errors.New("subscription-id is required")
	}
	if p.ProjectName == "" {
		return errors.New("name is required")
	}
	if p.ResourceGroupName == "" {
		return errors.New("resource-group-name is required")
	}
	if len(p.ResourceGroupName) > maxResourceGroupNameLength {
		return errors.Errorf("resource group name exceeds maximum length (%d characters)", maxResourceGroupNameLength)
	}
	if p.Location == "" {
		return errors.New("location is required")
	}
	if !locationRegexp.MatchString(p.Location) {
		return errors.Errorf("invalid location format: %s", p.Location)
	}
	return nil
}
