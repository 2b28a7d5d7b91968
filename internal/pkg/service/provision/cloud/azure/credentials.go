package azure

import (
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/pkg/errors"
)

const (
	IdentityTypeDefault          = ""
	IdentityTypeUserAssignedMSI  = "UserAssignedMSI"
	IdentityTypeWorkloadIdentity = "WorkloadIdentity"
)

// NewTokenCredential resolves the ambient identity into a token credential.
// The default chain picks up whatever the environment already carries
// (environment variables, managed identity, CLI login).
func NewTokenCredential(identity Identity) (azcore.TokenCredential, error) {
	switch identity.Type {
	case IdentityTypeDefault:
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create default credential")
		}
		return cred, nil
	case IdentityTypeUserAssignedMSI:
		cred, err := azidentity.NewManagedIdentityCredential(&azidentity.ManagedIdentityCredentialOptions{
			ID: azidentity.ClientID(identity.ClientID),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create managed identity credential with client ID %s", identity.ClientID)
		}
		return cred, nil
	case IdentityTypeWorkloadIdentity:
		cred, err := azidentity.NewWorkloadIdentityCredential(&azidentity.WorkloadIdentityCredentialOptions{
			TenantID: identity.TenantID,
			ClientID: identity.ClientID,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create workload identity credential with tenant ID %s", identity.TenantID)
		}
		return cred, nil
	default:
		return nil, errors.Errorf("unknown identity type %s", identity.Type)
	}
}

// SubscriptionIDFromEnvironment returns the subscription id the environment
// carries. AZURE_SUBSCRIPTION_ID takes precedence over ARM_SUBSCRIPTION_ID.
func SubscriptionIDFromEnvironment() (string, bool) {
	if subscriptionID := os.Getenv("AZURE_SUBSCRIPTION_ID"); subscriptionID != "" {
		return subscriptionID, true
	}
	if subscriptionID := os.Getenv("ARM_SUBSCRIPTION_ID"); subscriptionID != "" {
		return subscriptionID, true
	}
	return "", false
}
