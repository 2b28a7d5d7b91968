package provision

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
)

// Request carries the resolved parameters of one provisioning run.
type Request struct {
	ProjectName       string
	ResourceGroupName string
	Location          string
	SKU               string
	Kind              string
	Tags              map[string]string
}

// Result reports the verified storage account and how each resource was
// settled. StorageAccountName is the name the provider reports, not the
// locally computed candidate.
type Result struct {
	StorageAccountName    string
	ResourceGroupOutcome  Outcome
	StorageAccountOutcome Outcome
}

// Provisioner runs the sequential ensure steps against a cloud provider.
// Every call blocks until the provider answers, there is no retry or
// timeout of its own beyond what the context carries.
type Provisioner struct {
	resourceGroups  ResourceGroupAPI
	storageAccounts StorageAccountAPI
	logger          logr.Logger
}

func NewProvisioner(resourceGroups ResourceGroupAPI, storageAccounts StorageAccountAPI, logger logr.Logger) Provisioner {
	return Provisioner{
		resourceGroups:  resourceGroups,
		storageAccounts: storageAccounts,
		logger:          logger,
	}
}

// Provision ensures the resource group and the derived storage account
// exist, re-reads the account and returns its provider-reported name.
func (p Provisioner) Provision(ctx context.Context, req Request) (Result, error) {
	p.logger.Info("Started provisioning storage account", "project", req.ProjectName, "resourceGroup", req.ResourceGroupName)
	defer p.logger.Info("Finished provisioning storage account", "project", req.ProjectName, "resourceGroup", req.ResourceGroupName)

	groupOutcome, err := p.ensureResourceGroup(ctx, req)
	if err != nil {
		return Result{}, err
	}

	accountName := StorageAccountName(req.ProjectName)
	if HasInvalidStorageAccountCharacters(accountName) {
		p.logger.Info("Derived storage account name holds characters the provider will reject", "storageAccount", accountName)
	}

	accountOutcome, err := p.ensureStorageAccount(ctx, req, accountName)
	if err != nil {
		return Result{}, err
	}

	account, found, err := p.storageAccounts.Get(ctx, req.ResourceGroupName, accountName)
	if err != nil {
		return Result{}, fmt.Errorf("failed to verify storage account %s: %w", accountName, err)
	}
	if !found {
		return Result{}, fmt.Errorf("storage account %s is still absent after provisioning, inspect the logs above for details", accountName)
	}

	if accountOutcome == OutcomeCreated {
		p.logger.Info(fmt.Sprintf("storage account %s created", account.Name))
	} else {
		p.logger.Info(fmt.Sprintf("storage account %s verified existing", account.Name))
	}

	return Result{
		StorageAccountName:    account.Name,
		ResourceGroupOutcome:  groupOutcome,
		StorageAccountOutcome: accountOutcome,
	}, nil
}

func (p Provisioner) ensureResourceGroup(ctx context.Context, req Request) (Outcome, error) {
	group, found, err := p.resourceGroups.Get(ctx, req.ResourceGroupName)
	if err != nil {
		return "", fmt.Errorf("failed to look up resource group %s: %w", req.ResourceGroupName, err)
	}

	outcome := PlanEnsure(found)
	if outcome == OutcomeFound {
		// The group is reused as is, its location is never reconciled.
		p.logger.Info(fmt.Sprintf("resource group %s already exists", group.Name), "location", group.Location)
		return outcome, nil
	}

	if _, err := p.resourceGroups.Create(ctx, req.ResourceGroupName, req.Location, req.Tags); err != nil {
		return "", fmt.Errorf("failed to create resource group %s: %w", req.ResourceGroupName, err)
	}
	p.logger.Info(fmt.Sprintf("resource group %s created", req.ResourceGroupName), "location", req.Location)
	return outcome, nil
}

func (p Provisioner) ensureStorageAccount(ctx context.Context, req Request, accountName string) (Outcome, error) {
	_, found, err := p.storageAccounts.Get(ctx, req.ResourceGroupName, accountName)
	if err != nil {
		return "", fmt.Errorf("failed to look up storage account %s: %w", accountName, err)
	}

	outcome := PlanEnsure(found)
	if outcome == OutcomeFound {
		// An existing account is only checked for presence, its SKU and
		// kind are never touched.
		return outcome, nil
	}

	_, err = p.storageAccounts.Create(ctx, req.ResourceGroupName, StorageAccountSpec{
		Name:     accountName,
		Location: req.Location,
		SKU:      req.SKU,
		Kind:     req.Kind,
		Tags:     req.Tags,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create storage account %s: %w", accountName, err)
	}
	return outcome, nil
}
