package provision_test

import (
	"context"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/giantswarm/storage-account-provisioner/internal/pkg/service/provision"
	"github.com/giantswarm/storage-account-provisioner/internal/pkg/service/provision/provisionfakes"
)

var _ = Describe("Provisioner", func() {
	const (
		ProjectName       string = "ProjectName"
		ResourceGroupName string = "RGName"
		Location          string = "North Europe"
		AccountName       string = "projectnamestorage"
	)

	var (
		ctx context.Context

		resourceGroups  *provisionfakes.FakeResourceGroupAPI
		storageAccounts *provisionfakes.FakeStorageAccountAPI
		provisioner     provision.Provisioner

		request provision.Request
		result  provision.Result
		err     error
	)

	BeforeEach(func() {
		ctx = context.Background()

		resourceGroups = &provisionfakes.FakeResourceGroupAPI{}
		storageAccounts = &provisionfakes.FakeStorageAccountAPI{}
		provisioner = provision.NewProvisioner(resourceGroups, storageAccounts, logr.Discard())

		request = provision.Request{
			ProjectName:       ProjectName,
			ResourceGroupName: ResourceGroupName,
			Location:          Location,
			SKU:               "Standard_LRS",
			Kind:              "StorageV2",
		}
	})

	JustBeforeEach(func() {
		result, err = provisioner.Provision(ctx, request)
	})

	When("neither the resource group nor the storage account exists", func() {
		BeforeEach(func() {
			resourceGroups.GetReturns(nil, false, nil)
			resourceGroups.CreateReturns(&provision.ResourceGroup{Name: ResourceGroupName, Location: Location}, nil)
			storageAccounts.GetReturnsOnCall(0, nil, false, nil)
			storageAccounts.CreateReturns(&provision.StorageAccount{Name: AccountName}, nil)
			storageAccounts.GetReturnsOnCall(1, &provision.StorageAccount{Name: AccountName}, true, nil)
		})

		It("creates the resource group in the requested location", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(resourceGroups.CreateCallCount()).To(Equal(1))
			_, name, location, _ := resourceGroups.CreateArgsForCall(0)
			Expect(name).To(Equal(ResourceGroupName))
			Expect(location).To(Equal(Location))
		})

		It("creates the storage account under the derived name with the requested sku and kind", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(storageAccounts.CreateCallCount()).To(Equal(1))
			_, resourceGroup, spec := storageAccounts.CreateArgsForCall(0)
			Expect(resourceGroup).To(Equal(ResourceGroupName))
			Expect(spec.Name).To(Equal(AccountName))
			Expect(spec.Location).To(Equal(Location))
			Expect(spec.SKU).To(Equal("Standard_LRS"))
			Expect(spec.Kind).To(Equal("StorageV2"))
		})

		It("returns the provider reported account name and created outcomes", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StorageAccountName).To(Equal(AccountName))
			Expect(result.ResourceGroupOutcome).To(Equal(provision.OutcomeCreated))
			Expect(result.StorageAccountOutcome).To(Equal(provision.OutcomeCreated))
		})
	})

	When("both resources already exist", func() {
		BeforeEach(func() {
			resourceGroups.GetReturns(&provision.ResourceGroup{Name: ResourceGroupName, Location: Location}, true, nil)
			storageAccounts.GetReturns(&provision.StorageAccount{Name: AccountName}, true, nil)
		})

		It("issues no creation call", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(resourceGroups.CreateCallCount()).To(Equal(0))
			Expect(storageAccounts.CreateCallCount()).To(Equal(0))
		})

		It("reports both resources as found", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StorageAccountName).To(Equal(AccountName))
			Expect(result.ResourceGroupOutcome).To(Equal(provision.OutcomeFound))
			Expect(result.StorageAccountOutcome).To(Equal(provision.OutcomeFound))
		})
	})

	When("the resource group exists in another location", func() {
		BeforeEach(func() {
			resourceGroups.GetReturns(&provision.ResourceGroup{Name: ResourceGroupName, Location: "West Europe"}, true, nil)
			storageAccounts.GetReturns(&provision.StorageAccount{Name: AccountName}, true, nil)
		})

		It("reuses the group unchanged", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(resourceGroups.CreateCallCount()).To(Equal(0))
			Expect(result.ResourceGroupOutcome).To(Equal(provision.OutcomeFound))
		})
	})

	When("the resource group lookup fails", func() {
		BeforeEach(func() {
			resourceGroups.GetReturns(nil, false, errors.New("boom"))
		})

		It("aborts before any resource is touched", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(ResourceGroupName))
			Expect(resourceGroups.CreateCallCount()).To(Equal(0))
			Expect(storageAccounts.GetCallCount()).To(Equal(0))
		})
	})

	When("the resource group creation fails", func() {
		BeforeEach(func() {
			resourceGroups.GetReturns(nil, false, nil)
			resourceGroups.CreateReturns(nil, errors.New("quota exceeded"))
		})

		It("aborts without touching the storage account", func() {
			Expect(err).To(HaveOccurred())
			Expect(storageAccounts.GetCallCount()).To(Equal(0))
			Expect(storageAccounts.CreateCallCount()).To(Equal(0))
		})
	})

	When("the storage account creation is rejected", func() {
		BeforeEach(func() {
			resourceGroups.GetReturns(&provision.ResourceGroup{Name: ResourceGroupName, Location: Location}, true, nil)
			storageAccounts.GetReturns(nil, false, nil)
			storageAccounts.CreateReturns(nil, errors.New("name collision"))
		})

		It("fails naming the candidate account and yields no result", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(AccountName))
			Expect(result).To(Equal(provision.Result{}))
		})

		It("leaves the resource group in place", func() {
			Expect(err).To(HaveOccurred())
			Expect(resourceGroups.CreateCallCount()).To(Equal(0))
		})
	})

	When("the storage account stays absent after creation", func() {
		BeforeEach(func() {
			resourceGroups.GetReturns(&provision.ResourceGroup{Name: ResourceGroupName, Location: Location}, true, nil)
			storageAccounts.GetReturnsOnCall(0, nil, false, nil)
			storageAccounts.CreateReturns(&provision.StorageAccount{Name: AccountName}, nil)
			storageAccounts.GetReturnsOnCall(1, nil, false, nil)
		})

		It("fails pointing at the logs and yields no result", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(AccountName))
			Expect(err.Error()).To(ContainSubstring("inspect the logs"))
			Expect(result).To(Equal(provision.Result{}))
		})
	})

	When("the same request runs twice", func() {
		BeforeEach(func() {
			resourceGroups.GetReturnsOnCall(0, nil, false, nil)
			resourceGroups.CreateReturns(&provision.ResourceGroup{Name: ResourceGroupName, Location: Location}, nil)
			resourceGroups.GetReturnsOnCall(1, &provision.ResourceGroup{Name: ResourceGroupName, Location: Location}, true, nil)
			storageAccounts.GetReturnsOnCall(0, nil, false, nil)
			storageAccounts.CreateReturns(&provision.StorageAccount{Name: AccountName}, nil)
			storageAccounts.GetReturns(&provision.StorageAccount{Name: AccountName}, true, nil)
		})

		It("creates on the first run only and settles on the same account", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StorageAccountOutcome).To(Equal(provision.OutcomeCreated))

			second, err := provisioner.Provision(ctx, request)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.StorageAccountName).To(Equal(result.StorageAccountName))
			Expect(second.ResourceGroupOutcome).To(Equal(provision.OutcomeFound))
			Expect(second.StorageAccountOutcome).To(Equal(provision.OutcomeFound))
			Expect(resourceGroups.CreateCallCount()).To(Equal(1))
			Expect(storageAccounts.CreateCallCount()).To(Equal(1))
		})
	})
})
