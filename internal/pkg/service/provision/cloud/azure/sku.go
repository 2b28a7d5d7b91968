package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
)

const (
	DefaultSKU  = string(armstorage.SKUNameStandardLRS)
	DefaultKind = string(armstorage.KindStorageV2)
)

var skuNames = map[string]armstorage.SKUName{
	"Standard_LRS":    armstorage.SKUNameStandardLRS,
	"Standard_ZRS":    armstorage.SKUNameStandardZRS,
	"Standard_GRS":    armstorage.SKUNameStandardGRS,
	"Standard_RAGRS":  armstorage.SKUNameStandardRAGRS,
	"Standard_GZRS":   armstorage.SKUNameStandardGZRS,
	"Standard_RAGZRS": armstorage.SKUNameStandardRAGZRS,
	"Premium_LRS":     armstorage.SKUNamePremiumLRS,
	"Premium_ZRS":     armstorage.SKUNamePremiumZRS,
}

var kinds = map[string]armstorage.Kind{
	"Storage":          armstorage.KindStorage,
	"StorageV2":        armstorage.KindStorageV2,
	"BlobStorage":      armstorage.KindBlobStorage,
	"BlockBlobStorage": armstorage.KindBlockBlobStorage,
	"FileStorage":      armstorage.KindFileStorage,
}

// ParseSKU maps a replication strategy name onto the ARM SKU set. An empty
// value falls back to Standard_LRS, anything outside the set is an error.
func ParseSKU(name string) (armstorage.SKUName, error) {
	if name == "" {
		return armstorage.SKUNameStandardLRS, nil
	}
	sku, ok := skuNames[name]
	if !ok {
		return "", fmt.Errorf("unsupported sku %s", name)
	}
	return sku, nil
}

// ParseKind maps an account kind name onto the ARM kind set. An empty value
// falls back to StorageV2, anything outside the set is an error.
func ParseKind(name string) (armstorage.Kind, error) {
	if name == "" {
		return armstorage.KindStorageV2, nil
	}
	kind, ok := kinds[name]
	if !ok {
		return "", fmt.Errorf("unsupported account kind %s", name)
	}
	return kind, nil
}
