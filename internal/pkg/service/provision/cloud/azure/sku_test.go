package azure

import (
	"strconv"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
)

func Test_ParseSKU(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectedSKU armstorage.SKUName
		expectError bool
	}{
		{
			name:        "case 0: empty defaults to Standard_LRS",
			input:       "",
			expectedSKU: armstorage.SKUNameStandardLRS,
		},
		{
			name:        "case 1: locally-redundant",
			input:       "Standard_LRS",
			expectedSKU: armstorage.SKUNameStandardLRS,
		},
		{
			name:        "case 2: read-access geo-zone-redundant",
			input:       "Standard_RAGZRS",
			expectedSKU: armstorage.SKUNameStandardRAGZRS,
		},
		{
			name:        "case 3: premium zone-redundant",
			input:       "Premium_ZRS",
			expectedSKU: armstorage.SKUNamePremiumZRS,
		},
		{
			name:        "case 4: unknown sku is rejected",
			input:       "Standard_XXX",
			expectError: true,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			sku, err := ParseSKU(tc.input)

			if tc.expectError {
				if err == nil {
					t.Fatalf("Expected an error, but got sku %s", sku)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %s", err)
			}
			if sku != tc.expectedSKU {
				t.Fatalf("Expected sku: %s, but got: %s", tc.expectedSKU, sku)
			}
		})
	}
}

func Test_ParseKind(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedKind armstorage.Kind
		expectError  bool
	}{
		{
			name:         "case 0: empty defaults to StorageV2",
			input:        "",
			expectedKind: armstorage.KindStorageV2,
		},
		{
			name:         "case 1: general-purpose v1",
			input:        "Storage",
			expectedKind: armstorage.KindStorage,
		},
		{
			name:         "case 2: block-blob-only",
			input:        "BlockBlobStorage",
			expectedKind: armstorage.KindBlockBlobStorage,
		},
		{
			name:         "case 3: file-only",
			input:        "FileStorage",
			expectedKind: armstorage.KindFileStorage,
		},
		{
			name:        "case 4: unknown kind is rejected",
			input:       "TableStorage",
			expectError: true,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			kind, err := ParseKind(tc.input)

			if tc.expectError {
				if err == nil {
					t.Fatalf("Expected an error, but got kind %s", kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %s", err)
			}
			if kind != tc.expectedKind {
				t.Fatalf("Expected kind: %s, but got: %s", tc.expectedKind, kind)
			}
		})
	}
}
