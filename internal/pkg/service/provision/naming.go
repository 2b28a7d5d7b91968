package provision

import (
	"strings"

	"github.com/aquilax/truncate"
	sanitize "github.com/mrz1836/go-sanitize"
)

const (
	storageAccountNameSuffix    = "storage"
	storageAccountNameMaxLength = 24
	// Names over the maximum are cut to 23 characters, one short of the
	// documented 24 character limit. Deliberate, see DESIGN.md.
	storageAccountNameCutLength = 23
)

// StorageAccountName derives the storage account name from the project name:
// the "storage" suffix is appended, the result is lower-cased and, when it
// exceeds 24 characters, cut to its first 23.
// more details https://learn.microsoft.com/en-us/rest/api/storagerp/storage-accounts/get-properties?view=rest-storagerp-2023-01-01&tabs=HTTP#uri-parameters
func StorageAccountName(projectName string) string {
	name := strings.ToLower(projectName + storageAccountNameSuffix)
	if len(name) > storageAccountNameMaxLength {
		name = truncate.Truncate(name, storageAccountNameCutLength, "", truncate.PositionEnd)
	}
	return name
}

// HasInvalidStorageAccountCharacters reports whether the derived name holds
// characters a storage account name cannot. The name is never rewritten:
// creation must fail on the provider side and that failure reach the caller.
func HasInvalidStorageAccountCharacters(name string) bool {
	return sanitize.AlphaNumeric(name, false) != name
}
