package azure

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// isNotFound reports whether err is the provider telling us the resource
// does not exist, which the callers treat as a branch signal.
func isNotFound(err error) bool {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusNotFound
	}
	return false
}

func armTags(tags map[string]string) map[string]*string {
	result := make(map[string]*string)
	for key, value := range tags {
		if key != "" && value != "" {
			value := value
			result[key] = &value
		}
	}
	return result
}
