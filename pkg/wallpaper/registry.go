package wallpaper

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/dixieflatline76/animewp/config"
	"github.com/dixieflatline76/animewp/pkg/provider"
)

// ProviderFactory defines the function signature for creating a provider.
type ProviderFactory func(cfg *config.Config, client *http.Client) provider.ImageProvider

var providerRegistry = make(map[string]ProviderFactory)

// RegisterProvider registers a new image provider factory.
func RegisterProvider(name string, factory ProviderFactory) {
	providerRegistry[name] = factory
}

// GetRegisteredProviders returns the names of all registered providers, sorted.
func GetRegisteredProviders() []string {
	names := make([]string, 0, len(providerRegistry))
	for name := range providerRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewProvider instantiates the registered provider called name.
func NewProvider(name string, cfg *config.Config, client *http.Client) (provider.ImageProvider, error) {
	factory, ok := providerRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown image provider %q (registered: %v)", name, GetRegisteredProviders())
	}
	return factory(cfg, client), nil
}
