package stores

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// ErrUnknownStore is returned when a caller-supplied store id does not
// resolve. It is a client error, never a crash.
var ErrUnknownStore = errors.New("unknown store")

// Store is the configuration of a single remote catalog.
type Store struct {
	// ID is the short identifier callers select the store with.
	ID string `mapstructure:"-" json:"id"`
	// Title is the human-readable name shown in listings.
	Title string `mapstructure:"title" json:"title"`
	// StoreName is the remote store handle (e.g. "af-murphy").
	StoreName string `mapstructure:"store_name" json:"-"`
	// APIVersion is the remote API version to pin requests to.
	APIVersion string `mapstructure:"api_version" json:"-"`
	// AccessToken is the credential for the remote Admin API.
	AccessToken string `mapstructure:"access_token" json:"-"`
}

// Domain returns the full remote domain for the store.
func (s Store) Domain() string {
	return s.StoreName + ".myshopify.com"
}

// DisplayName derives the short uppercase label the UI shows, dropping any
// prefix before the first dash ("af-murphy" -> "MURPHY").
func (s Store) DisplayName() string {
	name := s.StoreName
	if i := strings.Index(name, "-"); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToUpper(name)
}

// Registry is the immutable store table. Construct it with Load or
// NewRegistry and share it freely; it is read-only after construction.
type Registry struct {
	stores map[string]Store
}

// NewRegistry builds a registry from an explicit store list. Used by tests
// and by the config generator.
func NewRegistry(list []Store) *Registry {
	m := make(map[string]Store, len(list))
	for _, s := range list {
		m[s.ID] = s
	}
	return &Registry{stores: m}
}

// Load reads the store table from a TOML file.
func Load(path string) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read store config %s: %w", path, err)
	}

	raw := map[string]Store{}
	if err := v.UnmarshalKey("stores", &raw); err != nil {
		return nil, fmt.Errorf("failed to parse store config %s: %w", path, err)
	}

	m := make(map[string]Store, len(raw))
	for id, s := range raw {
		s.ID = id
		m[id] = s
	}

	return &Registry{stores: m}, nil
}

// Get resolves a store by id.
func (r *Registry) Get(id string) (Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return Store{}, fmt.Errorf("%w: %q", ErrUnknownStore, id)
	}
	return s, nil
}

// List returns all stores sorted by id. Credentials are carried on the
// struct but excluded from JSON serialization.
func (r *Registry) List() []Store {
	out := make([]Store, 0, len(r.stores))
	for _, s := range r.stores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of configured stores.
func (r *Registry) Len() int {
	return len(r.stores)
}
