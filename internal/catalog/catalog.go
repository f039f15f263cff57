package catalog

import (
	"fmt"
	"time"

	saltpasserrors "saltpass/internal/errors"
	"saltpass/internal/password"
)

// Feature is one entry in the catalog: a public identifier that, combined
// with the master secret, derives a password. Nothing in a Feature is
// secret; the derived password is never stored.
type Feature struct {
	Name       string             `toml:"name" json:"name"`
	Identifier string             `toml:"identifier" json:"identifier"`
	Algorithm  password.Algorithm `toml:"algorithm" json:"algorithm"`
	CreatedAt  time.Time          `toml:"created" json:"created"`
	Hint       string             `toml:"hint,omitempty" json:"hint,omitempty"`
}

// NewFeature builds a Feature with the creation timestamp set to now.
func NewFeature(name, identifier string, alg password.Algorithm, hint string) Feature {
	return Feature{
		Name:       name,
		Identifier: identifier,
		Algorithm:  alg,
		CreatedAt:  time.Now().UTC(),
		Hint:       hint,
	}
}

// Label renders the feature for listings and interactive pickers.
func (f Feature) Label() string {
	if f.Hint != "" {
		return fmt.Sprintf("%s (%s) - %s", f.Name, f.Identifier, f.Hint)
	}
	return fmt.Sprintf("%s (%s)", f.Name, f.Identifier)
}

// Catalog is the ordered collection of features for one store. Insertion
// order is preserved for listing. Identifiers are unique with case-sensitive
// exact matching. All mutations are in-memory only; persistence belongs to
// the store package.
type Catalog struct {
	features []Feature
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// FromFeatures builds a catalog from already-deserialized features,
// rejecting duplicate identifiers.
func FromFeatures(features []Feature) (*Catalog, error) {
	c := New()
	for _, f := range features {
		if err := c.Add(f); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a feature, failing if its identifier is already present.
// The catalog is unchanged on failure.
func (c *Catalog) Add(f Feature) error {
	if _, err := c.Find(f.Identifier); err == nil {
		return fmt.Errorf("%w: %q", saltpasserrors.ErrDuplicateIdentifier, f.Identifier)
	}
	c.features = append(c.features, f)
	return nil
}

// Find returns the feature with the given identifier.
func (c *Catalog) Find(identifier string) (Feature, error) {
	for _, f := range c.features {
		if f.Identifier == identifier {
			return f, nil
		}
	}
	return Feature{}, fmt.Errorf("%w: %q", saltpasserrors.ErrFeatureNotFound, identifier)
}

// Remove deletes the feature with the given identifier, preserving the
// order of the remaining features.
func (c *Catalog) Remove(identifier string) error {
	for i, f := range c.features {
		if f.Identifier == identifier {
			c.features = append(c.features[:i], c.features[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", saltpasserrors.ErrFeatureNotFound, identifier)
}

// SetAlgorithm changes the derivation algorithm for an existing feature.
// Changing the algorithm changes the password derived for the identifier;
// the CLI requires explicit operator confirmation before calling this.
func (c *Catalog) SetAlgorithm(identifier string, alg password.Algorithm) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: unknown algorithm %q", saltpasserrors.ErrAlgorithmParameter, alg)
	}
	for i, f := range c.features {
		if f.Identifier == identifier {
			c.features[i].Algorithm = alg
			return nil
		}
	}
	return fmt.Errorf("%w: %q", saltpasserrors.ErrFeatureNotFound, identifier)
}

// List returns the features in insertion order. The returned slice is the
// catalog's backing storage; callers must not mutate it.
func (c *Catalog) List() []Feature {
	return c.features
}

// Len returns the number of features.
func (c *Catalog) Len() int {
	return len(c.features)
}
