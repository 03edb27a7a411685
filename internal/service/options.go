package service

import (
	"fmt"
	"strings"

	"github.com/juju/clock"
)

// ReferencePolicy decides what a partial update does with a supplied foreign
// id that cannot be parsed or does not resolve.
type ReferencePolicy string

const (
	// ReferencesStrict fails the whole update.
	ReferencesStrict ReferencePolicy = "strict"
	// ReferencesLenient logs the bad reference, keeps the stored one and
	// applies the rest of the update.
	ReferencesLenient ReferencePolicy = "lenient"
)

// ParseReferencePolicy accepts "strict" or "lenient" in any case.
func ParseReferencePolicy(s string) (ReferencePolicy, error) {
	switch p := ReferencePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ReferencesStrict, ReferencesLenient:
		return p, nil
	}
	return "", fmt.Errorf("unknown reference policy %q", s)
}

// Options are the process-wide policies shared by all services.
type Options struct {
	// AssetReferences applies to ownerId/categoryId on asset updates.
	AssetReferences ReferencePolicy
	// TransactionReferences applies to assetId on transaction updates.
	TransactionReferences ReferencePolicy
	// EmptyListIsError makes every List operation return a NotFoundError
	// instead of an empty slice.
	EmptyListIsError bool
	// Clock supplies purchase and transaction dates.
	Clock clock.Clock
}

// DefaultOptions returns strict asset references, lenient transaction
// references, empty lists as valid results and the wall clock.
func DefaultOptions() Options {
	return Options{
		AssetReferences:       ReferencesStrict,
		TransactionReferences: ReferencesLenient,
		Clock:                 clock.WallClock,
	}
}

// withDefaults fills zero-valued fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.AssetReferences == "" {
		o.AssetReferences = d.AssetReferences
	}
	if o.TransactionReferences == "" {
		o.TransactionReferences = d.TransactionReferences
	}
	if o.Clock == nil {
		o.Clock = d.Clock
	}
	return o
}
