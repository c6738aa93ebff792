package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/aidconnect/aid-connect-api/schema"
)

const (
	resolveTimeout = 5 * time.Second
)

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
	ErrInvalidCoords  = fmt.Errorf("coordinates out of range")
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "geo")
}

// AddressResolver - interface for resolving the postal address of a location
type AddressResolver interface {
	ResolveAddress(ctx context.Context, loc schema.Location) (schema.Location, error)
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// geocoder is the part of *maps.Client used for reverse geocoding
type geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

type GeocodingAddressResolver struct {
	client geocoder
}

func NewGeocodingAddressResolver(client *maps.Client) *GeocodingAddressResolver {
	return &GeocodingAddressResolver{
		client: client,
	}
}

// ResolveAddress reverse geocodes the coordinate. A location that already
// carries an address is returned as is.
func (g *GeocodingAddressResolver) ResolveAddress(ctx context.Context, loc schema.Location) (schema.Location, error) {
	if loc.Address != "" {
		return loc, nil
	}

	if !loc.Valid() {
		return loc, ErrInvalidCoords
	}

	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		Language: "en",
	})
	if nil != err {
		return loc, err
	}

	if len(geos) == 0 || geos[0].FormattedAddress == "" {
		return loc, ErrNoGeoInfoFound
	}

	loc.Address = geos[0].FormattedAddress

	return loc, nil
}

// MultipleAddressResolver asks its resolvers in order until one succeeds
type MultipleAddressResolver struct {
	resolvers []AddressResolver
}

func NewMultipleAddressResolver(resolvers ...AddressResolver) *MultipleAddressResolver {
	return &MultipleAddressResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleAddressResolver) ResolveAddress(ctx context.Context, loc schema.Location) (schema.Location, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.ResolveAddress(ctx, loc)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return loc, NewMultipleResolverErrors(errors)
}

// NoopResolver is used when no map API key is configured
type NoopResolver struct{}

func (NoopResolver) ResolveAddress(_ context.Context, loc schema.Location) (schema.Location, error) {
	return loc, nil
}

// FillAddress resolves the address of loc when it has none. Any failure
// leaves the location untouched.
func FillAddress(ctx context.Context, resolver AddressResolver, loc schema.Location) schema.Location {
	if resolver == nil || loc.Address != "" {
		return loc
	}

	resolved, err := resolver.ResolveAddress(ctx, loc)
	if err != nil {
		log.WithFields(logrus.Fields{
			"latitude":  loc.Latitude,
			"longitude": loc.Longitude,
			"error":     err,
		}).Warn("resolve address")
		return loc
	}

	return resolved
}
