package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aidconnect/aid-connect-api/schema"
)

const geoPositionHeader = "Geo-Position"

// parseGeoPosition will parse latitude and longitude from the geo-position
// string, formatted as "latitude;longitude"
func parseGeoPosition(geoPosition string) (schema.Location, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return schema.Location{}, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(positions[0]), 64)
	if err != nil {
		return schema.Location{}, err
	}

	long, err := strconv.ParseFloat(strings.TrimSpace(positions[1]), 64)
	if err != nil {
		return schema.Location{}, err
	}

	loc := schema.Location{Latitude: lat, Longitude: long}
	if !loc.Valid() {
		return schema.Location{}, fmt.Errorf("geo-position out of range")
	}

	return loc, nil
}

// headerLocation returns the position sent by the client in the Geo-Position
// header. A missing or malformed header yields nil.
func headerLocation(c *gin.Context) *schema.Location {
	gp := c.GetHeader(geoPositionHeader)
	if gp == "" {
		return nil
	}

	loc, err := parseGeoPosition(gp)
	if err != nil {
		log.WithField("geo_position", gp).WithError(err).Debug("ignore geo-position header")
		return nil
	}

	return &loc
}
