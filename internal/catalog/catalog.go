package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/i474232898/weather-flight/internal/weather"
)

var (
	// ErrDestinationNotFound is returned for unknown destination ids or names.
	ErrDestinationNotFound = errors.New("destination not found")
	// ErrActivityNotFound is returned for unknown activity ids.
	ErrActivityNotFound = errors.New("activity not found")
)

var namespace = uuid.MustParse("5f0c8f1e-6a55-4d0e-9a3c-6b1f2f6f7a10")

// StableID derives a deterministic id from kind and name so catalog ids survive restarts.
func StableID(kind, name string) string {
	return uuid.NewSHA1(namespace, []byte(kind+"/"+name)).String()
}

// Activity is something to do at a destination, tagged with the weather it suits.
type Activity struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Category       string              `json:"category"`
	Destination    string              `json:"destination"`
	RecommendedFor []weather.Condition `json:"recommendedFor"`
}

// RecommendedWhen reports whether the activity suits condition c.
func (a Activity) RecommendedWhen(c weather.Condition) bool {
	for _, rc := range a.RecommendedFor {
		if rc == c {
			return true
		}
	}
	return false
}

// Catalog is the read-only set of destinations and activities.
type Catalog struct {
	destinations []weather.Destination
	activities   []Activity
	destByID     map[string]weather.Destination
	actByID      map[string]Activity
}

// New builds a catalog, assigning stable ids to entries that have none.
func New(destinations []weather.Destination, activities []Activity) *Catalog {
	c := &Catalog{
		destByID: make(map[string]weather.Destination, len(destinations)),
		actByID:  make(map[string]Activity, len(activities)),
	}
	for _, d := range destinations {
		if d.ID == "" {
			d.ID = StableID("destination", d.Name)
		}
		c.destinations = append(c.destinations, d)
		c.destByID[d.ID] = d
	}
	for _, a := range activities {
		if a.ID == "" {
			a.ID = StableID("activity", a.Destination+"/"+a.Name)
		}
		c.activities = append(c.activities, a)
		c.actByID[a.ID] = a
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultDestinations, defaultActivities)
}

// Destinations returns every destination in catalog order.
func (c *Catalog) Destinations() []weather.Destination {
	out := make([]weather.Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// Destination looks a destination up by id.
func (c *Catalog) Destination(id string) (weather.Destination, error) {
	d, ok := c.destByID[id]
	if !ok {
		return weather.Destination{}, ErrDestinationNotFound
	}
	return d, nil
}

// DestinationByName looks a destination up by case-insensitive name.
func (c *Catalog) DestinationByName(name string) (weather.Destination, error) {
	name = strings.TrimSpace(name)
	for _, d := range c.destinations {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return weather.Destination{}, ErrDestinationNotFound
}

// Activities returns the activities offered at the named destination, in catalog order.
func (c *Catalog) Activities(destination string) []Activity {
	var out []Activity
	for _, a := range c.activities {
		if strings.EqualFold(a.Destination, destination) {
			out = append(out, a)
		}
	}
	return out
}

// Activity looks an activity up by id.
func (c *Catalog) Activity(id string) (Activity, error) {
	a, ok := c.actByID[id]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	return a, nil
}
