package httpapi

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-flight/internal/catalog"
	"github.com/i474232898/weather-flight/internal/common"
	"github.com/i474232898/weather-flight/internal/suggest"
	"github.com/i474232898/weather-flight/internal/trip"
	"github.com/i474232898/weather-flight/internal/weather"
)

var validate = validator.New()

// Locator builds a destination from a device coordinate.
type Locator interface {
	Locate(ctx context.Context, coord weather.Coordinate) (weather.Destination, error)
}

// Services bundles what the handlers need.
type Services struct {
	Catalog  *catalog.Catalog
	Resolver *weather.Resolver
	Trips    *trip.Manager
	Locator  Locator
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svc Services) {
	v1 := app.Group("/api/v1")

	v1.Get("/destinations", func(c *fiber.Ctx) error {
		return c.JSON(svc.Catalog.Destinations())
	})

	v1.Get("/destinations/:id", func(c *fiber.Ctx) error {
		dest, err := svc.Catalog.Destination(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return c.JSON(dest)
	})

	v1.Post("/destinations/locate", func(c *fiber.Ctx) error {
		var req locateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if svc.Locator == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "location lookup is not available")
		}

		dest, err := svc.Locator.Locate(c.UserContext(), weather.Coordinate{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return c.JSON(dest)
	})

	v1.Get("/weather", func(c *fiber.Ctx) error {
		q := weatherQuery{
			DestinationID: c.Query("destination"),
			Date:          c.Query("date"),
		}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		dest, err := svc.Catalog.Destination(q.DestinationID)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		date, err := common.ParseDate(q.Date, svc.Resolver.Now().Location())
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res := <-svc.Resolver.ResolveAsync(c.UserContext(), dest, date)
		est, ok := res.Estimate()
		if !ok {
			return weatherError(c, res.Err())
		}
		return c.JSON(est)
	})

	v1.Get("/destinations/:id/activities", func(c *fiber.Ctx) error {
		dest, err := svc.Catalog.Destination(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		activities := svc.Catalog.Activities(dest.Name)

		dateStr := c.Query("date")
		if dateStr == "" {
			return c.JSON(fiber.Map{
				"destination": dest,
				"activities":  activities,
			})
		}

		date, err := common.ParseDate(dateStr, svc.Resolver.Now().Location())
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		est, err := svc.Resolver.Resolve(c.UserContext(), dest, date)
		if err != nil {
			return weatherError(c, err)
		}

		s := suggest.Suggest(activities, est)
		return c.JSON(fiber.Map{
			"destination": dest,
			"condition":   s.Condition,
			"estimate":    s.Estimate,
			"activities":  s.Activities,
		})
	})

	registerTripRoutes(v1, svc)
}

// weatherQuery holds query parameters for the weather endpoint.
type weatherQuery struct {
	DestinationID string `validate:"required"`
	Date          string `validate:"required,datetime=2006-01-02"`
}

// locateRequest is the body of the locate endpoint.
type locateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// weatherStatus maps the weather error taxonomy to an HTTP status.
func weatherStatus(err error) int {
	switch {
	case errors.Is(err, weather.ErrEstimator):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, weather.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, weather.ErrTransport),
		errors.Is(err, weather.ErrEmptyResponse),
		errors.Is(err, weather.ErrDecode):
		return fiber.StatusBadGateway
	case errors.Is(err, weather.ErrSourceUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func weatherError(c *fiber.Ctx, err error) error {
	return c.Status(weatherStatus(err)).JSON(fiber.Map{
		"error":   true,
		"kind":    weather.Kind(err),
		"message": weather.Message(err),
	})
}
