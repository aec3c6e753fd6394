package httpapi

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-flight/internal/catalog"
	"github.com/i474232898/weather-flight/internal/store"
	"github.com/i474232898/weather-flight/internal/trip"
	"github.com/i474232898/weather-flight/internal/weather"
)

// createTripRequest names either a catalog destination or a located one.
type createTripRequest struct {
	Name          string               `json:"name" validate:"required,max=120"`
	DestinationID string               `json:"destinationId" validate:"required_without=Destination"`
	Destination   *weather.Destination `json:"destination" validate:"required_without=DestinationID"`
}

type addAgendaItemRequest struct {
	ActivityID string          `json:"activityId" validate:"required"`
	Dates      *trip.DateRange `json:"dates" validate:"required"`
}

func registerTripRoutes(v1 fiber.Router, svc Services) {
	trips := v1.Group("/trips")

	trips.Post("/", func(c *fiber.Ctx) error {
		var req createTripRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		var dest weather.Destination
		if req.DestinationID != "" {
			d, err := svc.Catalog.Destination(req.DestinationID)
			if err != nil {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			dest = d
		} else {
			if err := req.Destination.Coordinate.Validate(); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			dest = *req.Destination
			if dest.ID == "" {
				coord := dest.Coordinate
				dest.ID = catalog.StableID("located", fmt.Sprintf("%.3f,%.3f", coord.Latitude, coord.Longitude))
			}
		}

		t, err := svc.Trips.Create(req.Name, dest)
		if err != nil {
			return fiber.NewError(tripStatus(err), err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	trips.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(svc.Trips.List())
	})

	trips.Get("/:id", func(c *fiber.Ctx) error {
		t, err := svc.Trips.Get(c.Params("id"))
		if err != nil {
			return fiber.NewError(tripStatus(err), err.Error())
		}
		return c.JSON(t)
	})

	trips.Delete("/:id", func(c *fiber.Ctx) error {
		if err := svc.Trips.Delete(c.Params("id")); err != nil {
			return fiber.NewError(tripStatus(err), err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	trips.Post("/:id/agenda", func(c *fiber.Ctx) error {
		var req addAgendaItemRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		item, err := svc.Trips.AddAgendaItem(c.Params("id"), req.ActivityID, *req.Dates)
		if err != nil {
			return fiber.NewError(tripStatus(err), err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	trips.Delete("/:id/agenda/:itemId", func(c *fiber.Ctx) error {
		if err := svc.Trips.RemoveAgendaItem(c.Params("id"), c.Params("itemId")); err != nil {
			return fiber.NewError(tripStatus(err), err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func tripStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, trip.ErrItemNotFound),
		errors.Is(err, catalog.ErrActivityNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, trip.ErrInvalidTrip),
		errors.Is(err, trip.ErrInvalidDateRange):
		return fiber.StatusBadRequest
	case errors.Is(err, trip.ErrActivityMismatch):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, store.ErrFull):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
