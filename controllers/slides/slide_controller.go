package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/AreveiHQ/jenii-Admin/catalog"
	"github.com/AreveiHQ/jenii-Admin/responses"
	"github.com/gofiber/fiber/v2"
)

type SlideController struct {
	catalog *catalog.Service
}

func NewSlideController(service *catalog.Service) *SlideController {
	return &SlideController{catalog: service}
}

// CreateSlide handles the multipart slide form: links, section, one
// desktop banner and one mobile banner.
func (ct *SlideController) CreateSlide(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Expected a multipart form",
			Result:  nil,
		})
	}

	links := c.FormValue("links")
	section := c.FormValue("section")
	desktopHeaders := form.File["desktopbanner"]
	mobileHeaders := form.File["mobilebanner"]
	if links == "" || section == "" || len(desktopHeaders) == 0 || len(mobileHeaders) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "All fields are required",
			Result:  nil,
		})
	}

	desktop, err := catalog.FileFromHeader(desktopHeaders[0])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error reading desktop banner",
			Result:  nil,
		})
	}
	mobile, err := catalog.FileFromHeader(mobileHeaders[0])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error reading mobile banner",
			Result:  nil,
		})
	}

	slide, err := ct.catalog.CreateSlide(ctx, links, section, desktop, mobile)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrMissingField):
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "All fields are required",
			Result:  nil,
		})
	case errors.Is(err, catalog.ErrInvalidSection):
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Result:  nil,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Slide not added",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(responses.AdminResponse{
		Status:  fiber.StatusCreated,
		Message: "Slide added successfully",
		Result: &fiber.Map{
			"slide": slide,
		},
	})
}

func (ct *SlideController) GetSlides(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	slides, err := ct.catalog.ListSlides(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching slides",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched slides",
		Result: &fiber.Map{
			"slides": slides,
		},
	})
}
