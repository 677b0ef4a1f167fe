package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/AreveiHQ/jenii-Admin/catalog"
	"github.com/AreveiHQ/jenii-Admin/responses"
	"github.com/gofiber/fiber/v2"
)

type CategoryController struct {
	catalog *catalog.Service
}

func NewCategoryController(service *catalog.Service) *CategoryController {
	return &CategoryController{catalog: service}
}

// CreateCategory handles the multipart category form: name,
// parentCategory, one cover image and any number of banner images.
func (ct *CategoryController) CreateCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	name := c.FormValue("name")
	parentCategory := c.FormValue("parentCategory")

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Expected a multipart form",
			Result:  nil,
		})
	}

	imageHeaders := form.File["image"]
	if name == "" || parentCategory == "" || len(imageHeaders) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please fill required fields",
			Result:  nil,
		})
	}

	image, err := catalog.FileFromHeader(imageHeaders[0])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error reading image file",
			Result:  nil,
		})
	}

	var banners []catalog.FileUpload
	for _, fh := range form.File["bannerImages"] {
		banner, err := catalog.FileFromHeader(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Error reading banner file",
				Result:  nil,
			})
		}
		banners = append(banners, banner)
	}

	category, err := ct.catalog.CreateCategory(ctx, name, parentCategory, image, banners)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrMissingField), errors.Is(err, catalog.ErrNameTooLong):
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Result:  nil,
		})
	case errors.Is(err, catalog.ErrDuplicateCategory):
		return c.Status(fiber.StatusForbidden).JSON(responses.AdminResponse{
			Status:  fiber.StatusForbidden,
			Message: "Category Already Exists",
			Result:  nil,
		})
	case errors.Is(err, catalog.ErrInvalidParent):
		return c.Status(fiber.StatusForbidden).JSON(responses.AdminResponse{
			Status:  fiber.StatusForbidden,
			Message: err.Error(),
			Result:  nil,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error adding category",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(responses.AdminResponse{
		Status:  fiber.StatusCreated,
		Message: "Category Added Successfully",
		Result: &fiber.Map{
			"category": category,
		},
	})
}

func (ct *CategoryController) GetCategories(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	categories, err := ct.catalog.ListCategories(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching categories",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched categories",
		Result: &fiber.Map{
			"categories": categories,
		},
	})
}
