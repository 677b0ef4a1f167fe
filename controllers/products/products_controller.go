package controllers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/AreveiHQ/jenii-Admin/catalog"
	"github.com/AreveiHQ/jenii-Admin/responses"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductController struct {
	catalog *catalog.Service
}

func NewProductController(service *catalog.Service) *ProductController {
	return &ProductController{catalog: service}
}

// AddProduct handles the multipart product form. Required: images[],
// name, price, category, subCategory; the rest are optional.
func (ct *ProductController) AddProduct(c *fiber.Ctx) error {
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

	imageHeaders := form.File["images"]
	name := c.FormValue("name")
	priceStr := c.FormValue("price")
	category := c.FormValue("category")
	subCategory := c.FormValue("subCategory")
	if len(imageHeaders) == 0 || name == "" || priceStr == "" || category == "" || subCategory == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please fill required fields",
			Result:  nil,
		})
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Price must be a number",
			Result:  nil,
		})
	}
	discountPrice := 0.0
	if v := c.FormValue("discountPrice"); v != "" {
		discountPrice, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Discount price must be a number",
				Result:  nil,
			})
		}
	}
	stock := 0
	if v := c.FormValue("stock"); v != "" {
		stock, err = strconv.Atoi(v)
		if err != nil || stock < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Stock must be a non-negative integer",
				Result:  nil,
			})
		}
	}

	images := make([]catalog.FileUpload, 0, len(imageHeaders))
	for _, fh := range imageHeaders {
		image, err := catalog.FileFromHeader(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Error reading image file",
				Result:  nil,
			})
		}
		images = append(images, image)
	}

	input := catalog.ProductInput{
		SKU:           c.FormValue("sku"),
		Name:          name,
		Description:   c.FormValue("description"),
		Price:         price,
		DiscountPrice: discountPrice,
		Category:      category,
		SubCategory:   subCategory,
		Collections:   form.Value["collection"],
		Metal:         c.FormValue("metal"),
		Stock:         stock,
		Mode:          c.FormValue("mode"),
	}

	product, err := ct.catalog.CreateProduct(ctx, input, images)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrMissingField):
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please fill required fields",
			Result:  nil,
		})
	case errors.Is(err, catalog.ErrInvalidCategory):
		return c.Status(fiber.StatusForbidden).JSON(responses.AdminResponse{
			Status:  fiber.StatusForbidden,
			Message: "Invalid Category",
			Result:  nil,
		})
	case errors.Is(err, catalog.ErrInvalidPrice):
		return c.Status(fiber.StatusForbidden).JSON(responses.AdminResponse{
			Status:  fiber.StatusForbidden,
			Message: "Invalid price or discounted price values",
			Result:  nil,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error uploading product",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(responses.AdminResponse{
		Status:  fiber.StatusCreated,
		Message: "Product added successfully",
		Result: &fiber.Map{
			"product": product,
		},
	})
}

func (ct *ProductController) GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}

	products, total, err := ct.catalog.ListProducts(ctx, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching products",
			Result:  nil,
		})
	}

	totalPages := (total + limit - 1) / limit
	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched Products",
		Result: &fiber.Map{
			"currentPage":   page,
			"totalPages":    totalPages,
			"totalProducts": total,
			"products":      products,
		},
	})
}

func (ct *ProductController) GetProductById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
			Result:  nil,
		})
	}

	product, err := ct.catalog.GetProduct(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(responses.AdminResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
			Result:  nil,
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Product fetched successfully",
		Result: &fiber.Map{
			"product": product,
		},
	})
}

// UpdateProduct replaces the submitted fields of one product.
func (ct *ProductController) UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
			Result:  nil,
		})
	}

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil || len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Product updates are required",
			Result:  nil,
		})
	}

	product, err := ct.catalog.UpdateProduct(ctx, id, updates)
	if errors.Is(err, catalog.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(responses.AdminResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
			Result:  nil,
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating product",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Product updated successfully",
		Result: &fiber.Map{
			"product": product,
		},
	})
}

func (ct *ProductController) DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
			Result:  nil,
		})
	}

	err = ct.catalog.DeleteProduct(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(responses.AdminResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
			Result:  nil,
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting product",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Product deleted successfully",
		Result:  nil,
	})
}
