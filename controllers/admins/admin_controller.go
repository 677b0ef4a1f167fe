package controllers

import (
	"context"
	"time"

	"github.com/AreveiHQ/jenii-Admin/configs"
	"github.com/AreveiHQ/jenii-Admin/models"
	"github.com/AreveiHQ/jenii-Admin/responses"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type AdminController struct {
	coll *mongo.Collection
}

func NewAdminController(db *mongo.Database) *AdminController {
	return &AdminController{coll: db.Collection("admins")}
}

func (ct *AdminController) AdminSignUp(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}
	if reqBody.Name == "" || reqBody.Email == "" || len(reqBody.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Name, email and a password of at least 8 characters are required",
			Result:  nil,
		})
	}

	var existing models.Admin
	err := ct.coll.FindOne(ctx, bson.M{"email": reqBody.Email}).Decode(&existing)
	if err != nil && err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error checking admin existence",
			Result:  nil,
		})
	} else if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Admin with same email already exists",
			Result:  nil,
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error hashing password",
			Result:  nil,
		})
	}

	newAdmin := models.Admin{
		ID:       primitive.NewObjectID(),
		Name:     reqBody.Name,
		Email:    reqBody.Email,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if _, err := ct.coll.InsertOne(ctx, newAdmin); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in saving admin, please try again later",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(responses.AdminResponse{
		Status:  fiber.StatusCreated,
		Message: "Admin created successfully",
		Result: &fiber.Map{
			"admin": newAdmin,
		},
	})
}

func (ct *AdminController) AdminSignIn(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	var existing models.Admin
	err := ct.coll.FindOne(ctx, bson.M{"email": reqBody.Email}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Admin with this account does not exist",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching from database",
			Result:  nil,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.Password), []byte(reqBody.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Incorrect password",
			Result:  nil,
		})
	}

	token, err := createJwt(existing.ID.Hex())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error while generating jwt token",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Admin signed in successfully",
		Result: &fiber.Map{
			"admin": fiber.Map{
				"id":    existing.ID.Hex(),
				"name":  existing.Name,
				"email": existing.Email,
				"role":  existing.Role,
				"token": token,
			},
		},
	})
}

func createJwt(adminId string) (string, error) {
	claims := jwt.MapClaims{
		"id":   adminId,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 720).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.EnvJWTSecret()))
}
