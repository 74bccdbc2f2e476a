package userController

import (
	"context"
	"errors"
	"os"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/benjaminfth/krishinew/models"
	"github.com/benjaminfth/krishinew/responses"
	"github.com/benjaminfth/krishinew/store"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "users").Logger()

var (
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

type Controller struct {
	Users store.Collection
}

func New(users store.Collection) *Controller {
	return &Controller{Users: users}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Pincode  string `json:"pincode"`
	Password string `json:"password"`
	Role     string `json:"role"`
	UniqueId string `json:"uniqueId"`
}

// Register validates the payload field by field and reports every failing
// field at once, the way the frontend renders them.
func (ct *Controller) Register(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody registerRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	fieldErrors := map[string]string{}
	if reqBody.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if reqBody.Email == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailRegex.MatchString(reqBody.Email) {
		fieldErrors["email"] = "Please enter a valid email"
	}
	if reqBody.Phone != "" && !phoneRegex.MatchString(reqBody.Phone) {
		fieldErrors["phone"] = "Please enter a valid 10-digit phone number"
	}
	if reqBody.Password == "" {
		fieldErrors["password"] = "Password is required"
	} else if utf8.RuneCountInString(reqBody.Password) < 8 {
		fieldErrors["password"] = "Password must be at least 8 characters"
	}
	if reqBody.Role == "" {
		fieldErrors["role"] = "Role is required"
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status: fiber.StatusBadRequest,
			Errors: fieldErrors,
		})
	}

	// Emails are unique; report a duplicate as a field error too.
	var existing models.User
	err := ct.Users.FindOne(ctx, bson.M{"email": reqBody.Email}, &existing)
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status: fiber.StatusBadRequest,
			Errors: map[string]string{"email": "Email is already registered"},
		})
	} else if !errors.Is(err, store.ErrNoDocuments) {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error checking user existence",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error hashing password",
		})
	}

	newUser := models.User{
		Name:     reqBody.Name,
		Email:    reqBody.Email,
		Phone:    reqBody.Phone,
		Address:  reqBody.Address,
		Pincode:  reqBody.Pincode,
		Password: string(hashedPassword),
		Role:     reqBody.Role,
		UniqueId: reqBody.UniqueId,
	}

	id, err := ct.Users.InsertOne(ctx, newUser)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in saving user, please try again later",
		})
	}

	logger.Info().Str("email", reqBody.Email).Str("role", reqBody.Role).Msg("user registered")

	return c.Status(fiber.StatusCreated).JSON(responses.APIResponse{
		Status:  fiber.StatusCreated,
		Message: "User registered successfully",
		Result:  &fiber.Map{"id": id.Hex()},
	})
}

func (ct *Controller) Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if reqBody.Email == "" || reqBody.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email and password are required",
		})
	}

	var user models.User
	err := ct.Users.FindOne(ctx, bson.M{"email": reqBody.Email}, &user)
	if errors.Is(err, store.ErrNoDocuments) {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching from database",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqBody.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	logger.Info().Str("email", user.Email).Msg("user logged in")

	// models.User never serializes the password hash.
	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "User signed in successfully",
		Result:  &fiber.Map{"user": user},
	})
}

// profilePatch distinguishes absent fields (nil) from present ones. An
// explicit empty string is treated as "no change" as well: the profile
// form submits only fields the user actually edited.
type profilePatch struct {
	UserId  string  `json:"userId"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Pincode *string `json:"pincode"`
}

func (ct *Controller) UpdateProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var patch profilePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if patch.UserId == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "userId is required",
		})
	}

	userObjectID, err := primitive.ObjectIDFromHex(patch.UserId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	set := bson.M{}
	if patch.Name != nil && *patch.Name != "" {
		set["name"] = *patch.Name
	}
	if patch.Email != nil && *patch.Email != "" {
		if !emailRegex.MatchString(*patch.Email) {
			return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Please enter a valid email",
			})
		}
		set["email"] = *patch.Email
	}
	if patch.Phone != nil && *patch.Phone != "" {
		if !phoneRegex.MatchString(*patch.Phone) {
			return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Please enter a valid 10-digit phone number",
			})
		}
		set["phone"] = *patch.Phone
	}
	if patch.Address != nil && *patch.Address != "" {
		set["address"] = *patch.Address
	}
	if patch.Pincode != nil && *patch.Pincode != "" {
		set["pincode"] = *patch.Pincode
	}

	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "No changes to apply",
		})
	}

	matched, err := ct.Users.UpdateOne(ctx, bson.M{"_id": userObjectID}, set)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating user profile",
		})
	}
	if matched == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	var updated models.User
	if err := ct.Users.FindOne(ctx, bson.M{"_id": userObjectID}, &updated); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user data",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Profile updated successfully",
		Result:  &fiber.Map{"user": updated},
	})
}
