package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/members/api/http/presenter"
	"github.com/artem13815/members/pkg/logging"
	"github.com/artem13815/members/pkg/user"
	"github.com/artem13815/members/pkg/validation"
)

const dateLayout = "2006-01-02"

// StructValidator validates request bodies.
type StructValidator interface {
	Struct(ctx context.Context, s any) error
}

type UserHandler struct {
	users     user.UseCase
	validator StructValidator
}

func NewUserHandler(users user.UseCase, v StructValidator) *UserHandler {
	return &UserHandler{users: users, validator: v}
}

type registerRequest struct {
	FirstName   string    `json:"first_name" validate:"required,max=255"`
	LastName    string    `json:"last_name" validate:"required,max=255"`
	Email       string    `json:"email" validate:"required,email,max=255"`
	Password    string    `json:"password" validate:"required,min=8,bcrypt_len"`
	DateOfBirth *string   `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string   `json:"gender,omitempty" validate:"omitempty,oneof=Masculino Femenino Otro"`
	Address     *string   `json:"address,omitempty" validate:"omitempty,max=500"`
	PhoneNumber *string   `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Insurance   *looseInt `json:"insurance,omitempty" validate:"omitempty,integer" swaggertype:"integer"`
	DNI         *string   `json:"dni,omitempty" validate:"omitempty,max=20"`
	Product     *looseInt `json:"product,omitempty" validate:"omitempty,integer" swaggertype:"integer"`
	Membership  *string   `json:"membership,omitempty" validate:"omitempty,max=50"`
}

// looseInt accepts 5 as well as "5". Anything else is kept as text so the
// integer rule reports it against the field.
type looseInt string

func (n *looseInt) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = looseInt(strings.TrimSpace(s))
		return nil
	}
	*n = looseInt(bytes.TrimSpace(b))
	return nil
}

func (n *looseInt) value() (*int64, error) {
	if n == nil {
		return nil, nil
	}
	v, err := strconv.ParseInt(string(*n), 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func invalidField(field, msg string) *validation.Error {
	return &validation.Error{Fields: map[string]string{field: msg}}
}

func (r registerRequest) payload() (user.Payload, error) {
	p := user.Payload{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		Gender:      r.Gender,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		DNI:         r.DNI,
		Membership:  r.Membership,
	}
	if r.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *r.DateOfBirth)
		if err != nil {
			return user.Payload{}, invalidField("date_of_birth", "The date_of_birth is not a valid date.")
		}
		p.DateOfBirth = &dob
	}
	var err error
	if p.Insurance, err = r.Insurance.value(); err != nil {
		return user.Payload{}, invalidField("insurance", "The insurance must be an integer.")
	}
	if p.Product, err = r.Product.value(); err != nil {
		return user.Payload{}, invalidField("product", "The product must be an integer.")
	}
	return p, nil
}

// Store handles member registration.
// @Summary Register user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   version path string true "API version" Enums(v1, v2)
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} presenter.SuccessResponse{data=user.User}
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /{version}/users [post]
func (h *UserHandler) Store(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	ctx := c.UserContext()

	if err := h.validator.Struct(ctx, req); err != nil {
		return h.rejected(c, err)
	}
	if err := validation.UniqueEmail(ctx, "email", req.Email, h.users.EmailTaken); err != nil {
		return h.rejected(c, err)
	}
	payload, err := req.payload()
	if err != nil {
		return h.rejected(c, err)
	}

	created, err := h.users.Create(ctx, payload)
	if err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, user.ErrEmailTaken) {
			return presenter.Invalid(c, map[string]string{"email": "The email has already been taken."})
		}
		return presenter.Failure(c, http.StatusInternalServerError, "Failed to create user", err)
	}
	return presenter.Success(c, http.StatusCreated, "User created successfully", created)
}

func (h *UserHandler) rejected(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return presenter.Invalid(c, verr.Fields)
	}
	logging.FromContext(c.UserContext()).Error("request validation failed", "error", err)
	return presenter.Failure(c, http.StatusInternalServerError, "Failed to create user", err)
}
