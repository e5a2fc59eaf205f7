package api

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dreamcraft-eng/dreamcraft-backend/auth"
	"github.com/dreamcraft-eng/dreamcraft-backend/database"
	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
	"github.com/dreamcraft-eng/dreamcraft-backend/models"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	roleRepo  *database.RoleRepo
	issuer    auth.TokenIssuer
}

func newAuthHandler(userRepo *database.UserRepo, roleRepo *database.RoleRepo, issuer auth.TokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		issuer:    issuer,
	}
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	RoleID      int    `json:"role_id"`
}

// TokenResponse is the credential returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// register creates a new user account
// @Summary Register
// @Description Creates a new user account with a hashed password
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body registerRequest true "Account data"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid account data"
// @Router /auth/register [post]
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("email", "malformed email address"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}
		if req.RoleID <= 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("role_id"))
			return
		}

		role, err := h.roleRepo.FindByID(req.RoleID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find role", "role", err))
			return
		}
		if role == nil {
			h.responder.WriteError(w, errs.NewValidationError("role_id", "role does not exist"))
			return
		}

		existing, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewValidationError("email", "email already registered"))
			return
		}

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user := models.User{
			Name:           req.Name,
			Email:          req.Email,
			PhoneNumber:    req.PhoneNumber,
			HashedPassword: hashed,
			IsActive:       true,
			RoleID:         req.RoleID,
		}
		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create user", "user", err))
			return
		}

		created, err := h.userRepo.FindByID(user.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created user", "user", err))
			return
		}

		h.responder.WriteCreated(w, created)
	}
}

// login exchanges email and password for a bearer token
// @Summary Login
// @Description Verifies credentials and returns an access token. A wrong
// email and a wrong password are indistinguishable to the caller.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse "Bearer credential"
// @Failure 401 {object} ErrorResponse "Unauthorized - Incorrect email or password"
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var email, password string

		// Accept the OAuth2-style password form as well as a JSON body.
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				h.responder.WriteError(w, errs.Malformed("login form"))
				return
			}
			email = r.PostFormValue("username")
			password = r.PostFormValue("password")
		} else {
			var req loginRequest
			if err := decodeJSON(r, &req); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			email = req.Email
			password = req.Password
		}

		if email == "" || password == "" {
			h.responder.WriteError(w, errs.NewCredentialError())
			return
		}

		user, err := h.userRepo.FindByEmail(email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil || !auth.VerifyPassword(password, user.HashedPassword) {
			h.responder.WriteError(w, errs.NewCredentialError())
			return
		}
		if !user.IsActive {
			h.responder.WriteError(w, errs.NewCredentialError())
			return
		}

		token, err := h.issuer.Issue(user.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// me returns the authenticated caller's own record
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Router /auth/me [get]
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, ctxGetUser(r.Context()))
	}
}

// deleteOwnAccount removes the caller's own account. Always permitted for an
// authenticated actor; this is the self-service path, distinct from the
// admin-only deletion of other accounts.
// @Summary Delete own account
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string "Success message"
// @Router /auth/me [delete]
func (h authHandler) deleteOwnAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())

		if err := h.userRepo.Delete(user.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete user", "user", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "account deleted",
		})
	}
}
