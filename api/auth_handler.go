package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/scifanor/scifanor-backend/database"
	"github.com/scifanor/scifanor-backend/errs"
	"github.com/scifanor/scifanor-backend/models"
)

const tokenLifetime = 7 * 24 * time.Hour

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	secret      []byte
}

func newAuthHandler(profileRepo *database.ProfileRepo, jwtSecret string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		secret:      []byte(jwtSecret),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string         `json:"token"`
	Profile models.Profile `json:"profile"`
}

// login verifies an email/password pair and issues a signed token
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		email := strings.TrimSpace(strings.ToLower(req.Email))
		if email == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}

		profile, err := h.profileRepo.FindByEmail(email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}

		// Same response for unknown email and wrong password, so the
		// endpoint does not leak which accounts exist.
		if profile == nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}

		token, err := h.signToken(profile)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign token")
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, loginResponse{Token: token, Profile: *profile})
	}
}

// me returns the profile behind the presented token
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profile, err := h.profileRepo.FindByID(id.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFound("profile"))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

func (h authHandler) signToken(profile *models.Profile) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   profile.ID.String(),
		"email": profile.Email,
		"admin": profile.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}
