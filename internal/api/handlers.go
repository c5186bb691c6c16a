package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	errorvalues "github.com/lmk2k5/itinerary-backend-email-services/internal/error_values"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/service"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst)
}

// pathParam returns decoded route parameter. Chi matches on RawPath when it
// is set, leaving parameters escaped.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

// errorStatus maps service errors to status code and client message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidTripID):
		return http.StatusBadRequest, "Invalid trip ID"
	case errors.Is(err, errorvalues.ErrInvalidDayNumber):
		return http.StatusBadRequest, "Invalid day number"
	case errors.Is(err, errorvalues.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errorvalues.ErrTripNotFound):
		return http.StatusNotFound, "Trip not found"
	case errors.Is(err, errorvalues.ErrDayNotFound):
		return http.StatusNotFound, "Day not found"
	case errors.Is(err, errorvalues.ErrTripOrDayNotFound):
		return http.StatusNotFound, "Trip or day not found"
	case errors.Is(err, errorvalues.ErrActivityNotFound):
		return http.StatusNotFound, "Activity not found"
	case errors.Is(err, errorvalues.ErrDayExists):
		return http.StatusConflict, "Day number already exists for this trip"
	case errors.Is(err, errorvalues.ErrRevisionConflict):
		return http.StatusConflict, "Trip was modified concurrently, please retry"
	case errors.Is(err, errorvalues.ErrUserExists):
		return http.StatusConflict, "Username already exists"
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		return http.StatusUnauthorized, "Invalid username or password"
	case errors.Is(err, errorvalues.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid or expired token"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// writeServiceError logs err under op and writes mapped error response.
// Details of internal errors are not sent to the client.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	code, msg := errorStatus(err)
	logger.Error(op+" error", slog.Int("code", code), slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, code, msg, nil)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "UP"})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	err := decodeBody(r, &req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, RegisterResponse{
		Message: "User created successfully",
		UserID:  user.ID.String(),
	})
	logger.Info("successful registration", slog.String("uid", user.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	err := decodeBody(r, &req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Token:    token,
		UserID:   user.ID.String(),
		Username: user.Name,
	})
	logger.Info("successful login", slog.String("uid", user.ID.String()))
}
