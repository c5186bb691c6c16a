package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/service"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/entity"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/httputil"
)

type DashboardResponse struct {
	Trips []*entity.Trip `json:"trips"`
}

type TripResponse struct {
	Trip *entity.Trip `json:"trip"`
}

// caller returns authenticated user id or writes 401.
func caller(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "Authorization required", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

// dayParam parses {dayNumber} or writes 400.
func dayParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (int, bool) {
	n, err := service.ParseDayNumber(pathParam(r, "dayNumber"))
	if err != nil {
		writeServiceError(w, logger, op, err)
		return 0, false
	}
	return n, true
}

func decodeOrReject(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, dst any) bool {
	if err := decodeBody(r, dst); err != nil {
		logger.Error(op+" error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "dashboard")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	trips, err := s.tripsService.ListTrips(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DashboardResponse{Trips: trips})
	logger.Info("trips provided", slog.Int("count", len(trips)))
}

func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "create trip")
	if !ok {
		return
	}
	var req service.CreateTripRequest
	if !decodeOrReject(w, r, logger, "create trip", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	trip, err := s.tripsService.CreateTrip(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "create trip", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, TripResponse{Trip: trip})
	logger.Info("trip created", slog.String("trip_id", trip.ID))
}

func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "get trip")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	trip, err := s.tripsService.GetTrip(ctx, uid, pathParam(r, "tripId"))
	if err != nil {
		writeServiceError(w, logger, "get trip", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TripResponse{Trip: trip})
	logger.Info("trip provided", slog.String("trip_id", trip.ID))
}

func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "update trip")
	if !ok {
		return
	}
	tripID := pathParam(r, "tripId")
	var req service.UpdateTripRequest
	if !decodeOrReject(w, r, logger, "update trip", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.tripsService.UpdateTrip(ctx, uid, tripID, &req); err != nil {
		writeServiceError(w, logger, "update trip", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Trip updated successfully")
	logger.Info("trip updated", slog.String("trip_id", tripID))
}

func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "delete trip")
	if !ok {
		return
	}
	tripID := pathParam(r, "tripId")
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.tripsService.DeleteTrip(ctx, uid, tripID); err != nil {
		writeServiceError(w, logger, "delete trip", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Trip deleted")
	logger.Info("trip deleted", slog.String("trip_id", tripID))
}

func (s *Server) AddDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "add day")
	if !ok {
		return
	}
	tripID := pathParam(r, "tripId")
	var req service.AddDayRequest
	if !decodeOrReject(w, r, logger, "add day", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.tripsService.AddDay(ctx, uid, tripID, &req); err != nil {
		writeServiceError(w, logger, "add day", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Day added")
	logger.Info("day added", slog.String("trip_id", tripID), slog.Int("day", req.DayNumber))
}

func (s *Server) UpdateDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "update day")
	if !ok {
		return
	}
	tripID := pathParam(r, "tripId")
	day, ok := dayParam(w, r, logger, "update day")
	if !ok {
		return
	}
	var req service.UpdateDayRequest
	if !decodeOrReject(w, r, logger, "update day", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.tripsService.UpdateDay(ctx, uid, tripID, day, &req); err != nil {
		writeServiceError(w, logger, "update day", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Day updated successfully")
	logger.Info("day updated", slog.String("trip_id", tripID), slog.Int("day", day))
}

func (s *Server) DeleteDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "delete day")
	if !ok {
		return
	}
	tripID := pathParam(r, "tripId")
	day, ok := dayParam(w, r, logger, "delete day")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.tripsService.DeleteDay(ctx, uid, tripID, day); err != nil {
		writeServiceError(w, logger, "delete day", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Day deleted")
	logger.Info("day deleted", slog.String("trip_id", tripID), slog.Int("day", day))
}

func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "add activity")
	if !ok {
		return
	}
	tripID := pathParam(r, "tripId")
	day, ok := dayParam(w, r, logger, "add activity")
	if !ok {
		return
	}
	var req service.ActivityRequest
	if !decodeOrReject(w, r, logger, "add activity", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.tripsService.AddActivity(ctx, uid, tripID, day, &req); err != nil {
		writeServiceError(w, logger, "add activity", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Activity added successfully")
	logger.Info("activity added", slog.String("trip_id", tripID), slog.Int("day", day))
}

func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "update activity")
	if !ok {
		return
	}
	tripID := pathParam(r, "tripId")
	day, ok := dayParam(w, r, logger, "update activity")
	if !ok {
		return
	}
	name := pathParam(r, "activityName")
	var req service.UpdateActivityRequest
	if !decodeOrReject(w, r, logger, "update activity", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.tripsService.UpdateActivity(ctx, uid, tripID, day, name, &req); err != nil {
		writeServiceError(w, logger, "update activity", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Activity updated successfully")
	logger.Info("activity updated", slog.String("trip_id", tripID), slog.Int("day", day))
}

func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "delete activity")
	if !ok {
		return
	}
	tripID := pathParam(r, "tripId")
	day, ok := dayParam(w, r, logger, "delete activity")
	if !ok {
		return
	}
	name := pathParam(r, "activityName")
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.tripsService.DeleteActivity(ctx, uid, tripID, day, name); err != nil {
		writeServiceError(w, logger, "delete activity", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Activity removed")
	logger.Info("activity removed", slog.String("trip_id", tripID), slog.Int("day", day))
}

func (s *Server) ReorderActivities(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := caller(w, r, logger, "reorder activities")
	if !ok {
		return
	}
	tripID := pathParam(r, "tripId")
	day, ok := dayParam(w, r, logger, "reorder activities")
	if !ok {
		return
	}
	var req service.ReorderRequest
	if !decodeOrReject(w, r, logger, "reorder activities", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.tripsService.ReorderActivities(ctx, uid, tripID, day, &req); err != nil {
		writeServiceError(w, logger, "reorder activities", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Activities reordered successfully")
	logger.Info("activities reordered", slog.String("trip_id", tripID), slog.Int("day", day))
}
