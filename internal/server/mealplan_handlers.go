package server

import (
	"errors"
	"net/http"

	"NutriViet_V1.0/internal/mealplan"
	"NutriViet_V1.0/internal/models"
	"NutriViet_V1.0/internal/utility"
	"github.com/labstack/echo/v4"
)

// planRequest is the JSON body shared by all generation endpoints.
type planRequest struct {
	Target      *models.Macros      `json:"target"`
	Preferences []string            `json:"preferences"`
	Allergies   []string            `json:"allergies"`
	DietPrefs   []string            `json:"diet_prefs"`
	Cuisine     string              `json:"cuisine"`
	UseAI       bool                `json:"use_ai"`
	Profile     *models.UserProfile `json:"profile"`
}

type replaceDayRequest struct {
	planRequest
	DayLabel string `json:"day_label"`
}

type replaceMealRequest struct {
	planRequest
	DayLabel string `json:"day_label"`
	MealSlot string `json:"meal_slot"`
}

// DayReadyEvent is pushed to the user's websocket after each generated day.
type DayReadyEvent struct {
	Type     string         `json:"type"`
	Index    int            `json:"index"`
	DayLabel string         `json:"day_label"`
	Day      models.DayPlan `json:"day"`
}

func (r planRequest) toRequest(userID string) mealplan.Request {
	req := mealplan.Request{
		UserID:      userID,
		Preferences: r.Preferences,
		Allergies:   r.Allergies,
		DietPrefs:   r.DietPrefs,
		Cuisine:     r.Cuisine,
		UseAI:       r.UseAI,
		Profile:     r.Profile,
	}
	if r.Target != nil {
		req.Target = *r.Target
	}
	return req
}

/* =================================================================================
								HANDLERS
=================================================================================*/

// generateWeekHandler builds and stores a fresh week for the caller.
func (s *Server) generateWeekHandler(c echo.Context) error {
	logger := utility.GetLogger(c)
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var body planRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	logger.Debug().Str("user_id", userID).Bool("progress_socket", s.hub.Connected(userID)).Msg("Generating week")
	req := body.toRequest(userID)
	req.OnDay = func(i int, day models.DayPlan) {
		s.hub.Notify(userID, DayReadyEvent{Type: "day_ready", Index: i, DayLabel: day.DayLabel, Day: day})
	}

	plan, err := s.planner.GenerateWeek(c.Request().Context(), req)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Week generation failed")
		return writeError(c, err)
	}
	s.hub.Notify(userID, map[string]string{"type": "week_ready"})
	return c.JSON(http.StatusOK, plan)
}

// latestPlanHandler returns the caller's most recent stored plan.
func (s *Server) latestPlanHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	plan, err := s.planner.LatestPlan(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

func (s *Server) replaceDayHandler(c echo.Context) error {
	logger := utility.GetLogger(c)
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var body replaceDayRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if body.DayLabel == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "day_label is required"})
	}

	ctx := c.Request().Context()
	plan, err := s.planner.LatestPlan(ctx, userID)
	if err != nil {
		return writeError(c, err)
	}
	day, err := s.planner.ReplaceDay(ctx, plan, body.DayLabel, body.toRequest(userID))
	if err != nil {
		logger.Error().Err(err).Str("day", body.DayLabel).Msg("Day replacement failed")
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, day)
}

func (s *Server) replaceMealHandler(c echo.Context) error {
	logger := utility.GetLogger(c)
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var body replaceMealRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if body.DayLabel == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "day_label is required"})
	}
	slot, err := models.ParseMealSlot(body.MealSlot)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	plan, err := s.planner.LatestPlan(ctx, userID)
	if err != nil {
		return writeError(c, err)
	}
	day, err := s.planner.ReplaceMeal(ctx, plan, body.DayLabel, slot, body.toRequest(userID))
	if err != nil {
		logger.Error().Err(err).Str("day", body.DayLabel).Str("slot", string(slot)).Msg("Meal replacement failed")
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, day)
}

// progressSocketHandler keeps a websocket open for day_ready events.
func (s *Server) progressSocketHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ws, err := utility.Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	s.hub.RegisterClient(userID, ws)
	defer s.hub.UnregisterClient(userID, ws)

	// Clients don't send anything; reading detects the disconnect.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
	return nil
}

// writeError maps planner errors to HTTP statuses.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	msg := "Internal server error"
	switch {
	case errors.Is(err, mealplan.ErrInvalidRequest):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, mealplan.ErrPlanMissing), errors.Is(err, mealplan.ErrDayNotInPlan):
		status, msg = http.StatusNotFound, err.Error()
	}
	return c.JSON(status, map[string]string{"error": msg})
}
