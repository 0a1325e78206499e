package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Talts01/SocialPizza/internal/auth"
	"github.com/Talts01/SocialPizza/internal/domain"
	"github.com/Talts01/SocialPizza/internal/handler/dto"
	"github.com/Talts01/SocialPizza/internal/metrics"
	"github.com/Talts01/SocialPizza/internal/middleware"
	"github.com/Talts01/SocialPizza/internal/repository/memory"
	"github.com/Talts01/SocialPizza/internal/router"
	"github.com/Talts01/SocialPizza/internal/service"
)

// The handler tests run against the full HTTP surface wired to the in-memory
// backend, so routing, auth middleware and the service layer are covered
// together.
type testEnv struct {
	t      *testing.T
	router http.Handler
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	store := memory.NewStore()
	eventRepo := store.Events()
	participationRepo := store.Participations()
	userRepo := store.Users()
	venueRepo := store.Venues()
	categoryRepo := store.Categories()

	eventService := service.NewEventService(eventRepo, participationRepo, venueRepo, categoryRepo, userRepo, log)
	enrollmentService := service.NewEnrollmentService(participationRepo, eventRepo, userRepo, log)
	userService := service.NewUserService(userRepo, log)
	venueService := service.NewVenueService(venueRepo, categoryRepo, userRepo)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	m := metrics.NewWith(prometheus.NewRegistry())

	h := NewHandler(eventService, enrollmentService, userService, venueService, tokens, m)
	r := router.InitRouter("test", h, middleware.Auth(tokens))

	return &testEnv{t: t, router: r}
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// register creates an account through the API and returns its token and id.
func (e *testEnv) register(name, email, role string) (token, id string) {
	e.t.Helper()

	w := e.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
		Role:     role,
	})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode[dto.TokenResponse](e.t, w)
	return resp.Token, resp.User.ID
}

// seedVenue registers an admin-created venue for the given owner.
func (e *testEnv) seedVenue(adminToken, ownerID string, capacity int) string {
	e.t.Helper()

	w := e.do(http.MethodPost, "/api/admin/venues", adminToken, dto.CreateVenueRequest{
		Name:     "Da Mario",
		Address:  "Via Roma 1",
		City:     "Bologna",
		Capacity: capacity,
		OwnerID:  ownerID,
	})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())

	return decode[dto.VenueResponse](e.t, w).ID
}

func (e *testEnv) seedCategory(adminToken string) string {
	e.t.Helper()

	w := e.do(http.MethodPost, "/api/admin/categories", adminToken, dto.CreateCategoryRequest{
		Name: "pizza night",
	})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())

	return decode[dto.CategoryResponse](e.t, w).ID
}

func (e *testEnv) propose(token, venueID, categoryID string, capacity int) dto.EventResponse {
	e.t.Helper()

	w := e.do(http.MethodPost, "/api/events", token, dto.ProposeEventRequest{
		Title:      "Margherita marathon",
		EventDate:  time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		Capacity:   capacity,
		VenueID:    venueID,
		CategoryID: categoryID,
	})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())

	return decode[dto.EventResponse](e.t, w)
}

func TestAuthFlow(t *testing.T) {
	env := setupEnv(t)

	token, id := env.register("Alice", "alice@example.com", "")

	w := env.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[dto.UserResponse](t, w)
	assert.Equal(t, id, me.ID)
	assert.Equal(t, string(domain.RoleMember), me.Role)

	w = env.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "ALICE@example.com",
		Password: "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Duplicate registration
	w = env.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name:     "Alice again",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthRequired(t *testing.T) {
	env := setupEnv(t)

	w := env.do(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodGet, "/api/auth/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Public reads stay open.
	w = env.do(http.MethodGet, "/api/events", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGate(t *testing.T) {
	env := setupEnv(t)

	memberToken, _ := env.register("Mallory", "mallory@example.com", "")

	w := env.do(http.MethodGet, "/api/admin/users", memberToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, _ := env.register("Root", "root@example.com", "ADMIN")
	w = env.do(http.MethodGet, "/api/admin/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEventLifecycle(t *testing.T) {
	env := setupEnv(t)

	adminToken, _ := env.register("Root", "root@example.com", "ADMIN")
	ownerToken, ownerID := env.register("Oscar", "oscar@example.com", "VENUE_OWNER")
	memberToken, memberID := env.register("Alice", "alice@example.com", "")
	otherToken, _ := env.register("Bob", "bob@example.com", "")

	venueID := env.seedVenue(adminToken, ownerID, 100)
	categoryID := env.seedCategory(adminToken)

	// A member proposing at a foreign venue lands in PENDING.
	event := env.propose(memberToken, venueID, categoryID, 2)
	assert.Equal(t, string(domain.StatusPending), event.Status)
	assert.Equal(t, memberID, event.OrganizerID)

	// Nobody can join before approval.
	w := env.do(http.MethodPost, "/api/events/"+event.ID+"/join", otherToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The owner sees it in the moderation queue.
	w = env.do(http.MethodGet, "/api/my/moderation/pending", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	pending := decode[[]dto.EventResponse](t, w)
	require.Len(t, pending, 1)
	assert.Equal(t, event.ID, pending[0].ID)

	// Only the venue owner may decide.
	w = env.do(http.MethodPatch, "/api/events/"+event.ID+"/decision", otherToken, dto.DecisionRequest{
		Decision: "APPROVED",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Rejection without a reason is refused.
	w = env.do(http.MethodPatch, "/api/events/"+event.ID+"/decision", ownerToken, dto.DecisionRequest{
		Decision: "REJECTED",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Approval stores the comment and seats the organizer.
	w = env.do(http.MethodPatch, "/api/events/"+event.ID+"/decision", ownerToken, dto.DecisionRequest{
		Decision: "APPROVED",
		Comment:  "benvenuti",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	approved := decode[dto.EventResponse](t, w)
	assert.Equal(t, string(domain.StatusApproved), approved.Status)
	assert.Equal(t, "benvenuti", approved.ModeratorComment)
	assert.NotEmpty(t, approved.DecisionDate)

	w = env.do(http.MethodGet, "/api/events/"+event.ID+"/participating", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")

	// A second decision is a conflict.
	w = env.do(http.MethodPatch, "/api/events/"+event.ID+"/decision", ownerToken, dto.DecisionRequest{
		Decision: "REJECTED",
		Comment:  "changed my mind",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Capacity 2: organizer holds one seat, Bob takes the last one.
	w = env.do(http.MethodPost, "/api/events/"+event.ID+"/join", otherToken, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(http.MethodPost, "/api/events/"+event.ID+"/join", otherToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code) // duplicate

	lateToken, _ := env.register("Carol", "carol@example.com", "")
	w = env.do(http.MethodPost, "/api/events/"+event.ID+"/join", lateToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code) // full

	w = env.do(http.MethodGet, "/api/events/"+event.ID+"/participants", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	participants := decode[[]dto.ParticipationResponse](t, w)
	assert.Len(t, participants, 2)

	// Leaving frees the seat for Carol.
	w = env.do(http.MethodDelete, "/api/events/"+event.ID+"/leave", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(http.MethodPost, "/api/events/"+event.ID+"/join", lateToken, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	// An approved event cannot be withdrawn, only cancelled by the owner.
	w = env.do(http.MethodDelete, "/api/events/"+event.ID+"/withdraw", memberToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(http.MethodDelete, "/api/events/"+event.ID, memberToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodDelete, "/api/events/"+event.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/events/"+event.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOwnerProposalIsAutoApproved(t *testing.T) {
	env := setupEnv(t)

	adminToken, _ := env.register("Root", "root@example.com", "ADMIN")
	ownerToken, ownerID := env.register("Oscar", "oscar@example.com", "VENUE_OWNER")

	venueID := env.seedVenue(adminToken, ownerID, 50)
	categoryID := env.seedCategory(adminToken)

	event := env.propose(ownerToken, venueID, categoryID, 10)
	assert.Equal(t, string(domain.StatusApproved), event.Status)

	// The organizer already holds the first seat.
	w := env.do(http.MethodGet, "/api/events/"+event.ID+"/participating", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")
}

func TestWithdrawProposal(t *testing.T) {
	env := setupEnv(t)

	adminToken, _ := env.register("Root", "root@example.com", "ADMIN")
	_, ownerID := env.register("Oscar", "oscar@example.com", "VENUE_OWNER")
	memberToken, _ := env.register("Alice", "alice@example.com", "")
	otherToken, _ := env.register("Bob", "bob@example.com", "")

	venueID := env.seedVenue(adminToken, ownerID, 50)
	categoryID := env.seedCategory(adminToken)

	event := env.propose(memberToken, venueID, categoryID, 10)

	w := env.do(http.MethodDelete, "/api/events/"+event.ID+"/withdraw", otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodDelete, "/api/events/"+event.ID+"/withdraw", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/events/"+event.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProposalValidation(t *testing.T) {
	env := setupEnv(t)

	adminToken, _ := env.register("Root", "root@example.com", "ADMIN")
	_, ownerID := env.register("Oscar", "oscar@example.com", "VENUE_OWNER")
	memberToken, _ := env.register("Alice", "alice@example.com", "")

	venueID := env.seedVenue(adminToken, ownerID, 5)
	categoryID := env.seedCategory(adminToken)

	// Capacity above the venue ceiling.
	w := env.do(http.MethodPost, "/api/events", memberToken, dto.ProposeEventRequest{
		Title:      "Too big",
		EventDate:  time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		Capacity:   6,
		VenueID:    venueID,
		CategoryID: categoryID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Date in the past.
	w = env.do(http.MethodPost, "/api/events", memberToken, dto.ProposeEventRequest{
		Title:      "Yesterday",
		EventDate:  time.Now().Add(-time.Hour).Format(time.RFC3339),
		Capacity:   3,
		VenueID:    venueID,
		CategoryID: categoryID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed date.
	w = env.do(http.MethodPost, "/api/events", memberToken, map[string]any{
		"title":       "Bad date",
		"event_date":  "soon",
		"capacity":    3,
		"venue_id":    venueID,
		"category_id": categoryID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminBanCascades(t *testing.T) {
	env := setupEnv(t)

	adminToken, _ := env.register("Root", "root@example.com", "ADMIN")
	ownerToken, ownerID := env.register("Oscar", "oscar@example.com", "VENUE_OWNER")
	memberToken, memberID := env.register("Alice", "alice@example.com", "")

	venueID := env.seedVenue(adminToken, ownerID, 50)
	categoryID := env.seedCategory(adminToken)

	event := env.propose(ownerToken, venueID, categoryID, 10)
	w := env.do(http.MethodPost, "/api/events/"+event.ID+"/join", memberToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// A member cannot ban anyone.
	w = env.do(http.MethodDelete, "/api/admin/users/"+ownerID, memberToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodDelete, fmt.Sprintf("/api/admin/users/%s", ownerID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The venue and its event are gone with the owner.
	w = env.do(http.MethodGet, "/api/venues/"+venueID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.do(http.MethodGet, "/api/events/"+event.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Alice is untouched.
	w = env.do(http.MethodGet, "/api/auth/me", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, memberID, decode[dto.UserResponse](t, w).ID)

	w = env.do(http.MethodGet, "/api/my/joined", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.EventResponse](t, w), 0)
}

func TestCallerScopedReads(t *testing.T) {
	env := setupEnv(t)

	adminToken, _ := env.register("Root", "root@example.com", "ADMIN")
	ownerToken, ownerID := env.register("Oscar", "oscar@example.com", "VENUE_OWNER")
	memberToken, _ := env.register("Alice", "alice@example.com", "")

	venueID := env.seedVenue(adminToken, ownerID, 50)
	categoryID := env.seedCategory(adminToken)

	event := env.propose(memberToken, venueID, categoryID, 10)

	w := env.do(http.MethodGet, "/api/my/events", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[[]dto.EventResponse](t, w)
	require.Len(t, created, 1)
	assert.Equal(t, event.ID, created[0].ID)

	w = env.do(http.MethodGet, "/api/my/venues", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	venues := decode[[]dto.VenueResponse](t, w)
	require.Len(t, venues, 1)
	assert.Equal(t, venueID, venues[0].ID)

	// The feed shows pending proposals, the approved list does not.
	w = env.do(http.MethodGet, "/api/feed", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.EventResponse](t, w), 1)

	w = env.do(http.MethodGet, "/api/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.EventResponse](t, w), 0)

	w = env.do(http.MethodGet, "/api/venues/"+venueID+"/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.EventResponse](t, w), 1)
}
