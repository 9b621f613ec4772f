package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/amiralz/calendar-backend/internal/models"
	"github.com/amiralz/calendar-backend/internal/store"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gin.Engine, store.EventStore) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	eventStore := store.NewDatabaseStore(db)
	if err := eventStore.EnsureSeeded(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewRouter(eventStore), eventStore
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func TestIndexServesPage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Content-Type = %q, want text/html", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "School Calendar") {
		t.Error("page body missing title")
	}
}

func TestGetYears(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/years", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var years []int
	if err := json.Unmarshal(w.Body.Bytes(), &years); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(years) != 11 || years[0] != 2025 || years[10] != 2035 {
		t.Errorf("years = %v, want 2025..2035", years)
	}
}

func TestGetCalendar(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/calendar/2025/2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["month_name"] != "February" {
		t.Errorf("month_name = %v, want February", body["month_name"])
	}
	if _, ok := body["calendar"].([]any); !ok {
		t.Errorf("calendar missing or wrong type: %v", body["calendar"])
	}
	events, ok := body["events"].(map[string]any)
	if !ok {
		t.Fatalf("events missing: %v", body)
	}
	if _, ok := events["2025-02-22"]; !ok {
		t.Errorf("seeded Founding Day missing from events: %v", events)
	}
	colors, ok := body["event_colors"].(map[string]any)
	if !ok || colors["public"] != "#7030A0" {
		t.Errorf("event_colors = %v", body["event_colors"])
	}
}

func TestGetCalendar_InvalidInput(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		name string
		path string
	}{
		{"year below range", "/api/calendar/2024/5"},
		{"year above range", "/api/calendar/2036/5"},
		{"month out of range", "/api/calendar/2025/13"},
		{"non-numeric year", "/api/calendar/abc/5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, tc.path, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			body := decodeBody(t, w)
			if body["error"] != "Invalid year or month" {
				t.Errorf("error = %v", body["error"])
			}
		})
	}
}

func TestCreateEvent(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]string{
		"title": "Team Sync",
		"date":  "2025-04-10",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if body["message"] != "Event created successfully" {
		t.Errorf("message = %v", body["message"])
	}

	event, ok := body["event"].(map[string]any)
	if !ok {
		t.Fatalf("event missing: %v", body)
	}
	if event["type"] != "custom" {
		t.Errorf("type = %v, want custom", event["type"])
	}
	if event["color"] != "#5B9BD5" {
		t.Errorf("color = %v, want #5B9BD5", event["color"])
	}
	if event["description"] != "" {
		t.Errorf("description = %v, want empty", event["description"])
	}
	if id, ok := event["id"].(float64); !ok || id < 1 {
		t.Errorf("id = %v, want assigned id", event["id"])
	}

	// The new event shows up grouped under its date.
	w = doJSON(t, r, http.MethodGet, "/api/events", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	listed := decodeBody(t, w)
	events, ok := listed["2025-04-10"].([]any)
	if !ok || len(events) != 1 {
		t.Fatalf("expected one event under 2025-04-10: %v", listed["2025-04-10"])
	}
}

func TestCreateEvent_MissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]string{"title": "No Date"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Title and date are required" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestUpdateEvent(t *testing.T) {
	r, eventStore := newTestRouter(t)

	created, err := eventStore.Create(models.CreateEventRequest{
		Title:       "Sports Day",
		Date:        "2025-05-15",
		Description: "Annual sports day",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/events/%d", created.ID), map[string]string{
		"color": "#FF0000",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["message"] != "Event updated successfully" {
		t.Errorf("message = %v", body["message"])
	}
	event := body["event"].(map[string]any)
	if event["color"] != "#FF0000" {
		t.Errorf("color = %v", event["color"])
	}
	if event["title"] != "Sports Day" || event["date"] != "2025-05-15" || event["description"] != "Annual sports day" {
		t.Errorf("untouched fields changed: %v", event)
	}
}

func TestUpdateEvent_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/events/99999", map[string]string{"title": "Ghost"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Event not found" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestDeleteEvent(t *testing.T) {
	r, eventStore := newTestRouter(t)

	created, err := eventStore.Create(models.CreateEventRequest{Title: "To Remove", Date: "2025-08-20"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	path := fmt.Sprintf("/api/events/%d", created.ID)
	w := doJSON(t, r, http.MethodDelete, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true || body["message"] != "Event deleted successfully" {
		t.Errorf("body = %v", body)
	}

	w = doJSON(t, r, http.MethodDelete, path, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/years", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/years", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "client-supplied" {
		t.Errorf("X-Request-ID = %q, want client-supplied", got)
	}
}

func TestClientMode(t *testing.T) {
	r := NewRouter(store.NewClientStore())

	// Presets are served as static data.
	w := doJSON(t, r, http.MethodGet, "/api/events", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	listed := decodeBody(t, w)
	if _, ok := listed["2025-09-23"]; !ok {
		t.Errorf("preset National Day missing: %v", listed)
	}

	// Creation is acknowledged but nothing persists.
	w = doJSON(t, r, http.MethodPost, "/api/events", map[string]string{
		"title": "Browser Only",
		"date":  "2025-04-10",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/events", nil)
	listed = decodeBody(t, w)
	if _, ok := listed["2025-04-10"]; ok {
		t.Error("client mode persisted an event server-side")
	}

	// Deletion is a no-op acknowledgement.
	w = doJSON(t, r, http.MethodDelete, "/api/events/42", nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete status = %d, want 200", w.Code)
	}
}
