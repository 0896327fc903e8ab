package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"meeting-concierge/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, ts *httptest.Server) *gcalendar.Client {
	t.Helper()

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestListEvents(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/busy@x.com/events" && r.Method == http.MethodGet {
			if r.URL.Query().Get("singleEvents") != "true" {
				t.Errorf("expected singleEvents=true, got %q", r.URL.Query().Get("singleEvents"))
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"items": [
					{
						"id": "event-123",
						"summary": "Existing Meeting",
						"start": { "dateTime": "2026-09-01T15:00:00Z" },
						"end": { "dateTime": "2026-09-01T16:00:00Z" }
					}
				]
			}`))
			return
		}
		if r.URL.Path == "/calendar/v3/calendars/free@x.com/events" && r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"items": []}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := newTestClient(t, ts)
	window := struct{ min, max time.Time }{
		min: time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC),
		max: time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC),
	}

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "busy@x.com",
		TimeMin:    window.min,
		TimeMax:    window.max,
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Summary != "Existing Meeting" {
		t.Errorf("unexpected event: %s", events[0].Summary)
	}
	if !events[0].StartTime.Equal(window.min) {
		t.Errorf("unexpected start time: %v", events[0].StartTime)
	}

	events, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "free@x.com",
		TimeMin:    window.min,
		TimeMax:    window.max,
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected 0 events, got %d", len(events))
	}

	_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "broken@x.com",
		TimeMin:    window.min,
		TimeMax:    window.max,
	})
	if err == nil {
		t.Fatalf("expected api error")
	}
}

func TestCreateEvent(t *testing.T) {
	var gotBody struct {
		Attendees []struct {
			Email string `json:"email"`
		} `json:"attendees"`
		ConferenceData struct {
			CreateRequest struct {
				RequestID             string `json:"requestId"`
				ConferenceSolutionKey struct {
					Type string `json:"type"`
				} `json:"conferenceSolutionKey"`
			} `json:"createRequest"`
		} `json:"conferenceData"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/organizer@x.com/events" && r.Method == http.MethodPost {
			if r.URL.Query().Get("conferenceDataVersion") != "1" {
				t.Errorf("expected conferenceDataVersion=1")
			}
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": "event-456",
				"htmlLink": "https://calendar.google.com/event-uri",
				"hangoutLink": "https://meet.google.com/abc-defg-hij",
				"attendees": [{"email": "organizer@x.com"}, {"email": "guest@x.com"}],
				"status": "confirmed"
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := newTestClient(t, ts)

	start := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Proposed Meeting",
		Attendees: []string{"organizer@x.com", "guest@x.com"},
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Timezone:  "UTC",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	if event.ID != "event-456" {
		t.Errorf("unexpected id: %s", event.ID)
	}
	if event.HangoutLink != "https://meet.google.com/abc-defg-hij" {
		t.Errorf("unexpected conference link: %s", event.HangoutLink)
	}

	// Organizer must stay first in the attendee list sent to the provider.
	if len(gotBody.Attendees) != 2 || gotBody.Attendees[0].Email != "organizer@x.com" {
		t.Errorf("attendee ordering not preserved: %+v", gotBody.Attendees)
	}
	if gotBody.ConferenceData.CreateRequest.ConferenceSolutionKey.Type != "hangoutsMeet" {
		t.Errorf("expected hangoutsMeet conference request")
	}
	if gotBody.ConferenceData.CreateRequest.RequestID == "" {
		t.Errorf("expected a conference request id")
	}
	if len(event.Attendees) != 2 || event.Attendees[0] != "organizer@x.com" {
		t.Errorf("attendee ordering lost in response: %+v", event.Attendees)
	}
}

func TestCreateEventErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := newTestClient(t, ts)

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{})
	if err == nil {
		t.Fatalf("expected error on empty attendees")
	}

	_, err = client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Attendees: []string{"a@x.com"},
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	})
	if err == nil {
		t.Fatalf("expected create event error")
	}
}
