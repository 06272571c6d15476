package api

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestExportAnswersCSVStreamsAllSubmissions(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "alice", "alice@example.com", "sturdy-pw")
	cookie := loginAndExtractAuthCookie(t, app, "alice", "sturdy-pw")

	first := postForm(t, app, "/form", url.Values{
		"sex": {"M"}, "age": {"25"}, "height": {"180"}, "weight": {"75"},
		"activity": {"2"}, "meals": {"3"}, "snacks": {"1"},
	}, cookie)
	first.Body.Close()
	second := postForm(t, app, "/form", url.Values{
		"sex": {"F"}, "age": {"30"}, "height": {"165"}, "weight": {"58"},
		"activity": {"1"}, "meals": {"2"}, "snacks": {"2"},
	}, cookie)
	second.Body.Close()

	response, err := app.Test(newGetRequest("/answers/export", cookie, false), -1)
	if err != nil {
		t.Fatalf("export request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if contentType := response.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "text/csv") {
		t.Fatalf("expected a text/csv content type, got %q", contentType)
	}
	if disposition := response.Header.Get("Content-Disposition"); disposition != `attachment; filename="answers.csv"` {
		t.Fatalf("unexpected content disposition %q", disposition)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read export body: %v", err)
	}
	expected := "sex,age,height,weight,activity,meals,snacks\n" +
		"M,25,180,75,2,3,1\n" +
		"F,30,165,58,1,2,2\n"
	if string(body) != expected {
		t.Fatalf("expected %q, got %q", expected, string(body))
	}
}

func TestExportAnswersCSVWithoutSubmissionsIsHeaderOnly(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "alice", "alice@example.com", "sturdy-pw")
	cookie := loginAndExtractAuthCookie(t, app, "alice", "sturdy-pw")

	response, err := app.Test(newGetRequest("/answers/export", cookie, false), -1)
	if err != nil {
		t.Fatalf("export request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read export body: %v", err)
	}
	if string(body) != "sex,age,height,weight,activity,meals,snacks\n" {
		t.Fatalf("expected only the header row, got %q", string(body))
	}
}

func TestExportAnswersCSVIsScopedToItsOwner(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "alice", "alice@example.com", "sturdy-pw")
	createTestUser(t, database, "bob", "bob@example.com", "sturdy-pw")

	aliceCookie := loginAndExtractAuthCookie(t, app, "alice", "sturdy-pw")
	submitted := postForm(t, app, "/form", url.Values{"age": {"33"}}, aliceCookie)
	submitted.Body.Close()

	bobCookie := loginAndExtractAuthCookie(t, app, "bob", "sturdy-pw")
	response, err := app.Test(newGetRequest("/answers/export", bobCookie, false), -1)
	if err != nil {
		t.Fatalf("export request failed: %v", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read export body: %v", err)
	}
	if strings.Contains(string(body), "33") {
		t.Fatal("another user's submissions leaked into the export")
	}
}
