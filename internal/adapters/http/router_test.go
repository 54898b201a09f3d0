package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"matchlobby/internal/app"
	"matchlobby/internal/config"
)

func newTestRouter() *gin.Engine {
	cfg := &config.Config{
		Mode:         "release",
		Secret:       "test-secret",
		RoomCapacity: 4,
	}
	return SetupRouter(cfg, app.NewAllocator(cfg.RoomCapacity))
}

// client plays one browser session: it holds the SESSION cookie across
// requests, like requests.Session in an end-to-end suite.
type client struct {
	t       *testing.T
	r       *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T, r *gin.Engine) *client {
	return &client{t: t, r: r}
}

func (c *client) post(path string) (int, map[string]any) {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	res := w.Result()
	if got := res.Cookies(); len(got) > 0 {
		c.cookies = got
	}
	var body map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			c.t.Fatalf("POST %s: bad body %q: %v", path, w.Body.String(), err)
		}
	}
	return res.StatusCode, body
}

func (c *client) join(t *testing.T) map[string]any {
	t.Helper()
	code, body := c.post("/join")
	if code != http.StatusOK {
		t.Fatalf("POST /join = %d, want 200", code)
	}
	return body
}

const (
	msgWaiting = "Waiting for more players..."
	msgStarted = "Game room created! The game is starting."
	msgAlready = "You are already in the game."
)

func TestJoinNewSession(t *testing.T) {
	r := newTestRouter()

	body := newClient(t, r).join(t)
	if body["message"] != msgWaiting {
		t.Errorf("message = %q, want %q", body["message"], msgWaiting)
	}
	if body["roomId"] == "" {
		t.Error("reply carries no roomId")
	}
}

func TestJoinSameSessionTwice(t *testing.T) {
	r := newTestRouter()
	c := newClient(t, r)

	first := c.join(t)
	second := c.join(t)
	if second["message"] != msgAlready {
		t.Errorf("message = %q, want %q", second["message"], msgAlready)
	}
	if second["roomId"] != first["roomId"] {
		t.Errorf("roomId = %v, want %v", second["roomId"], first["roomId"])
	}
}

func TestMultipleSessionsFillRoom(t *testing.T) {
	r := newTestRouter()

	for i := 0; i < 4; i++ {
		body := newClient(t, r).join(t)
		want := msgWaiting
		if i == 3 {
			want = msgStarted
		}
		if body["message"] != want {
			t.Errorf("join %d: message = %q, want %q", i+1, body["message"], want)
		}
	}
}

func TestFifthSessionGetsFreshRoom(t *testing.T) {
	r := newTestRouter()

	var fullRoom any
	for i := 0; i < 4; i++ {
		fullRoom = newClient(t, r).join(t)["roomId"]
	}

	body := newClient(t, r).join(t)
	if body["message"] != msgWaiting {
		t.Errorf("message = %q, want %q", body["message"], msgWaiting)
	}
	if body["roomId"] == fullRoom {
		t.Error("fifth session landed in the full room")
	}
}

func TestJoinSpecificRoom(t *testing.T) {
	r := newTestRouter()

	roomID, _ := newClient(t, r).join(t)["roomId"].(string)
	if roomID == "" {
		t.Fatal("no roomId from first join")
	}

	for i := 0; i < 3; i++ {
		code, body := newClient(t, r).post("/join/" + roomID)
		if code != http.StatusOK {
			t.Fatalf("POST /join/%s = %d, want 200", roomID, code)
		}
		want := msgWaiting
		if i == 2 {
			want = msgStarted
		}
		if body["message"] != want {
			t.Errorf("specific join %d: message = %q, want %q", i+1, body["message"], want)
		}
		if body["roomId"] != roomID {
			t.Errorf("specific join %d landed in %v, want %s", i+1, body["roomId"], roomID)
		}
	}
}

func TestJoinUnknownRoom(t *testing.T) {
	r := newTestRouter()

	code, body := newClient(t, r).post("/join/no-such-room")
	if code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
	if body["error"] != "Room not found." {
		t.Errorf("error = %q", body["error"])
	}
}

func TestJoinStartedRoom(t *testing.T) {
	r := newTestRouter()

	var roomID string
	for i := 0; i < 4; i++ {
		roomID, _ = newClient(t, r).join(t)["roomId"].(string)
	}

	code, body := newClient(t, r).post("/join/" + roomID)
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
	if body["error"] != "Room is already full. You can't join." {
		t.Errorf("error = %q", body["error"])
	}
}

func TestResetEndpoint(t *testing.T) {
	r := newTestRouter()
	c := newClient(t, r)

	c.join(t)
	code, body := c.post("/reset")
	if code != http.StatusOK {
		t.Errorf("POST /reset = %d, want 200", code)
	}
	if body["message"] != "Server state reset" {
		t.Errorf("message = %q", body["message"])
	}

	// After reset the same cookie counts as a fresh player.
	after := c.join(t)
	if after["message"] != msgWaiting {
		t.Errorf("message = %q, want %q", after["message"], msgWaiting)
	}
}

func TestRoomListing(t *testing.T) {
	r := newTestRouter()

	c := newClient(t, r)
	roomID := c.join(t)["roomId"]

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/rooms = %d, want 200", w.Code)
	}

	var rooms []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("bad body %q: %v", w.Body.String(), err)
	}
	if len(rooms) != 1 {
		t.Fatalf("rooms = %d, want 1", len(rooms))
	}
	if rooms[0]["id"] != roomID || rooms[0]["players"] != float64(1) || rooms[0]["status"] != "waiting" {
		t.Errorf("room = %+v", rooms[0])
	}
}

func TestSessionCookieIssuedOnce(t *testing.T) {
	r := newTestRouter()
	c := newClient(t, r)

	c.join(t)
	if len(c.cookies) == 0 {
		t.Fatal("first request issued no session cookie")
	}
	saved := c.cookies[0].Value

	c.join(t)
	if c.cookies[0].Value != saved {
		t.Error("session cookie changed between requests")
	}
}
