package integrationtests

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	auction "auction-platform/internal/auctionService"
	"auction-platform/internal/automation"
	bidding "auction-platform/internal/biddingService"
	commission "auction-platform/internal/commissionService"
	model "auction-platform/internal/models"
	"auction-platform/internal/objectstore"
	"auction-platform/internal/repository"
	"auction-platform/internal/server"
	user "auction-platform/internal/userService"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testClock is a settable clock shared by every service in a test app.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{t: start}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// captureNotifier records outgoing mail instead of sending it.
type captureNotifier struct {
	mu   sync.Mutex
	sent []string // recipient addresses
}

func (n *captureNotifier) Send(to, subject, text, html string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, to)
	return nil
}

// testApp is the whole application wired against the in-memory store,
// with the sweeps held for manual ticking.
type testApp struct {
	router    *gin.Engine
	store     *repository.MemoryStore
	users     *user.UserService
	clock     *testClock
	notifier  *captureNotifier
	closing   *automation.ClosingSweep
	reconcile *automation.ReconciliationSweep
}

var testStart = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// SetupTestApp wires the full stack for integration testing.
func SetupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	images := objectstore.NewMemoryStore()
	notifier := &captureNotifier{}
	clock := newTestClock(testStart)

	userSvc := user.NewUserService(store, images, notifier,
		"integration-secret", 168*time.Hour, 15*time.Minute).WithClock(clock.Now)
	auctionSvc := auction.NewAuctionService(store, images).WithClock(clock.Now)
	biddingSvc := bidding.NewBiddingService(store).WithClock(clock.Now)
	commissionSvc := commission.NewCommissionService(store, images).WithClock(clock.Now)

	router := server.SetupRouter(server.Deps{
		Users:       userSvc,
		Auctions:    auctionSvc,
		Bidding:     biddingSvc,
		Commissions: commissionSvc,
		Resolver:    userSvc,
		Loader:      userSvc,
		CookieName:  "token",
		CookieTTL:   3600,
	})

	return &testApp{
		router:    router,
		store:     store,
		users:     userSvc,
		clock:     clock,
		notifier:  notifier,
		closing:   automation.NewClosingSweep(store, notifier, 0.05),
		reconcile: automation.NewReconciliationSweep(store, notifier),
	}
}

// ExecuteJSON sends a JSON request, with an optional session cookie, and
// parses the response envelope.
func (a *testApp) ExecuteJSON(t *testing.T, method, url string, body any, cookie *http.Cookie) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// ExecuteForm sends a multipart form with an optional PNG file field.
func (a *testApp) ExecuteForm(t *testing.T, method, url string, fields map[string]string, fileField string, cookie *http.Cookie) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, form.WriteField(k, v))
	}
	if fileField != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="test.png"`)
		header.Set("Content-Type", "image/png")
		part, err := form.CreatePart(header)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader([]byte{0x89, 0x50, 0x4e, 0x47}))
		require.NoError(t, err)
	}
	require.NoError(t, form.Close())

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// RegisterUser registers an account through the API and returns its id.
func (a *testApp) RegisterUser(t *testing.T, name, email string, role model.Role) string {
	t.Helper()

	fields := map[string]string{
		"user_name": name,
		"email":     email,
		"password":  "integration-pass",
		"phone":     "5551234567",
		"address":   "12 Test Lane",
		"role":      string(role),
	}
	if role == model.RoleAuctioneer {
		fields["bank_account_number"] = "1234567890"
		fields["bank_account_name"] = name
		fields["bank_name"] = "Test Bank"
		fields["google_pay_account_number"] = "5551234567"
		fields["paypal_email"] = email
	}

	resp, w := a.ExecuteForm(t, http.MethodPost, "/api/v1/users/register", fields, "profile_image", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return resp["data"].(map[string]any)["user_id"].(string)
}

// Login logs in through the API and returns the session cookie.
func (a *testApp) Login(t *testing.T, email string) *http.Cookie {
	t.Helper()

	_, w := a.ExecuteJSON(t, http.MethodPost, "/api/v1/users/login",
		gin.H{"email": email, "password": "integration-pass"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

// AdminCookie creates a super admin directly in the store and returns a
// session cookie for it. Super admins cannot be created via registration.
func (a *testApp) AdminCookie(t *testing.T) *http.Cookie {
	t.Helper()

	admin := model.User{
		UserID:   utils.GenerateID(),
		UserName: "root",
		Email:    "root@test.dev",
		Role:     model.RoleSuperAdmin,
	}
	require.NoError(t, a.store.CreateUser(admin))

	token, err := a.users.IssueToken(admin)
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: token}
}
