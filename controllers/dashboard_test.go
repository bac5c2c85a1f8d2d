package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"artwala-io/gateway/configs"
	"artwala-io/gateway/controllers"
	"artwala-io/gateway/services"
	"artwala-io/gateway/state"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	router   *gin.Engine
	registry *state.Registry
}

func newFixture(t *testing.T, upstream http.Handler, fallback configs.FallbackPolicy) *fixture {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	cfg := configs.Config{
		UpstreamBaseURL: srv.URL,
		UpstreamTimeout: 2 * time.Second,
		Fallback:        fallback,
	}
	log := zaptest.NewLogger(t)
	client := services.NewClient(cfg, log)
	registry := state.NewRegistry(client, fallback, log)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/overview", controllers.GetOverview(client, fallback, log))

	user := api.Group("/dashboard/user")
	user.POST("", controllers.MountUserDashboard(registry))
	user.GET("/:sid", controllers.GetUserDashboard(registry))
	user.DELETE("/:sid", controllers.CloseDashboard(registry))
	user.POST("/:sid/cart", controllers.AddToCart(registry))
	user.POST("/:sid/cart/checkout", controllers.Checkout(registry))
	user.DELETE("/:sid/cart/:productId", controllers.RemoveFromCart(registry))
	user.POST("/:sid/wishlist", controllers.AddToWishlist(registry))
	user.POST("/:sid/following/:artistId", controllers.FollowArtist(registry))

	artist := api.Group("/dashboard/artist")
	artist.POST("", controllers.MountArtistDashboard(registry))
	artist.GET("/:sid", controllers.GetArtistDashboard(registry))
	artist.POST("/:sid/products", controllers.CreateProduct(registry))
	artist.PUT("/:sid/products/:productId", controllers.UpdateProduct(registry))
	artist.DELETE("/:sid/products/:productId", controllers.DeleteProduct(registry))
	artist.POST("/:sid/commissions/:commissionId/accept", controllers.AcceptCommission(registry))
	artist.POST("/:sid/commissions/:commissionId/decline", controllers.DeclineCommission(registry))

	return &fixture{router: router, registry: registry}
}

func demoUpstream() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case services.ResourceProducts:
			w.Write([]byte(`{"results": [{"id": 1, "title": "Sunset", "price": "25000.00", "status": "published"}]}`))
		case services.ResourceArtists:
			w.Write([]byte(`[{"id": 2, "display_name": "Rajesh Patel"}]`))
		case services.ResourceForums:
			w.Write([]byte(`[]`))
		case services.ResourceChapters:
			w.Write([]byte(`[]`))
		case services.ResourceCommissions:
			w.Write([]byte(`{"results": [{"id": 9, "title": "Family Portrait", "status": "pending"}]}`))
		case services.ResourceAnalytics:
			w.Write([]byte(`{"total_orders": 5}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func mountUser(t *testing.T, f *fixture) string {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/api/dashboard/user", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload struct {
		SessionID string `json:"session_id"`
	}
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.NotEmpty(t, payload.SessionID)
	return payload.SessionID
}

func mountArtist(t *testing.T, f *fixture) string {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/api/dashboard/artist", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload struct {
		SessionID string `json:"session_id"`
	}
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	return payload.SessionID
}

func TestUserCartFlow(t *testing.T) {
	f := newFixture(t, demoUpstream(), configs.FallbackEmpty)
	sid := mountUser(t, f)

	rec := f.do(t, http.MethodPost, "/api/dashboard/user/"+sid+"/cart", `{"product_id": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sunset added to cart!", decodeEnvelope(t, rec).Message)

	// Duplicate add is rejected with the user-visible notice.
	rec = f.do(t, http.MethodPost, "/api/dashboard/user/"+sid+"/cart", `{"product_id": 1}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Sunset is already in your cart!", decodeEnvelope(t, rec).Error)

	rec = f.do(t, http.MethodDelete, "/api/dashboard/user/"+sid+"/cart/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/dashboard/user/"+sid, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view state.UserView
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Empty(t, view.Cart)
}

func TestUserCartUnknownProduct(t *testing.T) {
	f := newFixture(t, demoUpstream(), configs.FallbackEmpty)
	sid := mountUser(t, f)

	rec := f.do(t, http.MethodPost, "/api/dashboard/user/"+sid+"/cart", `{"product_id": 404}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserFollowDuplicate(t *testing.T) {
	f := newFixture(t, demoUpstream(), configs.FallbackEmpty)
	sid := mountUser(t, f)

	rec := f.do(t, http.MethodPost, "/api/dashboard/user/"+sid+"/following/2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/dashboard/user/"+sid+"/following/2", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUserCheckoutPlaceholder(t *testing.T) {
	f := newFixture(t, demoUpstream(), configs.FallbackEmpty)
	sid := mountUser(t, f)

	rec := f.do(t, http.MethodPost, "/api/dashboard/user/"+sid+"/cart/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Proceeding to checkout...", decodeEnvelope(t, rec).Message)
}

func TestUserSessionTeardown(t *testing.T) {
	f := newFixture(t, demoUpstream(), configs.FallbackEmpty)
	sid := mountUser(t, f)

	rec := f.do(t, http.MethodDelete, "/api/dashboard/user/"+sid, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/dashboard/user/"+sid, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserMountSurvivesDownUpstream(t *testing.T) {
	down := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	f := newFixture(t, down, configs.FallbackEmpty)
	sid := mountUser(t, f)

	rec := f.do(t, http.MethodGet, "/api/dashboard/user/"+sid, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view state.UserView
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.NotNil(t, view.Products)
	assert.Empty(t, view.Products)
	assert.NotNil(t, view.Chapters)
}

func TestArtistProductAuthoring(t *testing.T) {
	f := newFixture(t, demoUpstream(), configs.FallbackEmpty)
	sid := mountArtist(t, f)

	rec := f.do(t, http.MethodPost, "/api/dashboard/artist/"+sid+"/products",
		`{"title": "Morning Raga", "price": "18000.00", "description": "Oil on canvas"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Product added successfully!", decodeEnvelope(t, rec).Message)

	// Missing required fields are blocked at the input boundary.
	rec = f.do(t, http.MethodPost, "/api/dashboard/artist/"+sid+"/products", `{"title": "No price"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/dashboard/artist/"+sid+"/products/1", `{"price": "26000.00"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Declined confirmation leaves the collection untouched.
	rec = f.do(t, http.MethodDelete, "/api/dashboard/artist/"+sid+"/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Deletion cancelled", decodeEnvelope(t, rec).Message)

	rec = f.do(t, http.MethodDelete, "/api/dashboard/artist/"+sid+"/products/1?confirmed=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted successfully!", decodeEnvelope(t, rec).Message)

	rec = f.do(t, http.MethodGet, "/api/dashboard/artist/"+sid, "")
	var view state.ArtistView
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Len(t, view.Products, 1)
	assert.Equal(t, "Morning Raga", view.Products[0].Title)
}

func TestArtistCommissionResolution(t *testing.T) {
	f := newFixture(t, demoUpstream(), configs.FallbackEmpty)
	sid := mountArtist(t, f)

	rec := f.do(t, http.MethodPost, "/api/dashboard/artist/"+sid+"/commissions/9/accept", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Message, "accepted")

	rec = f.do(t, http.MethodPost, "/api/dashboard/artist/"+sid+"/commissions/9/decline", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/dashboard/artist/"+sid+"/commissions/404/accept", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOverviewDemoMode(t *testing.T) {
	down := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	f := newFixture(t, down, configs.FallbackDemo)

	rec := f.do(t, http.MethodGet, "/api/overview", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Summary  map[string]int    `json:"summary"`
		Overview services.Overview `json:"overview"`
	}
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &payload))

	assert.True(t, payload.Overview.DemoMode)
	assert.Equal(t, services.DemoNotice, payload.Overview.Notice)
	assert.Equal(t, 3, payload.Summary["products"])
	assert.Equal(t, 2, payload.Summary["chapters"])
}
