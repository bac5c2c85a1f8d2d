package state

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"artwala-io/gateway/configs"
	"artwala-io/gateway/services"
)

func testRegistry(t *testing.T, handler http.Handler, fallback configs.FallbackPolicy) *Registry {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := configs.Config{
		UpstreamBaseURL: srv.URL,
		UpstreamTimeout: 2 * time.Second,
		Fallback:        fallback,
	}
	log := zaptest.NewLogger(t)
	return NewRegistry(services.NewClient(cfg, log), fallback, log)
}

func healthyUpstream() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case services.ResourceProducts:
			w.Write([]byte(`{"results": [{"id": 1, "title": "Sunset", "price": "25000.00", "status": "published"}]}`))
		case services.ResourceArtists:
			w.Write([]byte(`[{"id": 1, "display_name": "Priya Sharma", "rating": 4.7}]`))
		case services.ResourceForums:
			w.Write([]byte(`[{"id": 4, "name": "Technique Tips", "description": "Tips"}]`))
		case services.ResourceChapters:
			w.Write([]byte(`[{"id": 9, "name": "Mumbai Chapter", "city": "Mumbai"}]`))
		case services.ResourceCommissions:
			w.Write([]byte(`{"results": [{"id": 9, "title": "Family Portrait", "status": "pending"}]}`))
		case services.ResourceAnalytics:
			w.Write([]byte(`{"total_sales": "54000.00", "total_orders": 12}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestOpenUserPopulatesAllCollections(t *testing.T) {
	registry := testRegistry(t, healthyUpstream(), configs.FallbackEmpty)

	sid, session := registry.OpenUser(context.Background())
	require.NotEmpty(t, sid)

	view := session.View()
	require.Len(t, view.Products, 1)
	assert.Equal(t, "Sunset", view.Products[0].Title)
	require.Len(t, view.Artists, 1)
	require.Len(t, view.Forums, 1)
	require.Len(t, view.Chapters, 1)
	assert.False(t, view.DemoMode)

	looked, ok := registry.User(sid)
	require.True(t, ok)
	assert.Same(t, session, looked)
}

func TestOpenUserFailuresAreIndependent(t *testing.T) {
	// Artists is down; the other resources must still populate.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == services.ResourceArtists {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		healthyUpstream().ServeHTTP(w, r)
	})
	registry := testRegistry(t, handler, configs.FallbackEmpty)

	_, session := registry.OpenUser(context.Background())

	view := session.View()
	require.NotNil(t, view.Artists)
	assert.Empty(t, view.Artists)
	assert.Len(t, view.Products, 1)
	assert.Len(t, view.Forums, 1)
	assert.Len(t, view.Chapters, 1)
	assert.False(t, view.DemoMode)
}

func TestOpenUserDemoFallbackPerResource(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == services.ResourceProducts {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		healthyUpstream().ServeHTTP(w, r)
	})
	registry := testRegistry(t, handler, configs.FallbackDemo)

	_, session := registry.OpenUser(context.Background())

	view := session.View()
	assert.Equal(t, services.DemoProducts(), view.Products)
	assert.True(t, view.DemoMode)
	assert.Len(t, view.Artists, 1, "healthy resources keep real data")
}

func TestOpenArtistPopulatesCollections(t *testing.T) {
	registry := testRegistry(t, healthyUpstream(), configs.FallbackEmpty)

	sid, session := registry.OpenArtist(context.Background())
	require.NotEmpty(t, sid)

	view := session.View()
	require.Len(t, view.Products, 1)
	require.Len(t, view.Commissions, 1)
	assert.Equal(t, 12, view.Analytics.TotalOrders)
	assert.Equal(t, "Priya Sharma", view.Profile.DisplayName)
}

func TestOpenArtistAnalyticsFailureDefaultsToZero(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == services.ResourceAnalytics {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		healthyUpstream().ServeHTTP(w, r)
	})
	registry := testRegistry(t, handler, configs.FallbackEmpty)

	_, session := registry.OpenArtist(context.Background())
	assert.Zero(t, session.View().Analytics)
}

func TestOpenArtistProfileFallsBackToDemo(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == services.ResourceArtists {
			w.Write([]byte(`[]`))
			return
		}
		healthyUpstream().ServeHTTP(w, r)
	})
	registry := testRegistry(t, handler, configs.FallbackEmpty)

	_, session := registry.OpenArtist(context.Background())
	assert.Equal(t, "Demo Artist", session.View().Profile.DisplayName)
}

func TestCloseTearsDownEitherRole(t *testing.T) {
	registry := testRegistry(t, healthyUpstream(), configs.FallbackEmpty)

	userSID, _ := registry.OpenUser(context.Background())
	artistSID, _ := registry.OpenArtist(context.Background())

	assert.True(t, registry.Close(userSID))
	assert.True(t, registry.Close(artistSID))
	assert.False(t, registry.Close(userSID), "closing twice reports not found")
	assert.False(t, registry.Close("no-such-session"))

	_, ok := registry.User(userSID)
	assert.False(t, ok)
	_, ok = registry.Artist(artistSID)
	assert.False(t, ok)
}

func TestSessionsAreIsolated(t *testing.T) {
	registry := testRegistry(t, healthyUpstream(), configs.FallbackEmpty)

	_, first := registry.OpenUser(context.Background())
	_, second := registry.OpenUser(context.Background())

	product, ok := first.ProductByID(1)
	require.True(t, ok)
	require.NoError(t, first.AddToCart(product))

	assert.Len(t, first.View().Cart, 1)
	assert.Empty(t, second.View().Cart)
}
