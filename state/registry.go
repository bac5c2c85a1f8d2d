package state

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"artwala-io/gateway/configs"
	"artwala-io/gateway/models"
	"artwala-io/gateway/services"
)

// Registry owns every mounted dashboard session. Sessions are created at
// dashboard mount, looked up per request and torn down at disposal; nothing
// outlives the registry's process.
type Registry struct {
	mu      sync.RWMutex
	users   map[string]*UserSession
	artists map[string]*ArtistSession

	client   *services.Client
	fallback configs.FallbackPolicy
	log      *zap.Logger
}

func NewRegistry(client *services.Client, fallback configs.FallbackPolicy, log *zap.Logger) *Registry {
	return &Registry{
		users:    make(map[string]*UserSession),
		artists:  make(map[string]*ArtistSession),
		client:   client,
		fallback: fallback,
		log:      log,
	}
}

// OpenUser mounts a buyer dashboard: the four catalog/community resources are
// fetched concurrently, each behind its own failure boundary, so one failing
// resource never blanks the others.
func (r *Registry) OpenUser(ctx context.Context) (string, *UserSession) {
	session := newUserSession(r.log)

	var (
		wg       sync.WaitGroup
		products []models.Product
		artists  []models.ArtistProfile
		forums   []models.Forum
		chapters []models.Chapter
		demo     demoFlag
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		products = fetchOrFallback(ctx, r, services.ResourceProducts, r.client.FetchProducts, services.DemoProducts, &demo)
	}()
	go func() {
		defer wg.Done()
		artists = fetchOrFallback(ctx, r, services.ResourceArtists, r.client.FetchArtists, services.DemoArtists, &demo)
	}()
	go func() {
		defer wg.Done()
		forums = fetchOrFallback(ctx, r, services.ResourceForums, r.client.FetchForums, func() []models.Forum { return nil }, &demo)
	}()
	go func() {
		defer wg.Done()
		chapters = fetchOrFallback(ctx, r, services.ResourceChapters, r.client.FetchChapters, services.DemoChapters, &demo)
	}()
	wg.Wait()

	session.setCollections(products, artists, forums, chapters, demo.raised())

	sid := uuid.NewString()
	r.mu.Lock()
	r.users[sid] = session
	r.mu.Unlock()

	r.log.Info("user dashboard mounted", zap.String("session_id", sid))
	return sid, session
}

// OpenArtist mounts an artist dashboard. Analytics falls back to its zero
// value and the profile to the built-in demo profile, mirroring the
// storefront's behavior for those two resources.
func (r *Registry) OpenArtist(ctx context.Context) (string, *ArtistSession) {
	session := newArtistSession(r.log)

	var (
		wg          sync.WaitGroup
		products    []models.Product
		commissions []models.CommissionRequest
		analytics   models.ArtistAnalytics
		profile     models.ArtistProfile
		demo        demoFlag
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		products = fetchOrFallback(ctx, r, services.ResourceProducts, r.client.FetchProducts, services.DemoProducts, &demo)
	}()
	go func() {
		defer wg.Done()
		commissions = fetchOrFallback(ctx, r, services.ResourceCommissions, r.client.FetchCommissions, func() []models.CommissionRequest { return nil }, &demo)
	}()
	go func() {
		defer wg.Done()
		fetched, err := r.client.FetchAnalytics(ctx)
		if err != nil {
			r.log.Error("analytics fetch failed", zap.Error(err))
			fetched = models.ArtistAnalytics{}
		}
		analytics = fetched
	}()
	go func() {
		defer wg.Done()
		fetchedProfiles, err := r.client.FetchArtists(ctx)
		if err != nil || len(fetchedProfiles) == 0 {
			if err != nil {
				r.log.Error("artist profile fetch failed", zap.Error(err))
			}
			profile = services.DemoArtistProfile()
			return
		}
		profile = fetchedProfiles[0]
	}()
	wg.Wait()

	session.setCollections(products, commissions, analytics, profile, demo.raised())

	sid := uuid.NewString()
	r.mu.Lock()
	r.artists[sid] = session
	r.mu.Unlock()

	r.log.Info("artist dashboard mounted", zap.String("session_id", sid))
	return sid, session
}

type demoFlag struct {
	mu  sync.Mutex
	set bool
}

func (d *demoFlag) raise() {
	d.mu.Lock()
	d.set = true
	d.mu.Unlock()
}

func (d *demoFlag) raised() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.set
}

// fetchOrFallback applies the configured failure policy to one resource
// fetch: empty leaves the collection blank, demo substitutes the built-in
// dataset and raises the demo-mode flag. Either way the failure is logged
// and confined to its own resource.
func fetchOrFallback[T any](ctx context.Context, r *Registry, resource string, fetch func(context.Context) ([]T, error), demoData func() []T, demo *demoFlag) []T {
	collection, err := fetch(ctx)
	if err == nil {
		return collection
	}

	r.log.Error("resource fetch failed",
		zap.String("resource", resource),
		zap.String("fallback", string(r.fallback)),
		zap.Error(err))

	if r.fallback == configs.FallbackDemo {
		if data := demoData(); data != nil {
			demo.raise()
			return data
		}
	}
	return nil
}

// User returns the session for the id, if mounted.
func (r *Registry) User(sid string) (*UserSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.users[sid]
	return session, ok
}

func (r *Registry) Artist(sid string) (*ArtistSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.artists[sid]
	return session, ok
}

// Close tears a session down. Closing an unknown id reports false.
func (r *Registry) Close(sid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[sid]; ok {
		delete(r.users, sid)
		r.log.Info("user dashboard closed", zap.String("session_id", sid))
		return true
	}
	if _, ok := r.artists[sid]; ok {
		delete(r.artists, sid)
		r.log.Info("artist dashboard closed", zap.String("session_id", sid))
		return true
	}
	return false
}
