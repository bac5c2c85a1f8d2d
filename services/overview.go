package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"artwala-io/gateway/configs"
	"artwala-io/gateway/models"
)

// Overview is the combined dashboard payload: all five collections behind a
// joined wait, unlike the role dashboards which populate progressively.
type Overview struct {
	Products   []models.Product       `json:"products"`
	Artists    []models.ArtistProfile `json:"artists"`
	Categories []models.Category      `json:"categories"`
	Chapters   []models.Chapter       `json:"chapters"`
	Posts      []models.Post          `json:"posts"`

	DemoMode bool   `json:"demo_mode"`
	Notice   string `json:"notice,omitempty"`
}

// FetchOverview loads every overview collection concurrently and waits for
// all of them. Any single failure fails the join; under the demo policy the
// whole payload is then replaced by the built-in dataset with a demo-mode
// notice, otherwise every collection is served empty.
func FetchOverview(ctx context.Context, client *Client, fallback configs.FallbackPolicy, log *zap.Logger) Overview {
	var overview Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.Products, err = client.FetchProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Artists, err = client.FetchArtists(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Categories, err = client.FetchCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Chapters, err = client.FetchChapters(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Posts, err = client.FetchPosts(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("overview fetch failed", zap.Error(err))

		if fallback == configs.FallbackDemo {
			return Overview{
				Products:   DemoProducts(),
				Artists:    DemoArtists(),
				Categories: DemoCategories(),
				Chapters:   DemoChapters(),
				Posts:      DemoPosts(),
				DemoMode:   true,
				Notice:     DemoNotice,
			}
		}

		return Overview{
			Products:   []models.Product{},
			Artists:    []models.ArtistProfile{},
			Categories: []models.Category{},
			Chapters:   []models.Chapter{},
			Posts:      []models.Post{},
			Notice:     "Backend connection not available",
		}
	}

	overview.ensureIterable()
	return overview
}

func (o *Overview) ensureIterable() {
	if o.Products == nil {
		o.Products = []models.Product{}
	}
	if o.Artists == nil {
		o.Artists = []models.ArtistProfile{}
	}
	if o.Categories == nil {
		o.Categories = []models.Category{}
	}
	if o.Chapters == nil {
		o.Chapters = []models.Chapter{}
	}
	if o.Posts == nil {
		o.Posts = []models.Post{}
	}
}
