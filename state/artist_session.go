package state

import (
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	slug2 "github.com/gosimple/slug"
	"go.uber.org/zap"

	"artwala-io/gateway/models"
)

var validate = validator.New()

// ArtistSession is the artist dashboard's view state: the artist's products,
// incoming commission requests and analytics, plus authoring state for the
// product form. Product writes are local-only echoes; nothing here reaches
// the backend.
type ArtistSession struct {
	mu  sync.Mutex
	log *zap.Logger

	products    []models.Product
	commissions []models.CommissionRequest
	analytics   models.ArtistAnalytics
	profile     models.ArtistProfile

	editingProduct     *models.Product
	selectedCommission *models.CommissionRequest
	showCommission     bool
	showEditor         bool
	showProfile        bool

	demoMode bool
}

func newArtistSession(log *zap.Logger) *ArtistSession {
	return &ArtistSession{
		log:         log,
		products:    []models.Product{},
		commissions: []models.CommissionRequest{},
	}
}

// ArtistView is the rendered snapshot of an artist session.
type ArtistView struct {
	Products    []models.Product           `json:"products"`
	Commissions []models.CommissionRequest `json:"commissions"`
	Analytics   models.ArtistAnalytics     `json:"analytics"`
	Profile     models.ArtistProfile       `json:"profile"`

	EditingProduct     *models.Product           `json:"editing_product,omitempty"`
	SelectedCommission *models.CommissionRequest `json:"selected_commission,omitempty"`
	ShowCommission     bool                      `json:"show_commission_details"`
	ShowEditor         bool                      `json:"show_edit_product"`
	ShowProfile        bool                      `json:"show_profile"`

	DemoMode bool `json:"demo_mode"`
}

func (s *ArtistSession) View() ArtistView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ArtistView{
		Products:           s.products,
		Commissions:        s.commissions,
		Analytics:          s.analytics,
		Profile:            s.profile,
		EditingProduct:     s.editingProduct,
		SelectedCommission: s.selectedCommission,
		ShowCommission:     s.showCommission,
		ShowEditor:         s.showEditor,
		ShowProfile:        s.showProfile,
		DemoMode:           s.demoMode,
	}
}

func (s *ArtistSession) setCollections(products []models.Product, commissions []models.CommissionRequest, analytics models.ArtistAnalytics, profile models.ArtistProfile, demoMode bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if products == nil {
		products = []models.Product{}
	}
	if commissions == nil {
		commissions = []models.CommissionRequest{}
	}

	s.products = products
	s.commissions = commissions
	s.analytics = analytics
	s.profile = profile
	s.demoMode = demoMode
}

// CreateProduct validates the authoring form and appends a synthesized
// product to the local collection. The id is the collection length plus one
// and the status defaults to draft; the backend is never contacted.
func (s *ArtistSession) CreateProduct(form models.ProductForm) (models.Product, error) {
	if err := validate.Struct(&form); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := form.Status
	if status == "" {
		status = models.ProductStatusDraft
	}

	product := models.Product{
		ID:          len(s.products) + 1,
		Title:       form.Title,
		Slug:        slug2.Make(form.Title),
		Price:       form.Price,
		Description: form.Description,
		Medium:      form.Medium,
		Dimensions:  form.Dimensions,
		YearCreated: form.YearCreated,
		Status:      status,
		ImageURL:    form.ImageURL,
		ArtistName:  "Current Artist",
		CreatedAt:   time.Now().UTC(),
	}

	s.products = append(slices.Clone(s.products), product)
	s.log.Info("product created locally", zap.Int("product_id", product.ID), zap.String("slug", product.Slug))
	return product, nil
}

// UpdateProduct merges the patch over the matching product and replaces the
// entry. An absent id reports failure and changes nothing.
func (s *ArtistSession) UpdateProduct(productID int, patch models.ProductPatch) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.products {
		if existing.ID != productID {
			continue
		}

		updated := patch.Apply(existing)
		updated.UpdatedAt = time.Now().UTC()

		next := slices.Clone(s.products)
		next[i] = updated
		s.products = next

		s.editingProduct = nil
		s.showEditor = false
		return updated, nil
	}

	return models.Product{}, ErrProductNotFound
}

// DeleteProduct removes the product once the caller-supplied confirmation
// decision is affirmative. A declined confirmation aborts with no state
// change and no error; the returned flag reports whether a delete happened.
func (s *ArtistSession) DeleteProduct(productID int, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Product, 0, len(s.products))
	found := false
	for _, p := range s.products {
		if p.ID == productID {
			found = true
			continue
		}
		next = append(next, p)
	}

	if !found {
		return false, ErrProductNotFound
	}

	s.products = next
	return true, nil
}

// AcceptCommission moves a pending request to accepted. Accepted and
// rejected are terminal: resolving an already-resolved request is refused
// here rather than relying on the render layer disabling its controls.
func (s *ArtistSession) AcceptCommission(commissionID int) (models.CommissionRequest, error) {
	return s.resolveCommission(commissionID, models.CommissionStatusAccepted)
}

// DeclineCommission moves a pending request to rejected, under the same
// terminal-state guard as AcceptCommission.
func (s *ArtistSession) DeclineCommission(commissionID int) (models.CommissionRequest, error) {
	return s.resolveCommission(commissionID, models.CommissionStatusRejected)
}

func (s *ArtistSession) resolveCommission(commissionID int, status models.CommissionStatusType) (models.CommissionRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.commissions {
		if existing.ID != commissionID {
			continue
		}

		if existing.Status.Terminal() {
			return existing, ErrCommissionResolved
		}

		updated := existing
		updated.Status = status

		next := slices.Clone(s.commissions)
		next[i] = updated
		s.commissions = next

		if s.selectedCommission != nil && s.selectedCommission.ID == commissionID {
			selected := updated
			s.selectedCommission = &selected
		}

		s.log.Info("commission resolved locally",
			zap.Int("commission_id", commissionID),
			zap.String("status", string(status)))
		return updated, nil
	}

	return models.CommissionRequest{}, ErrCommissionNotFound
}

// SelectCommission opens the commission detail panel.
func (s *ArtistSession) SelectCommission(commissionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, commission := range s.commissions {
		if commission.ID == commissionID {
			selected := commission
			s.selectedCommission = &selected
			s.showCommission = true
			return nil
		}
	}
	return ErrCommissionNotFound
}

func (s *ArtistSession) CloseCommission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCommission = nil
	s.showCommission = false
}

// EditProduct loads a copy of the product into the edit form.
func (s *ArtistSession) EditProduct(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == productID {
			editing := p
			s.editingProduct = &editing
			s.showEditor = true
			return nil
		}
	}
	return ErrProductNotFound
}

func (s *ArtistSession) CloseEditor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingProduct = nil
	s.showEditor = false
}

func (s *ArtistSession) SetShowProfile(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showProfile = show
}
