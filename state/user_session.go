package state

import (
	"fmt"
	"slices"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"artwala-io/gateway/models"
)

// UserSession is the buyer dashboard's view state: the fetched catalog and
// community collections plus the session-local cart, wishlist and membership
// sets. It lives from mount to teardown and is never persisted.
type UserSession struct {
	mu  sync.Mutex
	log *zap.Logger

	products []models.Product
	artists  []models.ArtistProfile
	forums   []models.Forum
	chapters []models.Chapter

	cart            []models.CartItem
	wishlist        []models.Product
	followedArtists []int
	joinedChapters  []int
	joinedForums    []int

	selectedArtist *models.ArtistProfile
	selectedForum  *models.Forum
	selectedUser   *models.UserProfileSummary
	showCart       bool
	showWishlist   bool
	showProfile    bool

	demoMode bool
}

func newUserSession(log *zap.Logger) *UserSession {
	return &UserSession{
		log:             log,
		products:        []models.Product{},
		artists:         []models.ArtistProfile{},
		forums:          []models.Forum{},
		chapters:        []models.Chapter{},
		cart:            []models.CartItem{},
		wishlist:        []models.Product{},
		followedArtists: []int{},
		joinedChapters:  []int{},
		joinedForums:    []int{},
	}
}

// UserView is the rendered snapshot of a user session.
type UserView struct {
	Products []models.Product       `json:"products"`
	Artists  []models.ArtistProfile `json:"artists"`
	Forums   []models.Forum         `json:"forums"`
	Chapters []models.Chapter       `json:"chapters"`

	Cart            []models.CartItem `json:"cart"`
	CartTotal       string            `json:"cart_total"`
	Wishlist        []models.Product  `json:"wishlist"`
	FollowedArtists []int             `json:"followed_artists"`
	JoinedChapters  []int             `json:"joined_chapters"`
	JoinedForums    []int             `json:"joined_forums"`

	SelectedArtist *models.ArtistProfile      `json:"selected_artist,omitempty"`
	SelectedForum  *models.Forum              `json:"selected_forum,omitempty"`
	SelectedUser   *models.UserProfileSummary `json:"selected_user,omitempty"`
	ShowCart       bool                       `json:"show_cart"`
	ShowWishlist   bool                       `json:"show_wishlist"`
	ShowProfile    bool                       `json:"show_profile"`

	DemoMode bool `json:"demo_mode"`
}

// View renders the session as a value snapshot for the dashboard response.
func (s *UserSession) View() UserView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return UserView{
		Products:        s.products,
		Artists:         s.artists,
		Forums:          s.forums,
		Chapters:        s.chapters,
		Cart:            s.cart,
		CartTotal:       s.cartTotalLocked(),
		Wishlist:        s.wishlist,
		FollowedArtists: s.followedArtists,
		JoinedChapters:  s.joinedChapters,
		JoinedForums:    s.joinedForums,
		SelectedArtist:  s.selectedArtist,
		SelectedForum:   s.selectedForum,
		SelectedUser:    s.selectedUser,
		ShowCart:        s.showCart,
		ShowWishlist:    s.showWishlist,
		ShowProfile:     s.showProfile,
		DemoMode:        s.demoMode,
	}
}

// setCollections replaces every fetched collection wholesale. Nil inputs are
// normalized so renderers can always iterate.
func (s *UserSession) setCollections(products []models.Product, artists []models.ArtistProfile, forums []models.Forum, chapters []models.Chapter, demoMode bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if products == nil {
		products = []models.Product{}
	}
	if artists == nil {
		artists = []models.ArtistProfile{}
	}
	if forums == nil {
		forums = []models.Forum{}
	}
	if chapters == nil {
		chapters = []models.Chapter{}
	}

	s.products = products
	s.artists = artists
	s.forums = forums
	s.chapters = chapters
	s.demoMode = demoMode
}

// ProductByID looks a product up in the fetched catalog.
func (s *UserSession) ProductByID(id int) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AddToCart appends the product with quantity one. A product already in the
// cart is rejected with a user-visible notice and the cart is left unchanged.
func (s *UserSession) AddToCart(product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.cart {
		if item.ID == product.ID {
			return &NoticeError{Message: fmt.Sprintf("%s is already in your cart!", product.Title)}
		}
	}

	next := append(slices.Clone(s.cart), models.CartItem{Product: product, Quantity: 1})
	s.cart = next
	s.log.Debug("cart add", zap.Int("product_id", product.ID))
	return nil
}

// RemoveFromCart drops the matching entry; removing an absent id is a no-op.
func (s *UserSession) RemoveFromCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		if item.ID != productID {
			next = append(next, item)
		}
	}
	s.cart = next
}

// AddToWishlist appends the product, rejecting duplicates with a notice.
func (s *UserSession) AddToWishlist(product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.wishlist {
		if item.ID == product.ID {
			return &NoticeError{Message: fmt.Sprintf("%s is already in your wishlist!", product.Title)}
		}
	}

	s.wishlist = append(slices.Clone(s.wishlist), product)
	return nil
}

func (s *UserSession) RemoveFromWishlist(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Product, 0, len(s.wishlist))
	for _, item := range s.wishlist {
		if item.ID != productID {
			next = append(next, item)
		}
	}
	s.wishlist = next
}

// MoveToCart moves a wishlist entry into the cart. Mirroring the storefront
// behavior, the entry leaves the wishlist even when the cart already holds
// the product; in that case the duplicate notice is still reported.
func (s *UserSession) MoveToCart(productID int) error {
	s.mu.Lock()
	var product models.Product
	found := false
	for _, item := range s.wishlist {
		if item.ID == productID {
			product = item
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrProductNotFound
	}

	err := s.AddToCart(product)
	s.RemoveFromWishlist(productID)
	return err
}

// FollowArtist adds the id to the followed set; following twice is rejected
// with a notice and leaves a single occurrence.
func (s *UserSession) FollowArtist(artistID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.followedArtists, artistID) {
		return &NoticeError{Message: "You are already following this artist!"}
	}

	s.followedArtists = append(slices.Clone(s.followedArtists), artistID)
	return nil
}

func (s *UserSession) UnfollowArtist(artistID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.followedArtists = withoutID(s.followedArtists, artistID)
}

func (s *UserSession) JoinChapter(chapterID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.joinedChapters, chapterID) {
		return &NoticeError{Message: "You are already a member of this chapter!"}
	}

	s.joinedChapters = append(slices.Clone(s.joinedChapters), chapterID)
	return nil
}

func (s *UserSession) LeaveChapter(chapterID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.joinedChapters = withoutID(s.joinedChapters, chapterID)
}

func (s *UserSession) JoinForum(forumID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.joinedForums, forumID) {
		return &NoticeError{Message: "You are already a member of this forum!"}
	}

	s.joinedForums = append(slices.Clone(s.joinedForums), forumID)
	return nil
}

func (s *UserSession) LeaveForum(forumID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.joinedForums = withoutID(s.joinedForums, forumID)
}

func withoutID(ids []int, id int) []int {
	next := make([]int, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			next = append(next, existing)
		}
	}
	return next
}

// CartTotal sums the cart's decimal prices into a formatted amount.
func (s *UserSession) CartTotal() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotalLocked()
}

func (s *UserSession) cartTotalLocked() string {
	var total float64
	for _, item := range s.cart {
		price, err := strconv.ParseFloat(item.Price, 64)
		if err != nil {
			s.log.Warn("unparsable cart price",
				zap.Int("product_id", item.ID),
				zap.String("price", item.Price))
			continue
		}
		total += price
	}
	return fmt.Sprintf("%.2f", total)
}

// Checkout is an acknowledged placeholder: it closes the cart panel and
// returns the notice without touching the backend or the cart contents.
func (s *UserSession) Checkout() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.showCart = false
	return "Proceeding to checkout..."
}

// SelectArtist opens the artist profile panel for the given catalog artist.
func (s *UserSession) SelectArtist(artistID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, artist := range s.artists {
		if artist.ID == artistID {
			selected := artist
			s.selectedArtist = &selected
			return nil
		}
	}
	return ErrArtistNotFound
}

func (s *UserSession) CloseArtist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedArtist = nil
}

func (s *UserSession) SelectForum(forumID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, forum := range s.forums {
		if forum.ID == forumID {
			selected := forum
			s.selectedForum = &selected
			return nil
		}
	}
	return ErrForumNotFound
}

func (s *UserSession) CloseForum() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedForum = nil
}

func (s *UserSession) SetShowCart(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showCart = show
}

func (s *UserSession) SetShowWishlist(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showWishlist = show
}

// OpenProfile synthesizes the session user's profile summary from the first
// fetched artist and the session activity counters, then opens the panel.
func (s *UserSession) OpenProfile() models.UserProfileSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := "Demo User"
	if len(s.artists) > 0 {
		name = s.artists[0].DisplayName
	}

	summary := models.UserProfileSummary{
		ID:              1,
		Name:            name,
		Email:           "user@example.com",
		JoinedDate:      "2023-01-15",
		FavoritesCount:  len(s.wishlist),
		PurchasesCount:  5,
		JoinedChapters:  len(s.joinedChapters),
		FollowedArtists: len(s.followedArtists),
	}

	s.selectedUser = &summary
	s.showProfile = true
	return summary
}

func (s *UserSession) CloseProfile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedUser = nil
	s.showProfile = false
}
