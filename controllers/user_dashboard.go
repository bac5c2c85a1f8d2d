package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"artwala-io/gateway/helper"
	"artwala-io/gateway/state"
)

// MountUserDashboard creates a buyer session and performs the initial
// concurrent resource load.
// POST /api/dashboard/user
func MountUserDashboard(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, session := registry.OpenUser(c.Request.Context())
		helper.HandleSuccess(c, http.StatusCreated, "User dashboard mounted", gin.H{
			"session_id": sid,
			"view":       session.View(),
		})
	}
}

// GetUserDashboard renders the current view state.
// GET /api/dashboard/user/:sid
func GetUserDashboard(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "User dashboard", session.View())
	}
}

type productRef struct {
	ProductID int `json:"product_id" binding:"required"`
}

// AddToCart puts a catalog product in the session cart.
// POST /api/dashboard/user/:sid/cart
func AddToCart(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}

		var ref productRef
		if err := c.ShouldBindJSON(&ref); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "product_id is required")
			return
		}

		product, found := session.ProductByID(ref.ProductID)
		if !found {
			helper.HandleError(c, http.StatusNotFound, state.ErrProductNotFound, "Product not found")
			return
		}

		if err := session.AddToCart(product); err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, fmt.Sprintf("%s added to cart!", product.Title), gin.H{
			"cart_total": session.CartTotal(),
		})
	}
}

// RemoveFromCart drops a cart entry; absent ids are a quiet no-op.
// DELETE /api/dashboard/user/:sid/cart/:productId
func RemoveFromCart(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		productID, ok := pathID(c, "productId")
		if !ok {
			return
		}

		session.RemoveFromCart(productID)
		helper.HandleSuccess(c, http.StatusOK, "Item removed from cart", gin.H{
			"cart_total": session.CartTotal(),
		})
	}
}

// Checkout is the acknowledged placeholder flow; it calls no backend.
// POST /api/dashboard/user/:sid/cart/checkout
func Checkout(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		helper.HandleSuccess(c, http.StatusOK, session.Checkout(), nil)
	}
}

// AddToWishlist saves a catalog product to the session wishlist.
// POST /api/dashboard/user/:sid/wishlist
func AddToWishlist(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}

		var ref productRef
		if err := c.ShouldBindJSON(&ref); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "product_id is required")
			return
		}

		product, found := session.ProductByID(ref.ProductID)
		if !found {
			helper.HandleError(c, http.StatusNotFound, state.ErrProductNotFound, "Product not found")
			return
		}

		if err := session.AddToWishlist(product); err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, fmt.Sprintf("%s added to wishlist!", product.Title), nil)
	}
}

// DELETE /api/dashboard/user/:sid/wishlist/:productId
func RemoveFromWishlist(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		productID, ok := pathID(c, "productId")
		if !ok {
			return
		}

		session.RemoveFromWishlist(productID)
		helper.HandleSuccess(c, http.StatusOK, "Item removed from wishlist", nil)
	}
}

// MoveToCart shifts a wishlist entry into the cart.
// POST /api/dashboard/user/:sid/wishlist/:productId/move-to-cart
func MoveToCart(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		productID, ok := pathID(c, "productId")
		if !ok {
			return
		}

		if err := session.MoveToCart(productID); err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "Item moved to cart", gin.H{
			"cart_total": session.CartTotal(),
		})
	}
}

// POST /api/dashboard/user/:sid/following/:artistId
func FollowArtist(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		artistID, ok := pathID(c, "artistId")
		if !ok {
			return
		}

		if err := session.FollowArtist(artistID); err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "You are now following this artist!", nil)
	}
}

// DELETE /api/dashboard/user/:sid/following/:artistId
func UnfollowArtist(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		artistID, ok := pathID(c, "artistId")
		if !ok {
			return
		}

		session.UnfollowArtist(artistID)
		helper.HandleSuccess(c, http.StatusOK, "You have unfollowed this artist.", nil)
	}
}

// POST /api/dashboard/user/:sid/chapters/:chapterId
func JoinChapter(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		chapterID, ok := pathID(c, "chapterId")
		if !ok {
			return
		}

		if err := session.JoinChapter(chapterID); err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "You have joined this chapter!", nil)
	}
}

// DELETE /api/dashboard/user/:sid/chapters/:chapterId
func LeaveChapter(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		chapterID, ok := pathID(c, "chapterId")
		if !ok {
			return
		}

		session.LeaveChapter(chapterID)
		helper.HandleSuccess(c, http.StatusOK, "You have left this chapter.", nil)
	}
}

// POST /api/dashboard/user/:sid/forums/:forumId
func JoinForum(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		forumID, ok := pathID(c, "forumId")
		if !ok {
			return
		}

		if err := session.JoinForum(forumID); err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "You have joined this forum!", nil)
	}
}

// DELETE /api/dashboard/user/:sid/forums/:forumId
func LeaveForum(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		forumID, ok := pathID(c, "forumId")
		if !ok {
			return
		}

		session.LeaveForum(forumID)
		helper.HandleSuccess(c, http.StatusOK, "You have left this forum.", nil)
	}
}

// PUT /api/dashboard/user/:sid/selected-artist/:artistId
func SelectArtist(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		artistID, ok := pathID(c, "artistId")
		if !ok {
			return
		}

		if err := session.SelectArtist(artistID); err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "Artist profile opened", session.View().SelectedArtist)
	}
}

// DELETE /api/dashboard/user/:sid/selected-artist
func CloseArtistProfile(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		session.CloseArtist()
		helper.HandleSuccess(c, http.StatusOK, "Artist profile closed", nil)
	}
}

// PUT /api/dashboard/user/:sid/selected-forum/:forumId
func SelectForum(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		forumID, ok := pathID(c, "forumId")
		if !ok {
			return
		}

		if err := session.SelectForum(forumID); err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "Forum discussion opened", session.View().SelectedForum)
	}
}

// DELETE /api/dashboard/user/:sid/selected-forum
func CloseForumDiscussion(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		session.CloseForum()
		helper.HandleSuccess(c, http.StatusOK, "Forum discussion closed", nil)
	}
}

type panelToggle struct {
	Show bool `json:"show"`
}

// TogglePanel opens or closes the cart/wishlist panels.
// PUT /api/dashboard/user/:sid/panels/:panel
func TogglePanel(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}

		var toggle panelToggle
		if err := c.ShouldBindJSON(&toggle); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "show flag is required")
			return
		}

		switch c.Param("panel") {
		case "cart":
			session.SetShowCart(toggle.Show)
		case "wishlist":
			session.SetShowWishlist(toggle.Show)
		default:
			helper.HandleError(c, http.StatusNotFound, nil, "Unknown panel")
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "Panel updated", nil)
	}
}

// OpenUserProfile synthesizes and opens the session profile summary.
// POST /api/dashboard/user/:sid/profile
func OpenUserProfile(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "User profile", session.OpenProfile())
	}
}

// DELETE /api/dashboard/user/:sid/profile
func CloseUserProfile(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := userSession(c, registry)
		if !ok {
			return
		}
		session.CloseProfile()
		helper.HandleSuccess(c, http.StatusOK, "User profile closed", nil)
	}
}
