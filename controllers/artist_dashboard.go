package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"artwala-io/gateway/helper"
	"artwala-io/gateway/models"
	"artwala-io/gateway/state"
)

// MountArtistDashboard creates an artist session and performs the initial
// concurrent resource load.
// POST /api/dashboard/artist
func MountArtistDashboard(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, session := registry.OpenArtist(c.Request.Context())
		helper.HandleSuccess(c, http.StatusCreated, "Artist dashboard mounted", gin.H{
			"session_id": sid,
			"view":       session.View(),
		})
	}
}

// GET /api/dashboard/artist/:sid
func GetArtistDashboard(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := artistSession(c, registry)
		if !ok {
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "Artist dashboard", session.View())
	}
}

// CreateProduct authors a new product into the local collection. Required
// fields are enforced before the mutation engine is reached.
// POST /api/dashboard/artist/:sid/products
func CreateProduct(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := artistSession(c, registry)
		if !ok {
			return
		}

		var form models.ProductForm
		if err := c.ShouldBindJSON(&form); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid product payload")
			return
		}

		product, err := session.CreateProduct(form)
		if err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusCreated, "Product added successfully!", product)
	}
}

// PUT /api/dashboard/artist/:sid/products/:productId
func UpdateProduct(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := artistSession(c, registry)
		if !ok {
			return
		}
		productID, ok := pathID(c, "productId")
		if !ok {
			return
		}

		var patch models.ProductPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid product payload")
			return
		}

		product, err := session.UpdateProduct(productID, patch)
		if err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "Product updated successfully!", product)
	}
}

// DeleteProduct removes a product, gated on the caller's confirmation
// decision; a declined confirmation reports a cancelled outcome and leaves
// the collection untouched.
// DELETE /api/dashboard/artist/:sid/products/:productId?confirmed=true
func DeleteProduct(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := artistSession(c, registry)
		if !ok {
			return
		}
		productID, ok := pathID(c, "productId")
		if !ok {
			return
		}

		confirmed := c.Query("confirmed") == "true"
		deleted, err := session.DeleteProduct(productID, confirmed)
		if err != nil {
			handleMutationError(c, err)
			return
		}
		if !deleted {
			helper.HandleSuccess(c, http.StatusOK, "Deletion cancelled", nil)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "Product deleted successfully!", nil)
	}
}

// POST /api/dashboard/artist/:sid/commissions/:commissionId/accept
func AcceptCommission(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := artistSession(c, registry)
		if !ok {
			return
		}
		commissionID, ok := pathID(c, "commissionId")
		if !ok {
			return
		}

		commission, err := session.AcceptCommission(commissionID)
		if err != nil {
			handleMutationError(c, err)
			return
		}
		message := fmt.Sprintf("Commission '%s' accepted! You will be contacted for next steps.", commission.Title)
		helper.HandleSuccess(c, http.StatusOK, message, commission)
	}
}

// POST /api/dashboard/artist/:sid/commissions/:commissionId/decline
func DeclineCommission(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := artistSession(c, registry)
		if !ok {
			return
		}
		commissionID, ok := pathID(c, "commissionId")
		if !ok {
			return
		}

		commission, err := session.DeclineCommission(commissionID)
		if err != nil {
			handleMutationError(c, err)
			return
		}
		message := fmt.Sprintf("Commission '%s' declined.", commission.Title)
		helper.HandleSuccess(c, http.StatusOK, message, commission)
	}
}

// PUT /api/dashboard/artist/:sid/selected-commission/:commissionId
func SelectCommission(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := artistSession(c, registry)
		if !ok {
			return
		}
		commissionID, ok := pathID(c, "commissionId")
		if !ok {
			return
		}

		if err := session.SelectCommission(commissionID); err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "Commission details opened", session.View().SelectedCommission)
	}
}

// DELETE /api/dashboard/artist/:sid/selected-commission
func CloseCommissionDetails(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := artistSession(c, registry)
		if !ok {
			return
		}
		session.CloseCommission()
		helper.HandleSuccess(c, http.StatusOK, "Commission details closed", nil)
	}
}

// OpenProductEditor loads a product copy into the edit form.
// PUT /api/dashboard/artist/:sid/editor/:productId
func OpenProductEditor(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := artistSession(c, registry)
		if !ok {
			return
		}
		productID, ok := pathID(c, "productId")
		if !ok {
			return
		}

		if err := session.EditProduct(productID); err != nil {
			handleMutationError(c, err)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "Product editor opened", session.View().EditingProduct)
	}
}

// DELETE /api/dashboard/artist/:sid/editor
func CloseProductEditor(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := artistSession(c, registry)
		if !ok {
			return
		}
		session.CloseEditor()
		helper.HandleSuccess(c, http.StatusOK, "Product editor closed", nil)
	}
}

// ToggleArtistProfile shows or hides the artist's own profile panel.
// PUT /api/dashboard/artist/:sid/panels/profile
func ToggleArtistProfile(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := artistSession(c, registry)
		if !ok {
			return
		}

		var toggle panelToggle
		if err := c.ShouldBindJSON(&toggle); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "show flag is required")
			return
		}

		session.SetShowProfile(toggle.Show)
		helper.HandleSuccess(c, http.StatusOK, "Panel updated", nil)
	}
}
