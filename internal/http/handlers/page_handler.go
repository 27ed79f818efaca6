// README: Server-rendered pages: home, tips, inventory, booking and confirmation.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpmiddleware "mftnb/internal/http/middleware"
	"mftnb/internal/modules/booking"
	"mftnb/internal/modules/tips"
)

type PageHandler struct {
	booking *booking.Service
	tips    *tips.Service
}

func NewPageHandler(bookingSvc *booking.Service, tipsSvc *tips.Service) *PageHandler {
	return &PageHandler{booking: bookingSvc, tips: tipsSvc}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Home"})
}

func (h *PageHandler) Tips(c *gin.Context) {
	c.HTML(http.StatusOK, "tips.html", gin.H{
		"Title": "Moving Tips",
		"Tips":  h.tips.List(c.Request.Context()),
	})
}

func (h *PageHandler) Inventory(c *gin.Context) {
	sess := httpmiddleware.CurrentSession(c)
	c.HTML(http.StatusOK, "inventory.html", gin.H{
		"Title":         "Inventory",
		"InventoryData": sess.InventoryData,
	})
}

func (h *PageHandler) SaveInventory(c *gin.Context) {
	sess := httpmiddleware.CurrentSession(c)
	if err := h.booking.SaveInventory(c.Request.Context(), sess, c.PostForm("inventory_data")); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/booking")
}

func (h *PageHandler) BookingForm(c *gin.Context) {
	sess := httpmiddleware.CurrentSession(c)
	flashes, err := h.booking.PopFlash(c.Request.Context(), sess)
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "booking.html", gin.H{
		"Title":   "Book Your Move",
		"Flashes": flashes,
		"Contact": sess.Contact,
		"Quote":   sess.Quote,
	})
}

func (h *PageHandler) SubmitBooking(c *gin.Context) {
	sess := httpmiddleware.CurrentSession(c)
	_, err := h.booking.SubmitBooking(c.Request.Context(), sess, bookingForm(c))
	switch {
	case errors.Is(err, booking.ErrInvalidInput):
		c.Redirect(http.StatusFound, "/booking")
	case err != nil:
		renderError(c, err)
	default:
		c.Redirect(http.StatusFound, "/confirmation")
	}
}

func (h *PageHandler) Confirmation(c *gin.Context) {
	sess := httpmiddleware.CurrentSession(c)
	conf, err := h.booking.Confirm(c.Request.Context(), sess)
	switch {
	case errors.Is(err, booking.ErrInvalidState):
		c.Redirect(http.StatusFound, "/booking")
		return
	case err != nil:
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "confirmation.html", gin.H{
		"Title":        "Confirmation",
		"Confirmation": conf,
	})
}

func (h *PageHandler) StartOver(c *gin.Context) {
	sess := httpmiddleware.CurrentSession(c)
	if _, err := h.booking.Reset(c.Request.Context(), sess); err != nil {
		renderError(c, err)
		return
	}
	httpmiddleware.EndSession(c)
	c.Redirect(http.StatusFound, "/")
}

// bookingForm reads the submitted fields. Numeric fields missing from the
// submission stay nil so the booking service applies its defaults.
func bookingForm(c *gin.Context) booking.Form {
	optional := func(key string) *string {
		if v, ok := c.GetPostForm(key); ok {
			return &v
		}
		return nil
	}
	return booking.Form{
		Name:              c.PostForm("name"),
		Email:             c.PostForm("email"),
		Phone:             c.PostForm("phone"),
		MoveDate:          c.PostForm("move_date"),
		Origin:            c.PostForm("origin"),
		Destination:       c.PostForm("destination"),
		Notes:             c.PostForm("notes"),
		Bedrooms:          optional("bedrooms"),
		StairsOrigin:      optional("stairs_origin"),
		StairsDestination: optional("stairs_destination"),
		HeavyItems:        optional("heavy_items"),
		DistanceKm:        optional("distance_km"),
	}
}
