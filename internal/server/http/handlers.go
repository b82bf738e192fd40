package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/waterbill/internal/api"
	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/services"
	"github.com/dmitrijs2005/waterbill/internal/server/views"
	"github.com/gin-gonic/gin"
)

type handler struct {
	svc *services.Services
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		abortWithError(c, fmt.Errorf("%w: malformed request body", common.ErrorValidation))
		return false
	}
	return true
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, api.PingResponse{Status: "OK"})
}

func (h *handler) register(c *gin.Context) {
	var req api.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.svc.Users.Register(c.Request.Context(), services.RegisterUser{
		Email:           req.Email,
		Password:        req.Password,
		Name:            req.Name,
		ApartmentNumber: req.ApartmentNumber,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.RegisterResponse{Message: "User registered successfully", User: views.User(res.User)})
}

func (h *handler) login(c *gin.Context) {
	var req api.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.svc.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.LoginResponse{Token: res.Token, User: views.User(res.User)})
}

func (h *handler) profile(c *gin.Context) {
	u, err := h.svc.Users.Profile(c.Request.Context(), scopeOf(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.User(u))
}

func (h *handler) updateProfile(c *gin.Context) {
	var req api.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.svc.Users.UpdateProfile(c.Request.Context(), scopeOf(c), views.ProfilePatch(&req))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.User(u))
}

func (h *handler) changePassword(c *gin.Context) {
	var req api.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := views.CheckPasswordConfirmation(&req); err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.svc.Users.ChangePassword(c.Request.Context(), scopeOf(c), req.CurrentPassword, req.NewPassword); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Password changed successfully"})
}

func (h *handler) deleteAccount(c *gin.Context) {
	if err := h.svc.Users.DeleteAccount(c.Request.Context(), scopeOf(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Account deleted successfully"})
}

func (h *handler) listReadings(c *gin.Context) {
	r, err := views.DateRange(&api.ListReadingsRequest{StartDate: c.Query("startDate"), EndDate: c.Query("endDate")})
	if err != nil {
		abortWithError(c, err)
		return
	}
	out, err := h.svc.Readings.List(c.Request.Context(), scopeOf(c), r)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.Readings(out))
}

func (h *handler) getReading(c *gin.Context) {
	rd, err := h.svc.Readings.Get(c.Request.Context(), c.Param("id"), scopeOf(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.Reading(rd))
}

func (h *handler) createReading(c *gin.Context) {
	var req api.CreateReadingRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := views.CreateReading(&req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	rd, err := h.svc.Readings.Create(c.Request.Context(), scopeOf(c), in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, views.Reading(rd))
}

func (h *handler) updateReading(c *gin.Context) {
	var req api.UpdateReadingRequest
	if !bindJSON(c, &req) {
		return
	}
	rd, err := h.svc.Readings.Update(c.Request.Context(), c.Param("id"), scopeOf(c), views.UpdateReading(&req))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.Reading(rd))
}

func (h *handler) deleteReading(c *gin.Context) {
	if err := h.svc.Readings.Delete(c.Request.Context(), c.Param("id"), scopeOf(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Reading deleted successfully"})
}

func (h *handler) unpaidBills(c *gin.Context) {
	res, err := h.svc.Bills.Unpaid(c.Request.Context(), scopeOf(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.Unpaid(res))
}

func (h *handler) setPaid(c *gin.Context, paid bool) {
	rd, err := h.svc.Bills.SetPaid(c.Request.Context(), scopeOf(c), c.Param("id"), paid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	msg := "Bill marked as unpaid"
	if paid {
		msg = "Bill marked as paid"
	}
	c.JSON(http.StatusOK, api.ReadingResponse{Message: msg, Reading: views.Reading(rd)})
}

func (h *handler) markPaid(c *gin.Context)   { h.setPaid(c, true) }
func (h *handler) markUnpaid(c *gin.Context) { h.setPaid(c, false) }

func (h *handler) sendReminder(c *gin.Context) {
	res, err := h.svc.Reminders.SendOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.Reminder(res))
}

func (h *handler) sendAllReminders(c *gin.Context) {
	res, err := h.svc.Reminders.SendAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.Batch(res))
}

// yearParam reads ?year=. Absent means the current year.
func yearParam(c *gin.Context) (*int, error) {
	raw := c.Query("year")
	if raw == "" {
		return nil, nil
	}
	y, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid year %q", common.ErrorValidation, raw)
	}
	return &y, nil
}

func (h *handler) annualReport(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := h.svc.Bills.AnnualReport(c.Request.Context(), scopeOf(c), year)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.AnnualReport(res))
}

func (h *handler) exportAnnualReport(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := h.svc.Bills.ExportAnnualReport(c.Request.Context(), scopeOf(c), year)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.Exported(res))
}
