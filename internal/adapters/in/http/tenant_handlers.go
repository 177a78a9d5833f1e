package http

import (
	"net/http"
	"time"

	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/application/usecases/queries"
	"kirim/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// InviteDriverRequest invites an email address to join the tenant's roster.
type InviteDriverRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// InviteDriverResponse carries the generated token for out-of-band delivery.
type InviteDriverResponse struct {
	InviteID  string `json:"inviteId"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// InviteDriver handles POST /api/v1/invites.
func (s *Server) InviteDriver(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	if !principal.IsTenantStaff() {
		return forbidden(ctx, "driver invites require tenant staff access")
	}

	var req InviteDriverRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewInviteDriverCommand(kernel.NewUUID(), *principal.TenantID, req.Email)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.inviteDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, InviteDriverResponse{
		InviteID:  result.InviteID.String(),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// ResendInvite handles POST /api/v1/invites/:inviteId/resend.
func (s *Server) ResendInvite(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	if !principal.IsTenantStaff() {
		return forbidden(ctx, "invite resends require tenant staff access")
	}

	inviteID, err := kernel.UUIDFromString(ctx.Param("inviteId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewResendInviteCommand(inviteID, *principal.TenantID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.resendInviteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyInviteResponse describes a still-redeemable invite to the landing
// page.
type VerifyInviteResponse struct {
	TenantName string `json:"tenantName"`
	Email      string `json:"email"`
	ExpiresAt  string `json:"expiresAt"`
}

// VerifyInvite handles GET /api/v1/invites/verify?token=...
func (s *Server) VerifyInvite(ctx echo.Context) error {
	query, err := queries.NewVerifyInviteQuery(ctx.QueryParam("token"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.verifyInviteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VerifyInviteResponse{
		TenantName: result.TenantName,
		Email:      result.Email,
		ExpiresAt:  result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// AcceptInviteRequest redeems an invite token on behalf of the
// authenticated user.
type AcceptInviteRequest struct {
	Token string `json:"token" validate:"required"`
	Name  string `json:"name" validate:"required"`
}

// AcceptInvite handles POST /api/v1/invites/accept. The invited email is
// taken from the caller's verified identity rather than the request body.
func (s *Server) AcceptInvite(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)

	var req AcceptInviteRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewAcceptInviteCommand(
		driverID, req.Token, principal.UserID, req.Name, principal.Email)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.acceptInviteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"driverId": driverID.String()})
}

// RemoveDriver handles DELETE /api/v1/drivers/:driverId.
func (s *Server) RemoveDriver(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	if !principal.IsTenantStaff() {
		return forbidden(ctx, "driver removal requires tenant staff access")
	}

	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveDriverCommand(driverID, *principal.TenantID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.removeDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
