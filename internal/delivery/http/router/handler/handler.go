// Package handler contains the HTTP request handlers.
package handler

import (
	"net/http"

	"pantry/internal/delivery/http/response"
	"pantry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}

// ownerIDParam parses the owner id path parameter.
func ownerIDParam(c echo.Context) (uuid.UUID, error) {
	ownerID, err := uuid.Parse(c.Param("owner_id"))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	return ownerID, nil
}

// identityParam parses the identity query parameter, defaulting to guest.
func identityParam(c echo.Context) (entity.IdentityKind, error) {
	switch identity := c.QueryParam("identity"); identity {
	case "", string(entity.IdentityGuest):
		return entity.IdentityGuest, nil
	case string(entity.IdentityMember):
		return entity.IdentityMember, nil
	default:
		return "", response.BadRequest(c, "INVALID_IDENTITY", "Identity must be guest or member")
	}
}
