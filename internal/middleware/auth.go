// Package middleware contains the HTTP auth gate.
//
// Token convention: only the `Bearer <token>` form of the Authorization
// header is accepted. A missing header yields 403, a malformed, tampered or
// expired token yields 401, and a token whose owner no longer resolves
// yields 404. The three verification failures share one external response;
// the distinction is logged only.
package middleware

import (
	"encoding/json"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/agendaescolar/backend/api/transport"
	"github.com/agendaescolar/backend/domain"
	"github.com/agendaescolar/backend/pkg/token"
	"github.com/agendaescolar/backend/repository"
)

const userIDHeader = "X-User-ID"

// BearerAuth verifies the bearer token, resolves the embedded owner against
// the user store and forwards the identity to downstream handlers.
func BearerAuth(tokens *token.Issuer, users repository.UserRepository, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			// never trust a client-supplied identity header
			ctx.Request.Header.Del(userIDHeader)

			header := string(ctx.Request.Header.Peek("Authorization"))
			if header == "" {
				reject(ctx, fasthttp.StatusForbidden, domain.ErrMissingToken.Message)
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				logger.Warn("authorization header without bearer prefix")
				reject(ctx, fasthttp.StatusUnauthorized, domain.ErrInvalidToken.Message)
				return
			}

			ownerID, err := tokens.Verify(raw)
			if err != nil {
				logger.Warn("token rejected", zap.Error(err))
				reject(ctx, fasthttp.StatusUnauthorized, domain.ErrInvalidToken.Message)
				return
			}

			user, err := users.GetByID(ctx, ownerID)
			if err != nil {
				logger.Warn("token owner not resolved", zap.String("owner_id", ownerID), zap.Error(err))
				reject(ctx, fasthttp.StatusNotFound, domain.ErrUserNotFound.Message)
				return
			}

			ctx.Request.Header.Set(userIDHeader, user.ID)
			next(ctx)
		}
	}
}

// UserID returns the identity attached by BearerAuth, or "" when the request
// did not pass through the gate.
func UserID(ctx *fasthttp.RequestCtx) string {
	return string(ctx.Request.Header.Peek(userIDHeader))
}

func reject(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(transport.NewError(message))
	ctx.SetBody(body)
}
