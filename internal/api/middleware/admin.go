package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/rifa-online/rifa-api/internal/api/handler/v1/response"
)

type AdminService interface {
	IsAdmin(senha string) bool
}

// AdminGate guards administrative routes with the shared admin secret,
// supplied either in the Authorization header or as a "senha" body field.
type AdminGate struct {
	svc AdminService
}

func NewAdminGate(svc AdminService) *AdminGate {
	return &AdminGate{
		svc: svc,
	}
}

func (g *AdminGate) Require() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if g.svc.IsAdmin(ctx.GetHeader("Authorization")) {
			ctx.Next()

			return
		}

		if g.svc.IsAdmin(senhaFromBody(ctx)) {
			ctx.Next()

			return
		}

		response.RenderErr(ctx, response.ErrUnauthorized())
		ctx.Abort()
	}
}

// senhaFromBody peeks the senha field from the JSON body, restoring the body
// so the handler can still bind it.
func senhaFromBody(ctx *gin.Context) string {
	if ctx.Request.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return ""
	}
	ctx.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

	var body struct {
		Senha string `json:"senha"`
	}
	if err = json.Unmarshal(raw, &body); err != nil {
		return ""
	}

	return body.Senha
}
