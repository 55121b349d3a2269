package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"swishview/domain/dto"
	"swishview/domain/model"
	"swishview/infrastructure/configuration"
)

const sessionKey = "session"

// Auth validates the bearer token and stores the caller Session on the gin
// context under "session". Every protected route goes through here.
func Auth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var res dto.Res
		res.ResponseCode = "401"
		res.ResponseMessage = "Unauthorized"

		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		auth := strings.Split(authorization, "Bearer ")
		if len(auth) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		userClaims, token, err := getClaim(auth[1], configuration.C.App.SecretKey)
		if err != nil || !token.Valid {
			res.ResponseMessage = describeTokenError(err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		sess := model.Session{
			UserID: userClaims.Issuer,
			Email:  userClaims.Email,
			Role:   model.UserRole(userClaims.Role),
		}
		ctx.Set(sessionKey, sess)
		ctx.Set("user_id", sess.UserID)
		ctx.Next()
	}
}

// AdminOnly must be chained after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess := GetSession(ctx)
		if !sess.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.Res{
				ResponseCode:    "403",
				ResponseMessage: "Forbidden",
			})
			return
		}
		ctx.Next()
	}
}

// GetSession returns the Session set by Auth; the zero Session when absent.
func GetSession(ctx *gin.Context) model.Session {
	if v, ok := ctx.Get(sessionKey); ok {
		if sess, ok := v.(model.Session); ok {
			return sess
		}
	}
	return model.Session{}
}

func describeTokenError(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "Timing is everything"
		}
		return fmt.Sprintf("Couldn't handle this token:%v", err)
	}
	return "Unauthorized"
}

func getClaim(tokenString, secretKey string) (model.UserClaims, *jwt.Token, error) {
	var userClaims model.UserClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&userClaims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
	)
	return userClaims, token, err
}
