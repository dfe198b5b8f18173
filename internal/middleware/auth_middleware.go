package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Iamvlnmurthy/pepl/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// EmployeeIdentity is the internal mapping of an external identity-provider
// user onto an employee row.
type EmployeeIdentity struct {
	EmployeeID string
	CompanyID  string
	RoleID     string
	Status     string
}

// IdentityResolver maps a Clerk user id to the employee it belongs to.
// The employee service implements this.
type IdentityResolver interface {
	ResolveByClerkID(ctx context.Context, clerkID string) (EmployeeIdentity, error)
}

// AuthMiddleware verifies a Clerk session token (RS256, public key from
// CLERK_JWT_PUBLIC_KEY in PEM form) and resolves the caller's employee and
// company into the request context. Session issuance itself stays on Clerk's
// side; we only verify.
func AuthMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			// Clerk's browser SDK sends the session as a cookie.
			if cookie, err := c.Cookie("__session"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(os.Getenv("CLERK_JWT_PUBLIC_KEY")))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token verification key unavailable", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return publicKey, nil
		})

		if err != nil || !token.Valid {
			code := "INVALID_TOKEN"
			message := "Invalid or expired token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				code = "TOKEN_EXPIRED"
				message = "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, code, message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		clerkID, ok := claims["sub"].(string)
		if !ok || clerkID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Subject not found in token", nil)
			c.Abort()
			return
		}

		identity, err := resolver.ResolveByClerkID(c.Request.Context(), clerkID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "No employee mapped to this identity", nil)
			c.Abort()
			return
		}
		if identity.Status == "terminated" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Employee is terminated", nil)
			c.Abort()
			return
		}

		c.Set("clerk_user_id", clerkID)
		c.Set("employee_id", identity.EmployeeID)
		c.Set("company_id", identity.CompanyID)
		c.Set("role_id", identity.RoleID)

		c.Next()
	}
}
