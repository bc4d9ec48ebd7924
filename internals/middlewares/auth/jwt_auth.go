package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	LocUserID = "user_id"
	LocRole   = "role"
	LocBranch = "branch_id"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals("jwt_claims", claims)

		if s := strClaim(claims, "sub"); s != "" {
			c.Locals(LocUserID, s)
		} else if s := strClaim(claims, "user_id"); s != "" {
			c.Locals(LocUserID, s)
		}
		if s := strClaim(claims, "role"); s != "" {
			c.Locals(LocRole, s)
		}
		if s := strClaim(claims, "branch_id"); s != "" {
			c.Locals(LocBranch, s)
		}

		return c.Next()
	}
}

// RequireRoles: guard sederhana berbasis claim "role"
func RequireRoles(roles ...string) fiber.Handler {
	return RequireRolesWithMessage("Role tidak diizinkan mengakses fitur ini", roles...)
}

// RequireRolesWithMessage: sama, dengan pesan 403 kustom per fitur
// (lihat template di constants.RoleErrorStaff / RoleErrorAdmin)
func RequireRolesWithMessage(message string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		role = strings.ToLower(strings.TrimSpace(role))
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}

// util kecil untuk ambil string claim
func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
