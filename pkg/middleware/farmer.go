package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	FarmerHeader = "X-Farmer-Id"
	FarmerCookie = "FARMER_ID"
	DevFarmerID  = "farmer-dev"
)

// Farmer resolves the caller's farmer id from the X-Farmer-Id header, the
// FARMER_ID cookie or ?uid= (which also sets the cookie), and stores it as
// "uid". When required is false a development id is used as a last resort;
// otherwise a missing id is rejected with 401.
func Farmer(required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := c.Request().Header.Get(FarmerHeader)
			if uid == "" {
				if ck, err := c.Cookie(FarmerCookie); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: FarmerCookie, Value: q, Path: "/"})
					uid = q
				}
			}
			if uid == "" {
				if required {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing farmer id"})
				}
				uid = DevFarmerID
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
