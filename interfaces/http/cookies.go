package http

import (
	"net/http"
	"time"

	"vidtube/domain/model"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieConfig controls the session cookies. Both are always HttpOnly.
type CookieConfig struct {
	Secure     bool
	Domain     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (cfg CookieConfig) set(c *gin.Context, pair model.TokenPair) {
	cfg.write(c, AccessTokenCookie, pair.AccessToken, int(cfg.AccessTTL.Seconds()))
	cfg.write(c, RefreshTokenCookie, pair.RefreshToken, int(cfg.RefreshTTL.Seconds()))
}

func (cfg CookieConfig) clear(c *gin.Context) {
	cfg.write(c, AccessTokenCookie, "", -1)
	cfg.write(c, RefreshTokenCookie, "", -1)
}

func (cfg CookieConfig) write(c *gin.Context, name, value string, maxAge int) {
	if cfg.Secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func tokenPair(access, refresh string) model.TokenPair {
	return model.TokenPair{AccessToken: access, RefreshToken: refresh}
}
