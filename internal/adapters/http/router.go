package http

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"matchlobby/internal/app"
	"matchlobby/internal/config"
)

const sessionKey = "sid"

// SessionMiddleware resolves the caller's session id from the cookie
// session, issuing a fresh one on first contact. Handlers read the id
// from the gin context and never touch cookies themselves.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		sid, _ := s.Get(sessionKey).(string)
		if sid == "" {
			sid = uuid.NewString()
			s.Set(sessionKey, sid)
			if err := s.Save(); err != nil {
				log.Error().Err(err).Str("module", "adapters.http").Msg("failed to save session")
			}
		}
		c.Set("session_id", sid)
		c.Next()
	}
}

func SetupRouter(cfg *config.Config, alloc *app.Allocator) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("SESSION", store))
	r.Use(SessionMiddleware())

	h := &handlers{alloc: alloc}
	r.POST("/join", h.join)
	r.POST("/join/:roomId", h.joinRoom)
	r.POST("/reset", h.reset)

	api := r.Group("/api")
	api.GET("/rooms", h.rooms)

	log.Info().Str("module", "adapters.http").Msg("router setup")
	return r
}
