package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"shareit/internal/api"
	"shareit/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Gateway проверяет форму входящих запросов и пересылает их серверу
// как есть, включая заголовок с идентификатором пользователя.
type Gateway struct {
	cfg      config.GatewayConfig
	client   *http.Client
	logger   *zerolog.Logger
	server   *http.Server
	limiters sync.Map // map[string]*rate.Limiter
}

func New(cfg config.GatewayConfig, logger *zerolog.Logger) *Gateway {
	g := &Gateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), g.accessLog(), g.rateLimit())

	userRoutes := engine.Group("/users")
	{
		userRoutes.GET("", g.proxy)
		userRoutes.GET("/:id", g.pathIDProxy)
		userRoutes.POST("", g.createUser)
		userRoutes.PATCH("/:id", g.updateUser)
		userRoutes.DELETE("/:id", g.pathIDProxy)
	}

	itemRoutes := engine.Group("/items", identity())
	{
		itemRoutes.GET("", g.pagedProxy)
		itemRoutes.GET("/search", g.searchItems)
		itemRoutes.GET("/:id", g.pathIDProxy)
		itemRoutes.POST("", g.createItem)
		itemRoutes.PATCH("/:id", g.updateItem)
		itemRoutes.POST("/:id/comment", g.createComment)
	}

	bookingRoutes := engine.Group("/bookings", identity())
	{
		bookingRoutes.POST("", g.createBooking)
		bookingRoutes.GET("/owner", g.pagedProxy)
		bookingRoutes.GET("/:id", g.pathIDProxy)
		bookingRoutes.GET("", g.pagedProxy)
		bookingRoutes.PATCH("/:id", g.approveBooking)
	}

	requestRoutes := engine.Group("/requests", identity())
	{
		requestRoutes.POST("", g.createRequest)
		requestRoutes.GET("", g.proxy)
		requestRoutes.GET("/all", g.pagedProxy)
		requestRoutes.GET("/:id", g.pathIDProxy)
	}

	g.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	return g
}

// Handler возвращает корневой http.Handler, используется в тестах.
func (g *Gateway) Handler() http.Handler {
	return g.server.Handler
}

func (g *Gateway) Start() error {
	g.logger.Info().Str("addr", g.server.Addr).Str("server_url", g.cfg.ServerURL).Msg("gateway listening")
	if err := g.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (g *Gateway) Shutdown(ctx context.Context) error {
	return g.server.Shutdown(ctx)
}

// proxy пересылает запрос без изменения тела.
func (g *Gateway) proxy(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не удалось прочитать тело запроса"})
		return
	}
	g.forward(c, body)
}

// forwardJSON пересылает уже проверенное тело, сериализовав его заново.
func (g *Gateway) forwardJSON(c *gin.Context, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	g.forward(c, body)
}

func (g *Gateway) forward(c *gin.Context, body []byte) {
	target := g.cfg.ServerURL + c.Request.URL.Path
	if q := c.Request.URL.RawQuery; q != "" {
		target += "?" + q
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	for _, header := range []string{api.HeaderUserID, "X-Request-Id"} {
		if v := c.GetHeader(header); v != "" {
			req.Header.Set(header, v)
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error().Err(err).Str("target", target).Msg("server unreachable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Сервис временно недоступен"})
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Некорректный ответ сервиса"})
		return
	}
	c.Data(resp.StatusCode, resp.Header.Get("Content-Type"), respBody)
}

// rateLimit ограничивает частоту запросов на клиента. Ключ — значение
// заголовка пользователя, иначе адрес клиента.
func (g *Gateway) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if g.cfg.RateLimit.RPS <= 0 {
			c.Next()
			return
		}
		if !g.getLimiter(g.clientKey(c)).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Превышен лимит запросов"})
			return
		}
		c.Next()
	}
}

func (g *Gateway) clientKey(c *gin.Context) string {
	if id := c.GetHeader(api.HeaderUserID); id != "" {
		return id
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return "unknown"
}

func (g *Gateway) getLimiter(key string) *rate.Limiter {
	if v, ok := g.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}

	burst := g.cfg.RateLimit.Burst
	if burst <= 0 {
		burst = 5
	}

	lim := rate.NewLimiter(rate.Limit(g.cfg.RateLimit.RPS), burst)
	actual, loaded := g.limiters.LoadOrStore(key, lim)
	if loaded {
		return actual.(*rate.Limiter)
	}
	return lim
}

func (g *Gateway) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		g.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("gateway request")
	}
}
