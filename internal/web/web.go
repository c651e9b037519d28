package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	authservice "github.com/goserg/volunteerhub/auth/service"
	"github.com/goserg/volunteerhub/auth/users"
	"github.com/goserg/volunteerhub/internal/config"
	"github.com/goserg/volunteerhub/internal/service"
	"github.com/goserg/volunteerhub/internal/web/webpath"
)

const userKey = "user"

type Server struct {
	auth    *authservice.Service
	service *service.Service
	app     *fiber.App
	cfg     config.Server
	limiter *ipLimiter
	log     *logrus.Entry
}

func New(l *logrus.Logger, svc *service.Service, cfg config.Server, authService *authservice.Service) *Server {
	server := Server{
		service: svc,
		auth:    authService,
		cfg:     cfg,
		log:     l.WithField("from", "web"),
	}
	if cfg.AuthRate > 0 {
		server.limiter = newIPLimiter(cfg.AuthRate, cfg.AuthBurst)
	}

	app := fiber.New(fiber.Config{
		AppName:               "volunteerhub",
		ErrorHandler:          server.handleError,
		DisableStartupMessage: !cfg.Debug,
	})
	app.Use(recover.New())
	app.Use(server.logRequest)
	app.Use(server.authenticate)

	app.Get(webpath.Health, server.handleHealth)

	app.Post(webpath.AuthRegister, server.throttle, server.handleRegister)
	app.Post(webpath.AuthLogin, server.throttle, server.handleLogin)
	app.Post(webpath.AuthSignout, server.handleSignOut)
	app.Get(webpath.AuthMe, server.handleMe)

	app.Get(webpath.UsersVolunteers, server.handleListVolunteers)
	app.Get(webpath.User, server.handleGetUser)
	app.Put(webpath.User, server.handleUpdateUser)
	app.Delete(webpath.User, server.handleDeleteUser)

	// static segments go before :id
	app.Get(webpath.Opportunities, server.handleListOpportunities)
	app.Get(webpath.OpportunitiesRecommended, server.handleRecommendedOpportunities)
	app.Get(webpath.OpportunitiesMy, server.handleMyOpportunities)
	app.Get(webpath.OpportunityRecommendedVolunteers, server.handleRecommendedVolunteers)
	app.Get(webpath.OpportunityApplications, server.handleOpportunityApplications)
	app.Post(webpath.OpportunityApplications, server.handleApply)
	app.Get(webpath.Opportunity, server.handleGetOpportunity)
	app.Post(webpath.Opportunities, server.handleCreateOpportunity)
	app.Put(webpath.Opportunity, server.handleUpdateOpportunity)
	app.Delete(webpath.Opportunity, server.handleDeleteOpportunity)

	app.Get(webpath.ApplicationsMy, server.handleMyApplications)
	app.Patch(webpath.Application, server.handleReviewApplication)
	app.Delete(webpath.Application, server.handleWithdrawApplication)

	server.app = app
	return &server
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	s.log.WithField("addr", addr).Info("listening")
	if s.cfg.TLSCert != "" {
		return s.app.ListenTLS(addr, s.cfg.TLSCert, s.cfg.TLSKey)
	}
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) authenticate(c *fiber.Ctx) error {
	user, err := s.auth.Auth(c.Context(), bearerToken(c), c.Method(), c.Path())
	if err != nil {
		return err
	}
	c.Context().SetUserValue(userKey, user)
	return c.Next()
}

// bearerToken prefers the Authorization header over the cookie.
func bearerToken(c *fiber.Ctx) string {
	const prefix = "Bearer "
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return c.Cookies(authservice.TokenCookie)
}

func (s *Server) logRequest(c *fiber.Ctx) error {
	err := c.Next()
	s.log.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"status": c.Response().StatusCode(),
	}).Trace("request")
	return err
}

func currentUser(c *fiber.Ctx) users.User {
	user, _ := c.Context().UserValue(userKey).(users.User)
	return user
}

var errBadID = errors.New("invalid id")

func paramID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, errBadID.Error())
	}
	return id, nil
}

func invalidRequest(err error) error {
	if err == nil {
		return nil
	}
	return &service.ValidationError{Err: err}
}

func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return nil
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	resp := newErrorResponse("internal server error")

	var fiberErr *fiber.Error
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		resp = newErrorResponse(fiberErr.Message)
	case errors.As(err, &validationErr):
		code = fiber.StatusBadRequest
		resp = newErrorResponse("validation failed").WithErrors(validationErr.Err)
	case errors.Is(err, authservice.ErrWeakPassword):
		code = fiber.StatusBadRequest
		resp = newErrorResponse(err.Error())
	case errors.Is(err, service.ErrClosed):
		code = fiber.StatusBadRequest
		resp = newErrorResponse(err.Error())
	case errors.Is(err, authservice.ErrNotAuthorized),
		errors.Is(err, authservice.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
		resp = newErrorResponse(err.Error())
	case errors.Is(err, authservice.ErrForbidden),
		errors.Is(err, service.ErrForbidden):
		code = fiber.StatusForbidden
		resp = newErrorResponse(err.Error())
	case errors.Is(err, service.ErrNotFound):
		code = fiber.StatusNotFound
		resp = newErrorResponse(err.Error())
	case errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrUserExists):
		code = fiber.StatusConflict
		resp = newErrorResponse(err.Error())
	default:
		s.log.WithError(err).WithField("path", c.Path()).Error("request failed")
	}
	return c.Status(code).JSON(resp)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"routes": webpath.Path(),
	})
}
