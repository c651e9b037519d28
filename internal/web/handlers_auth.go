package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	authservice "github.com/goserg/volunteerhub/auth/service"
	"github.com/goserg/volunteerhub/internal/domain"
)

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := invalidRequest(req.Validate()); err != nil {
		return err
	}
	user, err := s.service.Register(c.Context(), req.toInput())
	if err != nil {
		return err
	}
	err = s.auth.SignUp(c.Context(), user.ID, req.Password)
	if err != nil {
		actor := domain.Actor{ID: user.ID, Role: user.Role()}
		if delErr := s.service.DeleteUser(c.Context(), actor, user.ID); delErr != nil {
			s.log.WithError(delErr).WithField("id", user.ID).Error("rollback registration")
		}
		return err
	}
	token, err := s.setTokenCookie(c, user.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  convertUser(user),
	})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := invalidRequest(req.Validate()); err != nil {
		return err
	}
	authUser, err := s.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	user, _, err := s.service.GetUser(c.Context(), authUser.Actor(), authUser.ID)
	if err != nil {
		return err
	}
	token, err := s.setTokenCookie(c, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  convertUser(user),
	})
}

func (s *Server) handleSignOut(c *fiber.Ctx) error {
	c.ClearCookie(authservice.TokenCookie)
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	me := currentUser(c)
	user, _, err := s.service.GetUser(c.Context(), me.Actor(), me.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": convertUser(user)})
}

func (s *Server) setTokenCookie(c *fiber.Ctx, userID uuid.UUID) (string, error) {
	cookie, token, err := s.auth.GenerateJWTCookie(userID, "")
	if err != nil {
		return "", err
	}
	cookie.Secure = s.cfg.TLSCert != ""
	c.Cookie(cookie)
	return token, nil
}
