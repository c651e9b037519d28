package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goserg/volunteerhub/internal/domain"
)

func (s *Server) handleApply(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	a, err := s.service.Apply(c.Context(), currentUser(c).Actor(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"application": convertApplication(a)})
}

func (s *Server) handleOpportunityApplications(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	list, err := s.service.OpportunityApplications(c.Context(), currentUser(c).Actor(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"applications": convertApplications(list)})
}

func (s *Server) handleMyApplications(c *fiber.Ctx) error {
	list, err := s.service.MyApplications(c.Context(), currentUser(c).Actor())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"applications": convertApplications(list)})
}

func (s *Server) handleReviewApplication(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req reviewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	a, err := s.service.ReviewApplication(c.Context(), currentUser(c).Actor(), id, domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"application": convertApplication(a)})
}

func (s *Server) handleWithdrawApplication(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := s.service.WithdrawApplication(c.Context(), currentUser(c).Actor(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
