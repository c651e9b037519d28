package web

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleListVolunteers(c *fiber.Ctx) error {
	volunteers, err := s.service.ListVolunteers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"volunteers": convertPublicVolunteers(volunteers)})
}

func (s *Server) handleGetUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	user, self, err := s.service.GetUser(c.Context(), currentUser(c).Actor(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": convertUserFor(user, self)})
}

func (s *Server) handleUpdateUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req userPatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := s.service.UpdateUser(c.Context(), currentUser(c).Actor(), id, req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": convertUser(user)})
}

func (s *Server) handleDeleteUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := s.service.DeleteUser(c.Context(), currentUser(c).Actor(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
