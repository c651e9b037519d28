package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goserg/volunteerhub/internal/domain"
	"github.com/goserg/volunteerhub/internal/storage"
)

func (s *Server) handleListOpportunities(c *fiber.Ctx) error {
	filter := storage.OpportunityFilter{
		Status:   domain.OpportunityStatus(c.Query("status")),
		Category: c.Query("category"),
	}
	list, err := s.service.ListOpportunities(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"opportunities": convertOpportunities(list)})
}

func (s *Server) handleRecommendedOpportunities(c *fiber.Ctx) error {
	ranked, err := s.service.RecommendedOpportunities(c.Context(), currentUser(c).Actor())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"opportunities": convertRankedOpportunities(ranked)})
}

func (s *Server) handleMyOpportunities(c *fiber.Ctx) error {
	list, err := s.service.MyOpportunities(c.Context(), currentUser(c).Actor())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"opportunities": convertOpportunities(list)})
}

func (s *Server) handleRecommendedVolunteers(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ranked, err := s.service.RecommendedVolunteers(c.Context(), currentUser(c).Actor(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"volunteers": convertRankedVolunteers(ranked)})
}

func (s *Server) handleGetOpportunity(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	o, err := s.service.GetOpportunity(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"opportunity": convertOpportunity(o)})
}

func (s *Server) handleCreateOpportunity(c *fiber.Ctx) error {
	var req opportunityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return invalidRequest(err)
	}
	o, err := s.service.CreateOpportunity(c.Context(), currentUser(c).Actor(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"opportunity": convertOpportunity(o)})
}

func (s *Server) handleUpdateOpportunity(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req opportunityPatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	patch, err := req.toPatch()
	if err != nil {
		return invalidRequest(err)
	}
	o, err := s.service.UpdateOpportunity(c.Context(), currentUser(c).Actor(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"opportunity": convertOpportunity(o)})
}

func (s *Server) handleDeleteOpportunity(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := s.service.DeleteOpportunity(c.Context(), currentUser(c).Actor(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "opportunity deleted"})
}
