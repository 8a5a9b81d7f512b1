package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/adspark/internal/service"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.List(c.Context())
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, messageOr(err, "Failed to fetch posts"))
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.s.PostInfo(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, statusFor(err), messageOr(err, "Failed to fetch post"))
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, statusFor(err), messageOr(err, "Failed to delete post"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
