package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

type moveRequest struct {
	Move string `json:"move"`
}

// handlers binds the REST routes to a Manager.
type handlers struct {
	mgr *Manager
}

func (h *handlers) createGame(c *fiber.Ctx) error {
	id, err := h.mgr.Create()
	if err != nil {
		return fail(c, err)
	}
	view, err := h.mgr.View(id)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *handlers) listGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"games": h.mgr.IDs()})
}

func (h *handlers) getGame(c *fiber.Ctx) error {
	view, err := h.mgr.View(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

func (h *handlers) deleteGame(c *fiber.Ctx) error {
	if err := h.mgr.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *handlers) legalMoves(c *fiber.Ctx) error {
	moves, err := h.mgr.Moves(c.Params("id"), c.Query("square"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"moves": moves})
}

func (h *handlers) playMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	view, err := h.mgr.Play(c.Params("id"), req.Move)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

// fail writes err as {"error": text} with the status its kind maps to.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func errorStatus(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrMalformedMoveText):
		return fiber.StatusBadRequest
	case stderrors.Is(err, errors.ErrIllegalMove),
		stderrors.Is(err, errors.ErrNoPiece),
		stderrors.Is(err, errors.ErrNotYourTurn),
		stderrors.Is(err, errors.ErrGameOver):
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrGameLimit):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
