package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/application/dto"
	"github.com/billora/billora-api/internal/domain"
)

// respondError maps domain errors onto HTTP status codes with a stable
// machine-readable code. Unknown errors surface as 500.
func respondError(c *fiber.Ctx, err error) error {
	if stock, ok := billing.IsStockExceeded(err); ok {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "STOCK_EXCEEDED", Message: stock.Error(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "INVALID_TRANSITION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrSettlementMismatch):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "SETTLEMENT_MISMATCH", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONFLICT", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrStatusUpdateFailed):
		// The payment record exists but the document still reads Pending.
		// 502 signals a retryable half-applied settlement, not a client fault.
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "STATUS_UPDATE_FAILED", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrExportInProgress):
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
			Code: "EXPORT_IN_PROGRESS", Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Message: "malformed request body",
	})
}
