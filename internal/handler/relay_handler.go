package handler

import (
	"context"
	"strings"

	"page-assist/internal/domain"
	"page-assist/internal/dto"
	"page-assist/internal/logger"
	"page-assist/internal/middleware"
	"page-assist/internal/relay"
	"page-assist/internal/render"
	"page-assist/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Dispatcher starts a relay request and yields its single response.
type Dispatcher interface {
	Dispatch(ctx context.Context, req relay.Request) <-chan domain.Response
}

// RelayHandler handles relay and render HTTP requests
type RelayHandler struct {
	dispatcher Dispatcher
	validator  *validation.Validator
}

func NewRelayHandler(dispatcher Dispatcher) *RelayHandler {
	return &RelayHandler{
		dispatcher: dispatcher,
		validator:  validation.NewValidator(),
	}
}

// Relay godoc
// @Summary Run a page action
// @Description Dispatches an action to the text-generation endpoint. Relay failures are returned as {error} with status 200.
// @Tags relay
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client id selecting the quiz session"
// @Param request body dto.RelayRequest true "Action and payload"
// @Success 200 {object} dto.RelayResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /relay [post]
func (h *RelayHandler) Relay(c *fiber.Ctx) error {
	var req dto.RelayRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse relay request body", zap.Error(err))
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateRelayRequest(req.Action); len(errs) > 0 {
		return errs
	}

	action := domain.Action(strings.TrimSpace(req.Action))
	resp := <-h.dispatcher.Dispatch(c.UserContext(), relay.Request{
		ClientID: middleware.ClientID(c),
		Action:   action,
		Data:     req.Data,
	})

	if resp.Failed() {
		return c.JSON(dto.RelayResponse{Error: resp.Error})
	}

	out := dto.RelayResponse{Result: resp.Result}
	if text, ok := resp.Result.(string); ok && action.FreeText() {
		out.HTML = render.Markdown(text)
	}
	return c.JSON(out)
}

// Render godoc
// @Summary Render Markdown
// @Description Converts the supported Markdown subset to HTML
// @Tags render
// @Accept json
// @Produce json
// @Param request body dto.RenderRequest true "Markdown text"
// @Success 200 {object} dto.RenderResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /render [post]
func (h *RelayHandler) Render(c *fiber.Ctx) error {
	var req dto.RenderRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	return c.JSON(dto.RenderResponse{HTML: render.Markdown(req.Text)})
}
