package incident

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"safetylog/internal/app/server/api/http/middleware/auth"
	domain "safetylog/internal/domain/incident"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    domain.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service domain.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	// Static paths before the {id} routes
	huma.Register(api, h.summaryOp(), h.summary)
	huma.Register(api, h.exportOp(), h.export)

	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	q := domain.Query{
		Search:     input.Search,
		TypeFilter: input.Type,
		Sort:       domain.SortKey(input.Sort),
	}
	result, err := h.service.Query(ctx, sess, q, input.PageSize, input.Page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &listOutput{Body: result}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	inc, err := h.service.Create(ctx, sess, domain.CreateRequest{
		Title:       input.Body.Title,
		Type:        input.Body.Type,
		Description: input.Body.Description,
		Impact:      input.Body.Impact,
		Files:       input.Body.Files,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &output{
		Body: response{
			ID:     inc.ID,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	inc, err := h.service.Get(ctx, sess, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound(fmt.Sprintf("incident %d not found", input.ID))
		}
		return nil, err
	}

	return &findOutput{Body: inc}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	_, err := h.service.Update(ctx, sess, input.ID, domain.UpdateRequest{
		Title:       input.Body.Title,
		Type:        input.Body.Type,
		Description: input.Body.Description,
		Impact:      input.Body.Impact,
		Files:       input.Body.Files,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, huma.Error404NotFound(fmt.Sprintf("incident %d not found", input.ID))
		case errors.Is(err, domain.ErrForbidden):
			return nil, huma.Error403Forbidden(err.Error())
		case errors.Is(err, domain.ErrInvalidData):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, err
		}
	}

	return &output{
		Body: response{
			ID:     input.ID,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*output, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	// The confirmation step is the pending-delete marker: nothing is
	// removed until the client repeats the request with confirm=true.
	if !input.Confirm {
		return nil, huma.Error400BadRequest("deletion requires confirm=true")
	}

	if err := h.service.Delete(ctx, sess, input.ID); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return nil, huma.Error403Forbidden(err.Error())
		}
		return nil, err
	}

	return &output{Body: response{Status: "Ok"}}, nil
}

func (h *Handler) summary(ctx context.Context, _ *struct{}) (*summaryOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	s, err := h.service.Summarize(ctx, sess)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return nil, huma.Error403Forbidden("summary statistics are admin-only")
		}
		return nil, err
	}

	return &summaryOutput{Body: s}, nil
}

func (h *Handler) export(ctx context.Context, _ *struct{}) (*exportOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var buf bytes.Buffer
	if err := h.service.ExportCSV(ctx, sess, &buf); err != nil {
		if errors.Is(err, domain.ErrNoIncidents) {
			return nil, huma.Error409Conflict(err.Error())
		}
		return nil, err
	}

	return &exportOutput{
		ContentType:        domain.ExportMIME,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", domain.ExportFilename),
		Body:               buf.Bytes(),
	}, nil
}
