package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/danirodriguezz/hirepilot/api/http/presenter"
	"github.com/danirodriguezz/hirepilot/pkg/candidate"
	"github.com/danirodriguezz/hirepilot/pkg/posting"
	"github.com/danirodriguezz/hirepilot/pkg/tailor"
)

// GenerateRequest is the JSON body of POST /cv/generate.
type GenerateRequest struct {
	JobDescription string `json:"job_description" example:"Buscamos Backend Developer con Go y PostgreSQL"`
	Language       string `json:"language" example:"es"`
}

// GenerationResponse mirrors a stored generation.
type GenerationResponse struct {
	ID                string `json:"id"`
	JobTitleExtracted string `json:"job_title_extracted"`
	StructuredCVData  any    `json:"structured_cv_data" swaggertype:"object"`
	CreatedAt         string `json:"created_at"`
}

// TailorHandler exposes tailoring runs and past generations.
type TailorHandler struct {
	svc      tailor.UseCase
	maxBytes int64
}

func NewTailorHandler(svc tailor.UseCase) *TailorHandler {
	return &TailorHandler{svc: svc, maxBytes: 5 << 20} // 5MB
}

// Generate tailors the candidate's facts to a job posting and stores the result.
// @Summary Generate a tailored CV
// @Description Accepts a job description as JSON or as multipart form (text field or uploaded pdf/docx/txt file).
// @Tags    cv
// @Accept  json
// @Accept  multipart/form-data
// @Produce json
// @Param   body body GenerateRequest false "Job posting"
// @Param   job_file formData file false "Job posting file (pdf, docx, txt)"
// @Security BearerAuth
// @Success 201 {object} GenerationResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /cv/generate [post]
func (h *TailorHandler) Generate(c *fiber.Ctx) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	req, err := h.parseRequest(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	g, err := h.svc.Tailor(c.UserContext(), ownerID, req.JobDescription, req.Language)
	if err != nil {
		return tailorError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, toResponse(g))
}

// List returns the caller's generations, newest first.
// @Summary List generated CVs
// @Tags    cv
// @Produce json
// @Security BearerAuth
// @Param   limit  query int false "Page size (1-100)"
// @Param   offset query int false "Items to skip"
// @Success 200 {array} GenerationResponse
// @Failure 400 {object} presenter.ValidationResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /cv [get]
func (h *TailorHandler) List(c *fiber.Ctx) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	limit, offset, fields := page(c)
	if fields != nil {
		return presenter.Validation(c, "invalid pagination", fields)
	}
	items, err := h.svc.List(c.UserContext(), ownerID, limit, offset)
	if err != nil {
		return tailorError(c, err)
	}
	out := make([]GenerationResponse, 0, len(items))
	for _, g := range items {
		out = append(out, toResponse(g))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Get returns one generation owned by the caller.
// @Summary Get a generated CV
// @Tags    cv
// @Produce json
// @Param   id path string true "Generation ID"
// @Security BearerAuth
// @Success 200 {object} GenerationResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /cv/{id} [get]
func (h *TailorHandler) Get(c *fiber.Ctx) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	g, err := h.svc.Get(c.UserContext(), ownerID, id)
	if err != nil {
		return tailorError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toResponse(g))
}

func (h *TailorHandler) parseRequest(c *fiber.Ctx) (GenerateRequest, error) {
	var req GenerateRequest
	if !strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		if len(c.Body()) == 0 {
			return req, nil
		}
		if err := c.BodyParser(&req); err != nil {
			return req, errors.New("invalid request body")
		}
		return req, nil
	}

	req.JobDescription = c.FormValue("job_description")
	req.Language = c.FormValue("language")
	fh, err := c.FormFile("job_file")
	if err != nil || fh == nil || strings.TrimSpace(req.JobDescription) != "" {
		return req, nil
	}
	if !posting.Supported(fh.Filename) {
		return req, posting.ErrUnsupportedFormat
	}
	f, err := fh.Open()
	if err != nil {
		return req, errors.New("failed to open uploaded file")
	}
	defer f.Close()
	data, err := posting.ReadLimited(f, h.maxBytes)
	if err != nil {
		return req, err
	}
	text, err := posting.ExtractText(fh.Filename, data)
	if err != nil {
		return req, fmt.Errorf("failed to read job posting: %v", err)
	}
	req.JobDescription = text
	return req, nil
}

func tailorError(c *fiber.Ctx, err error) error {
	var verr *tailor.ValidationError
	var perr *tailor.PersistenceError
	switch {
	case errors.As(err, &verr):
		return presenter.Validation(c, verr.Error(), map[string][]string{verr.Field: {verr.Message}})
	case errors.Is(err, candidate.ErrNotFound), errors.Is(err, tailor.ErrGenerationNotFound):
		return presenter.Error(c, http.StatusNotFound, "not found")
	case errors.As(err, &perr):
		return presenter.Error(c, http.StatusInternalServerError, "failed to store generated CV")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}

func toResponse(g tailor.Generation) GenerationResponse {
	return GenerationResponse{
		ID:                g.ID.String(),
		JobTitleExtracted: g.JobTitleExtracted,
		StructuredCVData:  g.StructuredCVData,
		CreatedAt:         g.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000Z07:00"),
	}
}

func currentUser(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals("userId").(string)
	return uuid.Parse(s)
}
