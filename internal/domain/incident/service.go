package incident

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"safetylog/internal/domain/session"

	"golang.org/x/exp/slog"
)

// Servicer is the business-logic surface for the incident lifecycle and
// the derived views. A nil session means the unauthenticated variant:
// no role scoping and no ownership checks.
type Servicer interface {
	List(ctx context.Context, sess *session.Session) ([]Incident, error)
	Query(ctx context.Context, sess *session.Session, q Query, pageSize, page int) (QueryResult, error)
	Get(ctx context.Context, sess *session.Session, id int64) (*Incident, error)
	Create(ctx context.Context, sess *session.Session, req CreateRequest) (*Incident, error)
	Update(ctx context.Context, sess *session.Session, id int64, req UpdateRequest) (*Incident, error)
	Delete(ctx context.Context, sess *session.Session, id int64) error
	Summarize(ctx context.Context, sess *session.Session) (Summary, error)
	ExportCSV(ctx context.Context, sess *session.Session, w io.Writer) error
}

// CreateRequest carries the user-entered fields for a new record. Title,
// type and description are required at this boundary.
type CreateRequest struct {
	Title       string
	Type        Type
	Description string
	Impact      Impact
	Files       []FileRef
}

// UpdateRequest replaces every mutable field of an existing record.
// ID, timestamp and author are never touched by an update.
type UpdateRequest struct {
	Title       string
	Type        Type
	Description string
	Impact      Impact
	Files       []FileRef
}

// QueryResult is one page of the transformed list plus its paging facts.
type QueryResult struct {
	Items      []Incident `json:"items"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "incident_service"),
	}
}

// List returns the records visible to the session, in store order.
// A user-role session sees only records it logged; admin sees all.
func (s *Service) List(ctx context.Context, sess *session.Session) ([]Incident, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list incidents", "error", err)
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	if sess == nil || sess.IsAdmin() {
		return all, nil
	}

	visible := make([]Incident, 0, len(all))
	for _, inc := range all {
		if inc.LoggedBy == sess.Username {
			visible = append(visible, inc)
		}
	}
	return visible, nil
}

// Query runs the search → filter → sort pipeline over the visible records
// and returns the requested page.
func (s *Service) Query(ctx context.Context, sess *session.Session, q Query, pageSize, page int) (QueryResult, error) {
	if err := q.Sort.Validate(); err != nil {
		return QueryResult{}, fmt.Errorf("%w: sort key %q", ErrInvalidData, q.Sort)
	}

	visible, err := s.List(ctx, sess)
	if err != nil {
		return QueryResult{}, err
	}

	transformed := Apply(visible, q)
	totalPages := TotalPages(len(transformed), pageSize)
	return QueryResult{
		Items:      Paginate(transformed, pageSize, page),
		Total:      len(transformed),
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) Get(ctx context.Context, sess *session.Session, id int64) (*Incident, error) {
	inc, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get incident", "incident_id", id, "error", err)
		return nil, fmt.Errorf("get incident: %w", err)
	}
	if !canSee(sess, inc) {
		return nil, ErrNotFound
	}
	return inc, nil
}

func (s *Service) Create(ctx context.Context, sess *session.Session, req CreateRequest) (*Incident, error) {
	if err := validateFields(req.Title, req.Type, req.Description, req.Impact); err != nil {
		return nil, err
	}

	inc := &Incident{
		Title:       strings.TrimSpace(req.Title),
		Type:        req.Type,
		Description: strings.TrimSpace(req.Description),
		Impact:      req.Impact,
		Timestamp:   time.Now(),
		Files:       req.Files,
	}
	if sess != nil {
		inc.LoggedBy = sess.Username
	}

	id, err := s.repo.Create(ctx, inc)
	if err != nil {
		s.log.Error("failed to create incident", "type", req.Type, "error", err)
		return nil, fmt.Errorf("create incident: %w", err)
	}
	inc.ID = id

	s.log.Info("incident logged", "incident_id", id, "type", inc.Type, "impact", inc.Impact)
	return inc, nil
}

// Update replaces all mutable fields of the record with the submitted
// values and preserves id, timestamp and author. Updating an absent id
// reports ErrNotFound.
func (s *Service) Update(ctx context.Context, sess *session.Session, id int64, req UpdateRequest) (*Incident, error) {
	if err := validateFields(req.Title, req.Type, req.Description, req.Impact); err != nil {
		return nil, err
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get incident for update: %w", err)
	}
	if !canMutate(sess, current) {
		return nil, ErrForbidden
	}

	updated := &Incident{
		ID:          current.ID,
		Title:       strings.TrimSpace(req.Title),
		Type:        req.Type,
		Description: strings.TrimSpace(req.Description),
		Impact:      req.Impact,
		Timestamp:   current.Timestamp,
		Files:       req.Files,
		LoggedBy:    current.LoggedBy,
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		s.log.Error("failed to update incident", "incident_id", id, "error", err)
		return nil, fmt.Errorf("update incident: %w", err)
	}

	s.log.Info("incident updated", "incident_id", id, "type", updated.Type)
	return updated, nil
}

// Delete removes the record if present. A delete of an absent id is a
// no-op, not an error; the store is left untouched.
func (s *Service) Delete(ctx context.Context, sess *session.Session, id int64) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug("delete of absent incident ignored", "incident_id", id)
			return nil
		}
		return fmt.Errorf("get incident for delete: %w", err)
	}
	if !canMutate(sess, current) {
		return ErrForbidden
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete incident", "incident_id", id, "error", err)
		return fmt.Errorf("delete incident: %w", err)
	}
	if removed {
		s.log.Info("incident deleted", "incident_id", id)
	}
	return nil
}

// Summarize returns impact counts over the visible records. With a
// session present the statistics are admin-only.
func (s *Service) Summarize(ctx context.Context, sess *session.Session) (Summary, error) {
	if sess != nil && !sess.IsAdmin() {
		return Summary{}, ErrForbidden
	}
	visible, err := s.List(ctx, sess)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(visible), nil
}

// ExportCSV writes the visible records as CSV. Exporting an empty
// collection is refused with ErrNoIncidents before anything is written.
func (s *Service) ExportCSV(ctx context.Context, sess *session.Session, w io.Writer) error {
	visible, err := s.List(ctx, sess)
	if err != nil {
		return err
	}
	return ExportCSV(w, visible)
}

func validateFields(title string, typ Type, description string, impact Impact) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidData)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidData)
	}
	if err := typ.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if err := impact.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return nil
}

func canSee(sess *session.Session, inc *Incident) bool {
	if sess == nil || sess.IsAdmin() {
		return true
	}
	return inc.LoggedBy == sess.Username
}

// canMutate enforces ownership on edit and delete, not just on listing:
// a user-role session may only touch records it logged.
func canMutate(sess *session.Session, inc *Incident) bool {
	return canSee(sess, inc)
}
