package rest

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// queryParams collects typed query parameters and their field errors.
type queryParams struct {
	values url.Values
	errs   []domain.FieldError
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (p *queryParams) String(name string) string {
	return strings.TrimSpace(p.values.Get(name))
}

func (p *queryParams) Int64(name string) *int64 {
	raw := p.String(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return nil
	}
	return &v
}

func (p *queryParams) Int(name string) int {
	v := p.Int64(name)
	if v == nil {
		return 0
	}
	return int(*v)
}

func (p *queryParams) Bool(name string) *bool {
	raw := p.String(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be true or false"})
		return nil
	}
	return &v
}

func (p *queryParams) UUID(name string) *uuid.UUID {
	raw := p.String(name)
	if raw == "" {
		return nil
	}
	v, err := uuid.Parse(raw)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be a UUID"})
		return nil
	}
	return &v
}

// Err returns the collected parse errors as a ValidationError.
func (p *queryParams) Err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}
