package client

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"lashstudio/internal/domain"
	"lashstudio/internal/pkg/validator"
	"lashstudio/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("client not found")
)

type Service struct {
	clients *repository.ClientRepository
}

func NewService(clients *repository.ClientRepository) *Service {
	return &Service{clients: clients}
}

func (s *Service) List(ctx context.Context, search string) ([]ClientView, error) {
	all, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]ClientView, 0, len(all))
	for _, c := range all {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		out = append(out, toView(c))
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*ClientView, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v := toView(*c)
	return &v, nil
}

func (s *Service) Create(ctx context.Context, req UpsertClientRequest) (*ClientView, error) {
	c := &domain.Client{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Phone:      FormatPhone(req.Phone),
		EyeMapping: req.EyeMapping,
	}
	if errs := validator.Validate(c); errs != nil {
		return nil, ErrValidation
	}
	if req.Anamnesis != nil {
		raw, err := json.Marshal(req.Anamnesis)
		if err != nil {
			return nil, err
		}
		c.Anamnesis = raw
	}

	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	v := toView(*c)
	return &v, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertClientRequest) (*ClientView, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c.Name = strings.TrimSpace(req.Name)
	c.Phone = FormatPhone(req.Phone)
	c.EyeMapping = req.EyeMapping
	if errs := validator.Validate(c); errs != nil {
		return nil, ErrValidation
	}
	if req.Anamnesis != nil {
		raw, err := json.Marshal(req.Anamnesis)
		if err != nil {
			return nil, err
		}
		c.Anamnesis = raw
	}

	if err := s.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	v := toView(*c)
	return &v, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.clients.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.clients.Delete(ctx, id)
}

func toView(c domain.Client) ClientView {
	v := ClientView{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		EyeMapping: c.EyeMapping,
		CreatedAt:  c.CreatedAt,
	}
	if len(c.Anamnesis) > 0 {
		var a domain.Anamnesis
		if err := json.Unmarshal(c.Anamnesis, &a); err == nil {
			v.Anamnesis = &a
		}
	}
	return v
}

// FormatPhone renders Brazilian phone numbers as "(xx) xxxxx-xxxx"
// (or "(xx) xxxx-xxxx" for landlines). Other inputs pass through trimmed.
func FormatPhone(raw string) string {
	digits := Digits(raw)
	switch {
	case len(digits) == 10:
		return "(" + digits[0:2] + ") " + digits[2:6] + "-" + digits[6:10]
	case len(digits) == 11:
		return "(" + digits[0:2] + ") " + digits[2:7] + "-" + digits[7:11]
	}
	return strings.TrimSpace(raw)
}

// Digits strips everything but 0-9.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
