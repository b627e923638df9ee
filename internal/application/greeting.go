package application

import (
	"context"
	"fmt"

	"wbooks/internal/domain"
	"wbooks/internal/domain/entities"
	"wbooks/internal/ports/input"
)

// Ensure GreetingService implements the input port.
var _ input.GreetingUseCase = (*GreetingService)(nil)

// GreetingService renders the hello message in the negotiated locale.
type GreetingService struct {
	negotiator *Negotiator
}

// NewGreetingService wires the use case to a negotiator.
func NewGreetingService(negotiator *Negotiator) *GreetingService {
	return &GreetingService{negotiator: negotiator}
}

// Greet returns "Hello, {name}!" translated for acceptLanguage.
func (s *GreetingService) Greet(_ context.Context, acceptLanguage, name string) (entities.Greeting, error) {
	if name == "" {
		return entities.Greeting{}, domain.ErrEmptyName
	}

	catalog := s.negotiator.Negotiate(acceptLanguage)
	text, err := catalog.T(domain.MsgHelloName, map[string]any{"Name": name})
	if err != nil {
		return entities.Greeting{}, fmt.Errorf("greet: %w", err)
	}

	return entities.Greeting{Locale: catalog.Tag(), Text: text}, nil
}
