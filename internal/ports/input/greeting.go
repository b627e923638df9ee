package input

import (
	"context"

	"wbooks/internal/domain/entities"
)

// GreetingUseCase renders localized greetings.
type GreetingUseCase interface {
	Greet(ctx context.Context, acceptLanguage, name string) (entities.Greeting, error)
}
