package payment

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// Authorization is the outcome of authorizing a payment.
type Authorization struct {
	Approved bool
	// Reference identifies the authorization. Empty when none was issued.
	Reference string
}

// Authorizer is implemented by payment variants that require approval.
type Authorizer interface {
	Authorize(ctx context.Context) (Authorization, error)
}

// Authorize authorizes p if its variant requires it. Payments that do not
// implement Authorizer are approved without a reference.
func Authorize(ctx context.Context, p Payment) (Authorization, error) {
	a, ok := p.(Authorizer)
	if !ok {
		return Authorization{Approved: true}, nil
	}
	res, err := a.Authorize(ctx)
	if err != nil {
		return Authorization{}, errors.Wrap(err, "authorize payment")
	}
	return res, nil
}

func approve(ctx context.Context) (Authorization, error) {
	if err := ctx.Err(); err != nil {
		return Authorization{}, err
	}
	return Authorization{
		Approved:  true,
		Reference: uuid.New().String(),
	}, nil
}
