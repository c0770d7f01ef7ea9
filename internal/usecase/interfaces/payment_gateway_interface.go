package interfaces

import "context"

// ICardGateway abstracts the card processor.
//
// CreateIntent reserves the charge and returns a token for the hosted
// confirmation step; Confirm settles it and returns the processor's
// transaction id. FindSettledByReference exists for reconciliation: the
// processor may have settled a charge the local store never recorded.

type ICardGateway interface {
	CreateIntent(ctx context.Context, amount float64, currency, reference string) (clientToken string, err error)
	Confirm(ctx context.Context, clientToken string) (gatewayRef string, err error)
	FindSettledByReference(ctx context.Context, reference string) (gatewayRef string, found bool, err error)
}

// IInvoiceGateway abstracts the hosted-invoice processor. Completion
// confirmation arrives out-of-band at the webhook seam.

type IInvoiceGateway interface {
	CreateInvoice(ctx context.Context, amount float64, currency, reference string) (invoiceRef, redirectURL string, err error)
}
