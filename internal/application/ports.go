package application

import "context"

// LookupClient is the outbound port to the external BIN-lookup service.
type LookupClient interface {
	Lookup(ctx context.Context, bin string) (*BinRecord, error)
}
