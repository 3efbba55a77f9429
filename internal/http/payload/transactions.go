package payload

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jellydator/validation"
)

// ErrInvalidRequest flags a request supplying both or neither of the batch
// parameter and the transaction hash list.
var ErrInvalidRequest error = errors.New("provide either a batch parameter or transactionHashes")

var hashRegex = regexp.MustCompile(`^0x[a-f0-9]+`)

type TransactionsRequest struct {
	Transactions []string
}

func (t TransactionsRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Transactions, validation.Required),
		validation.Field(&t.Transactions, validation.Each(validation.Match(hashRegex))),
	)
}

// ExtractEthParams enforces that exactly one of the batch parameter and the
// hash list is present. A caller passing a single scalar hash is expected to
// have normalized it to a one-element slice already (url.Values does this).
func ExtractEthParams(batch string, hashes []string) (string, []string, error) {
	if batch == "" && len(hashes) == 0 {
		return "", nil, fmt.Errorf("%w: neither given", ErrInvalidRequest)
	}
	if batch != "" && len(hashes) > 0 {
		return "", nil, fmt.Errorf("%w: both given", ErrInvalidRequest)
	}
	return batch, hashes, nil
}
