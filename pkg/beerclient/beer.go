package beerclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BeerStyle is the style enumeration defined by the inventory service.
type BeerStyle string

const (
	StyleLager   BeerStyle = "LAGER"
	StylePilsner BeerStyle = "PILSNER"
	StyleStout   BeerStyle = "STOUT"
	StyleGose    BeerStyle = "GOSE"
	StylePorter  BeerStyle = "PORTER"
	StyleAle     BeerStyle = "ALE"
	StyleWheat   BeerStyle = "WHEAT"
	StyleIPA     BeerStyle = "IPA"
	StylePaleAle BeerStyle = "PALE_ALE"
	StyleSaison  BeerStyle = "SAISON"
)

// KnownStyles lists the styles the service is known to accept, in declaration order.
var KnownStyles = []BeerStyle{
	StyleLager, StylePilsner, StyleStout, StyleGose, StylePorter,
	StyleAle, StyleWheat, StyleIPA, StylePaleAle, StyleSaison,
}

// ParseBeerStyle resolves a user supplied style name (case-insensitive, "-" or " " allowed for "_").
func ParseBeerStyle(raw string) (BeerStyle, error) {
	norm := strings.ToUpper(strings.TrimSpace(raw))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for _, s := range KnownStyles {
		if string(s) == norm {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown beer style %q", raw)
}

func init() {
	// The service reads and writes prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Beer is the single resource exchanged with the inventory API.
// The client passes it through without validating any field. A zero ID is
// left out of the body and a nil Price is sent as null, so new records reach
// the service without made-up values.
type Beer struct {
	ID             uuid.UUID        `json:"id,omitzero" yaml:"id"`
	Version        *int             `json:"version,omitempty" yaml:"version,omitempty"`
	Name           string           `json:"beerName" yaml:"beerName"`
	Style          BeerStyle        `json:"beerStyle,omitempty" yaml:"beerStyle,omitempty"`
	UPC            string           `json:"upc,omitempty" yaml:"upc,omitempty"`
	QuantityOnHand *int             `json:"quantityOnHand,omitempty" yaml:"quantityOnHand,omitempty"`
	Price          *decimal.Decimal `json:"price" yaml:"price,omitempty"`
	CreatedDate    *time.Time       `json:"createdDate,omitempty" yaml:"createdDate,omitempty"`
	UpdateDate     *time.Time       `json:"updateDate,omitempty" yaml:"updateDate,omitempty"`
}
